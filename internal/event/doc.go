// Package event provides the event record produced by the extraction engine.
//
// A Record holds the six text fields pulled out of one event block. Records are
// identified by their dedup key (name + "|" + venue address); a SHA1 of that key
// gives a stable ID used to track records across runs through snapshot diffing.
package event
