// Package extract turns the visible text lines of a listings page into event records.
//
// Extraction is anchored on "Date:" lines naming a weekday (or "Various"). Around each
// anchor a bounded window of lines is carved out, clipped by the next anchor, and the
// labeled "Date:", "Address:" and "Price:" lines inside it give the opening hours,
// venue address and price. The event name and venue name are ranked from the lines
// above the date line, and the description is gathered from the prose below the price
// line. A record is kept only when it has both a name and an address; at most
// Options.MaxEvents records are returned, deduplicated by name and address, in
// document order.
//
// Everything here is a pure function of its input. Independent documents can be
// extracted concurrently without coordination.
package extract
