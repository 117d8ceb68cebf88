package event

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// Record represents one event extracted from a listings page.
// Every field is always serialized, empty or not.
type Record struct {
	Name         string `json:"name"`
	VenueName    string `json:"venue_name"`
	VenueAddress string `json:"venue_address"`
	OpeningHours string `json:"opening_hours"`
	Price        string `json:"price"`
	Description  string `json:"description"`
}

// Key returns the dedup key for a name and venue address.
func Key(name, venueAddress string) string {
	return name + "|" + venueAddress
}

// Key returns the record's dedup key.
func (r *Record) Key() string {
	return Key(r.Name, r.VenueAddress)
}

// GenerateID creates a deterministic ID from a dedup key
func GenerateID(key string) string {
	h := sha1.New()
	h.Write([]byte(key))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// ID returns the record's stable identifier.
func (r *Record) ID() string {
	return GenerateID(r.Key())
}

// Complete reports whether the record carries the fields required to be kept.
func (r *Record) Complete() bool {
	return r.Name != "" && r.VenueAddress != ""
}

// Summary returns a one-line label for logs and warnings.
func (r *Record) Summary() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if r.VenueName != "" {
		b.WriteString(" @ ")
		b.WriteString(r.VenueName)
	}
	return b.String()
}
