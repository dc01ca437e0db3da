// Package advocates implements the read path of the advocate directory:
// the search predicate, the store, the concurrent count and page query,
// and the HTTP endpoint that exposes it.
package advocates

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Advocate is a single directory entry.
type Advocate struct {
	ID                int64     `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	City              string    `json:"city"`
	Degree            string    `json:"degree"`
	Specialties       []string  `json:"specialties"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	PhoneNumber       int64     `json:"phoneNumber"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Filter is the search predicate shared by the count and page reads.
// The zero value matches every record.
type Filter struct {
	term string
}

// NewFilter builds a Filter for term. An empty term matches everything.
func NewFilter(term string) Filter {
	return Filter{term: term}
}

// Term returns the raw search term.
func (f Filter) Term() string {
	return f.term
}

// MatchAll reports whether the filter places no constraint on records.
func (f Filter) MatchAll() bool {
	return f.term == ""
}

// Matches evaluates the predicate in memory with the same semantics as the
// SQL form: a case-insensitive literal substring match against first name,
// last name, city, degree, the JSON text of specialties, or the decimal
// years of experience.
func (f Filter) Matches(a Advocate) bool {
	if f.MatchAll() {
		return true
	}

	term := strings.ToLower(f.term)
	for _, field := range []string{
		a.FirstName,
		a.LastName,
		a.City,
		a.Degree,
		specialtiesText(a.Specialties),
		strconv.Itoa(a.YearsOfExperience),
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// specialtiesText mirrors PostgreSQL's jsonb text rendering of a string array.
func specialtiesText(specialties []string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	parts := make([]string, len(specialties))
	for i, s := range specialties {
		buf.Reset()
		enc.Encode(s)
		parts[i] = strings.TrimSuffix(buf.String(), "\n")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
