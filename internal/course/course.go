// Package course holds the in-memory course catalog: immutable course
// records loaded once at startup, with lookup, search and statistics over
// them.
package course

import (
	"github.com/mooclabs/coursematch/internal/resume"
)

// Paid is the tri-state payment flag carried by upstream course data.
type Paid string

const (
	PaidYes     Paid = "paid"
	PaidFree    Paid = "free"
	PaidUnknown Paid = "unknown"
)

// Course is a single catalog record. Records are immutable after load.
type Course struct {
	ID         string       `json:"course_id"`
	Name       string       `json:"course_name"`
	Instructor string       `json:"instructor"`
	Platform   string       `json:"platform"`
	Skills     []string     `json:"skills"`
	Domain     string       `json:"domain"`
	Level      resume.Level `json:"level"`
	Rating     float64      `json:"rating"`
	Enrolled   int          `json:"enrolled"`
	IsPaid     Paid         `json:"is_paid"`
	// URL is canonicalized once at load time from the inconsistent
	// upstream link fields.
	URL string `json:"course_url"`
}

// HasSkill reports whether the course lists the given canonical skill tag.
func (c *Course) HasSkill(tag string) bool {
	for _, s := range c.Skills {
		if s == tag {
			return true
		}
	}
	return false
}

// Stats summarizes the catalog.
type Stats struct {
	Count         int            `json:"count"`
	Platforms     map[string]int `json:"platforms"`
	Domains       map[string]int `json:"domains"`
	AverageRating float64        `json:"average_rating"`
	Paid          map[Paid]int   `json:"paid"`
}
