package course

import (
	"math"
	"sort"
	"strings"
)

// Catalog is the read-only course corpus. After Load it is never mutated,
// so it is safe for unlimited concurrent readers.
type Catalog struct {
	courses []*Course
	byID    map[string]*Course
}

// NewCatalog builds a catalog from already-normalized courses. Courses
// with a duplicate ID keep the first occurrence.
func NewCatalog(courses []*Course) *Catalog {
	catalog := &Catalog{byID: make(map[string]*Course, len(courses))}

	for _, c := range courses {
		if _, dup := catalog.byID[c.ID]; dup {
			continue
		}
		catalog.byID[c.ID] = c
		catalog.courses = append(catalog.courses, c)
	}

	return catalog
}

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int {
	return len(c.courses)
}

// All returns every course in load order. The returned slice is shared;
// callers must treat it as read-only.
func (c *Catalog) All() []*Course {
	return c.courses
}

// FindByID returns the course with the given ID, or nil when absent.
func (c *Catalog) FindByID(id string) *Course {
	return c.byID[id]
}

// Search returns up to limit courses matching the free-text query over
// name, instructor and skill tags, ordered by relevance with ID as the
// deterministic tie-break. A blank query or non-positive limit returns
// nothing.
func (c *Catalog) Search(query string, limit int) []*Course {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || limit <= 0 {
		return nil
	}

	type scored struct {
		course *Course
		score  int
	}

	matches := make([]scored, 0)
	for _, course := range c.courses {
		score := searchScore(course, terms)
		if score > 0 {
			matches = append(matches, scored{course: course, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].course.ID < matches[j].course.ID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]*Course, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.course)
	}
	return results
}

// searchScore weights name matches above instructor and skill matches.
func searchScore(course *Course, terms []string) int {
	name := strings.ToLower(course.Name)
	instructor := strings.ToLower(course.Instructor)

	score := 0
	for _, term := range terms {
		if strings.Contains(name, term) {
			score += 2
		}
		if strings.Contains(instructor, term) {
			score++
		}
		for _, skill := range course.Skills {
			if strings.Contains(skill, term) {
				score++
				break
			}
		}
	}
	return score
}

// Statistics aggregates catalog counts and histograms.
func (c *Catalog) Statistics() *Stats {
	stats := &Stats{
		Count:     len(c.courses),
		Platforms: make(map[string]int),
		Domains:   make(map[string]int),
		Paid:      make(map[Paid]int),
	}

	ratingSum := 0.0
	rated := 0
	for _, course := range c.courses {
		if course.Platform != "" {
			stats.Platforms[course.Platform]++
		}
		if course.Domain != "" {
			stats.Domains[course.Domain]++
		}
		stats.Paid[course.IsPaid]++

		if course.Rating > 0 {
			ratingSum += course.Rating
			rated++
		}
	}

	if rated > 0 {
		stats.AverageRating = math.Round(ratingSum/float64(rated)*100) / 100
	}

	return stats
}
