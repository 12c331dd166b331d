// Package resume turns extracted resume text into a structured candidate
// profile: detected skills, inferred experience level, subject-area
// domains and education entries.
package resume

import "strings"

// Level is the inferred candidate experience level.
type Level string

const (
	LevelEntry   Level = "entry"
	LevelMid     Level = "mid"
	LevelSenior  Level = "senior"
	LevelUnknown Level = "unknown"
)

// ParseLevel maps a free-form string onto a known level, defaulting to
// unknown.
func ParseLevel(s string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelEntry:
		return LevelEntry
	case LevelMid:
		return LevelMid
	case LevelSenior:
		return LevelSenior
	default:
		return LevelUnknown
	}
}

// Adjacent reports whether two levels are next to each other on the
// entry < mid < senior ladder. Unknown is adjacent to nothing.
func (l Level) Adjacent(other Level) bool {
	rank := func(level Level) int {
		switch level {
		case LevelEntry:
			return 0
		case LevelMid:
			return 1
		case LevelSenior:
			return 2
		}
		return -10
	}

	diff := rank(l) - rank(other)
	return diff == 1 || diff == -1
}

// Profile is the structured result of resume analysis. It is created
// fresh per request and never persisted.
type Profile struct {
	Skills          []string `json:"skills"`
	SkillCount      int      `json:"skill_count"`
	ExperienceLevel Level    `json:"experience_level"`
	Domains         []string `json:"domains"`
	Education       []string `json:"education"`
}

// HasDomain reports whether the profile lists the given domain.
func (p *Profile) HasDomain(domain string) bool {
	for _, d := range p.Domains {
		if d == domain {
			return true
		}
	}
	return false
}

// PrimaryDomain returns the most confident inferred domain, or empty when
// no domain was inferred.
func (p *Profile) PrimaryDomain() string {
	if len(p.Domains) == 0 {
		return ""
	}
	return p.Domains[0]
}
