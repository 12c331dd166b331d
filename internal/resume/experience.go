package resume

import (
	"regexp"
	"strconv"
	"strings"
)

// yearsPattern captures explicit experience statements like "5 years",
// "10+ years" or "3 yrs".
var yearsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)

// maxPlausibleYears guards against numbers that are clearly not an
// experience duration (graduation years never match the two-digit cap,
// but things like "40 years of company history" still can).
const maxPlausibleYears = 50

var seniorKeywords = []string{
	"senior", "lead", "principal", "staff engineer", "architect", "head of",
}

var entryKeywords = []string{
	"intern", "internship", "junior", "trainee", "entry level", "entry-level", "fresher",
}

// experienceRule infers the candidate's experience level. Signals are
// checked in order of confidence: explicit year counts, seniority
// keywords, then resume length as a weak fallback.
type experienceRule struct {
	cfg ClassifierConfig
}

func (r *experienceRule) Name() string { return "experience" }

func (r *experienceRule) Apply(text string, p *Profile) error {
	lowered := strings.ToLower(text)

	if years, ok := maxExplicitYears(text); ok {
		switch {
		case years >= r.cfg.SeniorYears:
			p.ExperienceLevel = LevelSenior
		case years >= r.cfg.MidYears:
			p.ExperienceLevel = LevelMid
		default:
			p.ExperienceLevel = LevelEntry
		}
		return nil
	}

	if containsAny(lowered, seniorKeywords) {
		p.ExperienceLevel = LevelSenior
		return nil
	}

	if containsAny(lowered, entryKeywords) {
		p.ExperienceLevel = LevelEntry
		return nil
	}

	if len(strings.Fields(text)) >= r.cfg.LongResumeWords {
		p.ExperienceLevel = LevelMid
		return nil
	}

	p.ExperienceLevel = LevelUnknown
	return nil
}

// maxExplicitYears returns the largest plausible year count stated in the
// text, if any.
func maxExplicitYears(text string) (int, bool) {
	best := -1
	for _, match := range yearsPattern.FindAllStringSubmatch(text, -1) {
		years, err := strconv.Atoi(match[1])
		if err != nil || years > maxPlausibleYears {
			continue
		}
		if years > best {
			best = years
		}
	}
	return best, best >= 0
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
