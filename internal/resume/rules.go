package resume

import (
	"sort"

	"github.com/mooclabs/coursematch/internal/skills"
)

// DefaultRules returns the standard rule chain backed by the given
// vocabulary and thresholds.
func DefaultRules(vocab *skills.Vocabulary, cfg ClassifierConfig) []Rule {
	cfg = cfg.withDefaults()
	return []Rule{
		&skillsRule{vocab: vocab},
		&domainsRule{vocab: vocab, top: cfg.TopDomains},
		&experienceRule{cfg: cfg},
		&educationRule{},
	}
}

// skillsRule detects vocabulary skills in the text and records their
// canonical tags.
type skillsRule struct {
	vocab *skills.Vocabulary
}

func (r *skillsRule) Name() string { return "skills" }

func (r *skillsRule) Apply(text string, p *Profile) error {
	hits := r.vocab.Scan(text)

	tags := make([]string, 0, len(hits))
	for _, hit := range hits {
		tags = append(tags, hit.Canonical)
	}
	sort.Strings(tags)

	p.Skills = tags
	return nil
}

// domainsRule infers subject areas from aggregate skill-hit counts per
// domain, most frequent first.
type domainsRule struct {
	vocab *skills.Vocabulary
	top   int
}

func (r *domainsRule) Name() string { return "domains" }

func (r *domainsRule) Apply(text string, p *Profile) error {
	counts := make(map[string]int)
	for _, hit := range r.vocab.Scan(text) {
		for _, domain := range hit.Domains {
			counts[domain] += hit.Count
		}
	}

	domains := make([]string, 0, len(counts))
	for domain := range counts {
		domains = append(domains, domain)
	}

	sort.Slice(domains, func(i, j int) bool {
		if counts[domains[i]] != counts[domains[j]] {
			return counts[domains[i]] > counts[domains[j]]
		}
		return domains[i] < domains[j]
	})

	if len(domains) > r.top {
		domains = domains[:r.top]
	}

	p.Domains = domains
	return nil
}
