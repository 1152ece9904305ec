package scoring

import "strings"

// Tier identifies the primary boundary classification.
type Tier string

const (
	TierRespecting Tier = "respecting"
	TierAmbiguous  Tier = "ambiguous"
	TierViolating  Tier = "violating"
)

// Result is the full classification output for a single diagnostic.
type Result struct {
	Tier               Tier     `json:"tier"`
	Label              string   `json:"label"`
	Analysis           string   `json:"analysis"`
	SubClassifications []string `json:"sub_classifications"`
	Recommendations    []string `json:"recommendations"`
	NextSteps          string   `json:"next_steps"`
}

// Keyword sets driving tier selection. Matching is plain substring
// containment over the lowercased observed-behaviors text; each term
// counts once no matter how often it repeats.
var (
	respectingTerms = []string{"consistent", "adheres", "maintains", "follows", "respects", "clear", "explicit"}
	violatingTerms  = []string{"violates", "overreach", "exceeded", "beyond", "outside", "substitutes", "contrary"}
	ambiguousTerms  = []string{"unclear", "ambiguous", "inconsistent", "varies", "sometimes", "ad hoc"}
)

// Classify maps the stated boundaries and observed behaviors onto one of
// the three tiers. The stated text only influences the conditional
// sub-classification triggers; tier selection reads observed alone.
func Classify(stated, observed string) Result {
	stated = strings.ToLower(stated)
	observed = strings.ToLower(observed)

	respecting := countDistinct(observed, respectingTerms)
	violating := countDistinct(observed, violatingTerms)
	ambiguous := countDistinct(observed, ambiguousTerms)

	// Order matters: violating wins only on a strict double majority,
	// ambiguous only beats respecting, and everything else (including
	// all-zero and tied scores) lands on respecting.
	tier := TierRespecting
	switch {
	case violating > respecting && violating > ambiguous:
		tier = TierViolating
	case ambiguous > respecting:
		tier = TierAmbiguous
	}

	content := tierContents[tier]

	subs := make([]string, 0, len(content.subClassifications)+1)
	subs = append(subs, content.subClassifications...)
	for _, trigger := range content.triggers {
		if trigger.match(stated, observed) {
			subs = append(subs, trigger.label)
			break
		}
	}

	recs := make([]string, len(content.recommendations))
	copy(recs, content.recommendations)

	return Result{
		Tier:               tier,
		Label:              content.label,
		Analysis:           content.analysis,
		SubClassifications: subs,
		Recommendations:    recs,
		NextSteps:          content.nextSteps,
	}
}

func countDistinct(text string, terms []string) int {
	hits := 0
	for _, term := range terms {
		if strings.Contains(text, term) {
			hits++
		}
	}
	return hits
}
