package scoring

import "strings"

// subTrigger appends one extra sub-classification label when its
// predicate matches. Triggers run in declaration order and only the
// first match is appended.
type subTrigger struct {
	match func(stated, observed string) bool
	label string
}

type tierContent struct {
	label              string
	analysis           string
	subClassifications []string
	triggers           []subTrigger
	recommendations    []string
	nextSteps          string
}

func observedContainsAny(terms ...string) func(string, string) bool {
	return func(_, observed string) bool {
		for _, term := range terms {
			if strings.Contains(observed, term) {
				return true
			}
		}
		return false
	}
}

var tierContents = map[Tier]tierContent{
	TierRespecting: {
		label: "Class A: Boundary-Respecting",
		analysis: "Observed behaviors track the stated boundaries. Decisions reference " +
			"documented scope, authority is exercised within declared limits, and " +
			"exceptions are surfaced rather than quietly absorbed.",
		subClassifications: []string{
			"Scope-Consistent Decision Making",
			"Documented Authority",
		},
		triggers: []subTrigger{
			{
				match: func(stated, observed string) bool {
					return strings.Contains(stated, "defer") || strings.Contains(observed, "recogniz")
				},
				label: "External Deference",
			},
		},
		recommendations: []string{
			"Keep boundary documents versioned and referenceable so adherence stays verifiable.",
			"Audit a sample of recent decisions against stated scope at a regular cadence.",
			"Record near-boundary cases and their resolutions; they define the edge in practice.",
			"Re-run the diagnostic after any change in mandate or leadership.",
		},
		nextSteps: "No corrective action is indicated. Maintain the current documentation " +
			"and review cadence, and reassess if observed behavior begins to diverge from " +
			"stated scope.",
	},
	TierAmbiguous: {
		label: "Class B: Boundary-Ambiguous",
		analysis: "Stated boundaries and observed behaviors do not line up cleanly. Scope " +
			"is applied unevenly across cases or units, which more often signals " +
			"underspecified policy than deliberate overreach.",
		subClassifications: []string{
			"Inconsistent Application",
			"Underspecified Scope",
		},
		triggers: []subTrigger{
			{
				match: observedContainsAny("deliberate", "flexible"),
				label: "Discretionary Flexibility",
			},
		},
		recommendations: []string{
			"Inventory the cases where application diverged and identify the common factor.",
			"Rewrite ambiguous clauses so each has a single defensible reading.",
			"Assign one owner for boundary interpretation so discretion is exercised in one place.",
			"Track exceptions explicitly instead of letting them accumulate as precedent.",
			"Repeat the diagnostic after the clarified language has been in effect for a full decision cycle.",
		},
		nextSteps: "Treat ambiguity as a documentation defect: clarify the stated " +
			"boundaries first, then re-evaluate observed behavior against the clarified text.",
	},
	TierViolating: {
		label: "Class C: Boundary-Violating",
		analysis: "Observed behaviors exceed the stated boundaries. Decisions are being " +
			"made outside declared scope, and institutional action is displacing limits " +
			"the institution committed to.",
		subClassifications: []string{
			"Scope Exceedance",
			"Authority Overreach",
		},
		triggers: []subTrigger{
			{
				match: observedContainsAny("substitute", "override"),
				label: "Judgment Substitution",
			},
		},
		recommendations: []string{
			"Halt the out-of-scope activity or formally amend the stated boundaries to cover it.",
			"Escalate the specific divergences to the accountable oversight body.",
			"Document each gap between stated scope and observed action, with dates and decisions.",
			"Establish a review gate for decisions that approach the stated limits.",
			"Re-run the diagnostic after corrective measures have taken effect.",
		},
		nextSteps: "This classification requires explicit remediation: the divergence " +
			"between stated and observed must be closed from the behavior side or formally " +
			"authorized from the policy side, never left implicit.",
	},
}
