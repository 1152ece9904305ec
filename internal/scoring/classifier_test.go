package scoring

import (
	"reflect"
	"testing"
)

func TestClassifyTierSelection(t *testing.T) {
	tests := []struct {
		name     string
		stated   string
		observed string
		expected Tier
	}{
		{
			"respecting keywords",
			"decisions are made within the published charter",
			"the institution consistently adheres to stated boundaries",
			TierRespecting,
		},
		{
			"violating majority",
			"the charter limits review to procedural questions",
			"decisions were made beyond the stated scope and violates documented limits",
			TierViolating,
		},
		{
			"ambiguous beats respecting",
			"policy covers all member units",
			"the policy is unclear and application varies across departments",
			TierAmbiguous,
		},
		{
			"no keywords defaults to respecting",
			"the institution handles admissions",
			"committees meet quarterly and publish minutes",
			TierRespecting,
		},
		{
			"empty observed defaults to respecting",
			"",
			"",
			TierRespecting,
		},
		{
			"single violating keyword wins",
			"",
			"the board exceeded its remit",
			TierViolating,
		},
		{
			"three-way tie falls through to respecting",
			"",
			"guidance is clear yet outcomes are contrary and sometimes disputed",
			TierRespecting,
		},
		{
			"violating tied with ambiguous is not violating",
			"",
			"conduct went beyond scope but enforcement is unclear",
			TierRespecting,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify(tc.stated, tc.observed)
			if result.Tier != tc.expected {
				t.Fatalf("expected tier %s got %s", tc.expected, result.Tier)
			}
		})
	}
}

func TestClassifyCountsDistinctTermsOnce(t *testing.T) {
	// "beyond" three times is still one violating hit; two respecting
	// hits must outrank it.
	observed := "activity went beyond, beyond, and beyond again, but review is consistent and explicit"
	result := Classify("", observed)
	if result.Tier != TierRespecting {
		t.Fatalf("expected respecting got %s", result.Tier)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	result := Classify("", "THE BOARD VIOLATES ITS OWN CHARTER")
	if result.Tier != TierViolating {
		t.Fatalf("expected violating got %s", result.Tier)
	}
}

func TestClassifyStatedNeverDrivesTier(t *testing.T) {
	// Violating vocabulary in the stated text must not affect selection.
	result := Classify("violates overreach exceeded beyond outside", "review consistently follows procedure")
	if result.Tier != TierRespecting {
		t.Fatalf("expected respecting got %s", result.Tier)
	}
}

func TestClassifySubClassificationTriggers(t *testing.T) {
	tests := []struct {
		name     string
		stated   string
		observed string
		expected []string
	}{
		{
			"violating base only",
			"",
			"decisions were made beyond the stated scope and violates documented limits",
			[]string{"Scope Exceedance", "Authority Overreach"},
		},
		{
			"violating with override trigger",
			"",
			"the committee chose to override stated limits, beyond its remit, contrary to charter",
			[]string{"Scope Exceedance", "Authority Overreach", "Judgment Substitution"},
		},
		{
			"ambiguous with flexible trigger",
			"",
			"rules are unclear and enforcement varies, described internally as flexible",
			[]string{"Inconsistent Application", "Underspecified Scope", "Discretionary Flexibility"},
		},
		{
			"respecting defer trigger reads stated text",
			"the body defers contested cases to the regulator",
			"the institution consistently adheres to stated boundaries",
			[]string{"Scope-Consistent Decision Making", "Documented Authority", "External Deference"},
		},
		{
			"respecting recognition trigger reads observed text",
			"",
			"staff recognize the published limits and follows them",
			[]string{"Scope-Consistent Decision Making", "Documented Authority", "External Deference"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify(tc.stated, tc.observed)
			if !reflect.DeepEqual(result.SubClassifications, tc.expected) {
				t.Fatalf("expected %v got %v", tc.expected, result.SubClassifications)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	stated := "review is limited to published criteria"
	observed := "the policy is unclear and application varies across departments"
	first := Classify(stated, observed)
	second := Classify(stated, observed)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input produced different results: %v vs %v", first, second)
	}
}

func TestClassifyResultContent(t *testing.T) {
	result := Classify("", "conduct went beyond scope and violates the charter")
	if result.Label != "Class C: Boundary-Violating" {
		t.Fatalf("unexpected label %q", result.Label)
	}
	if result.Analysis == "" || result.NextSteps == "" {
		t.Fatal("expected fixed analysis and next steps text")
	}
	if n := len(result.Recommendations); n < 4 || n > 5 {
		t.Fatalf("expected 4-5 recommendations got %d", n)
	}
}
