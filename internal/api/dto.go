package api

import "boundary-diagnostic/internal/store"

// DiagnosticResponse wraps the rendered HTML fragment.
type DiagnosticResponse struct {
	Diagnostic string `json:"diagnostic"`
}

// TallyDTO is the API representation of one tier tally row.
type TallyDTO struct {
	InstitutionType string `json:"institution_type"`
	Tier            string `json:"tier"`
	Count           int64  `json:"count"`
}

// StatsResponse reports aggregate classification counts.
type StatsResponse struct {
	Items []TallyDTO `json:"items"`
	Total int64      `json:"total"`
}

// TallyFromModel converts a store.TierTally into the DTO representation.
func TallyFromModel(t store.TierTally) TallyDTO {
	return TallyDTO{
		InstitutionType: t.InstitutionType,
		Tier:            t.Tier,
		Count:           t.Count,
	}
}
