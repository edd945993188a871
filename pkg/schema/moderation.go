package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ModerationRequest is the request body for POST /moderations
type ModerationRequest struct {
	Model string   `json:"model,omitempty"`
	Input []string `json:"input"`
}

// ModerationResponse is the response body from POST /moderations
type ModerationResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Results []ModerationResult `json:"results"`
}

// ModerationResult classifies one input. Categories and scores are keyed by
// category name, for example "hate" or "self-harm/intent".
type ModerationResult struct {
	Flagged                   bool                `json:"flagged"`
	Categories                map[string]bool     `json:"categories"`
	CategoryScores            map[string]float64  `json:"category_scores"`
	CategoryAppliedInputTypes map[string][]string `json:"category_applied_input_types,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Flagged returns true if any result was flagged
func (r ModerationResponse) Flagged() bool {
	for _, result := range r.Results {
		if result.Flagged {
			return true
		}
	}
	return false
}

func (r ModerationResponse) String() string {
	return Stringify(r)
}
