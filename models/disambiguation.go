package models

// ClarifyingQuestion is one question the caller should put to the user
// before searching, with 2-4 concise answer options.
type ClarifyingQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Disambiguation is the request-scoped result of query disambiguation.
// It is never persisted.
type Disambiguation struct {
	NeedsClarification bool                 `json:"needs_clarification"`
	Questions          []ClarifyingQuestion `json:"questions,omitempty"`
	RefinedQuery       string               `json:"refined_query,omitempty"`
}
