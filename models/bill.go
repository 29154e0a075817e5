package models

// BillRecord is the normalized shape a live legislative registry returns
// for one bill, proposition, or ballot measure.
type BillRecord struct {
	Identifier   string      `json:"identifier"` // e.g. "H.R. 123", "SB 45"
	Title        string      `json:"title"`
	Abstract     string      `json:"abstract"`
	Summary      string      `json:"summary"`
	LatestAction string      `json:"latest_action"`
	Subjects     []string    `json:"subjects"`
	Level        PolicyLevel `json:"level"`
	State        string      `json:"state,omitempty"`
	Session      string      `json:"session,omitempty"`
	URL          string      `json:"url"`
}

// Text returns the richest prose the record carries, preferring the full
// summary over the abstract over the bare title.
func (b BillRecord) Text() string {
	if b.Summary != "" {
		return b.Summary
	}
	if b.Abstract != "" {
		return b.Abstract
	}
	return b.Title
}
