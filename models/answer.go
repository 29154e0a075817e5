package models

import (
	"database/sql/driver"
	"encoding/json"
)

// PolicyLevel represents the level of government a policy belongs to
type PolicyLevel string

const (
	LevelFederal PolicyLevel = "Federal"
	LevelState   PolicyLevel = "State"
	LevelLocal   PolicyLevel = "Local"
)

// SourceType classifies where an answer source came from
type SourceType string

const (
	SourceFederal SourceType = "Federal"
	SourceState   SourceType = "State"
	SourceLocal   SourceType = "Local"
	SourceWeb     SourceType = "Web"
)

// AnswerSource is one numbered, citable source backing an answer
type AnswerSource struct {
	ID       int        `json:"id"` // stable 1-based citation number
	Title    string     `json:"title"`
	URL      string     `json:"url"`
	Domain   string     `json:"domain"`
	Type     SourceType `json:"type"`
	Verified bool       `json:"verified"`
}

// AnswerSources is a list of answer sources, persisted as JSONB
type AnswerSources []AnswerSource

// Value implements driver.Valuer for JSONB
func (a AnswerSources) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB
func (a *AnswerSources) Scan(value interface{}) error {
	if value == nil {
		*a = make(AnswerSources, 0)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*a = make(AnswerSources, 0)
		return nil
	}

	if len(bytes) == 0 {
		*a = make(AnswerSources, 0)
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// LocalImpact describes how a policy plays out at a specific location
type LocalImpact struct {
	ZipCode  string `json:"zip_code"`
	Location string `json:"location"`
	Content  string `json:"content"`
}

// AnswerSections holds the structured breakdown of an answer
type AnswerSections struct {
	Summary          string       `json:"summary,omitempty"`
	KeyProvisions    []string     `json:"key_provisions,omitempty"`
	LocalImpact      *LocalImpact `json:"local_impact,omitempty"`
	ArgumentsFor     []string     `json:"arguments_for,omitempty"`
	ArgumentsAgainst []string     `json:"arguments_against,omitempty"`
}

// Answer is the canonical, level-agnostic synthesis result for one query.
// Constructed once per query resolution and immutable thereafter.
type Answer struct {
	PolicyID        string         `json:"policy_id"`
	PolicyName      string         `json:"policy_name"`
	Level           PolicyLevel    `json:"level"`
	Category        string         `json:"category"`
	FullTextSummary string         `json:"full_text_summary"`
	Sections        AnswerSections `json:"sections"`
	Sources         AnswerSources  `json:"sources"`
}
