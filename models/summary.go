package models

// ReadingLevel identifies one of the supported reading levels
type ReadingLevel string

const (
	ReadingLevel5  ReadingLevel = "5"
	ReadingLevel8  ReadingLevel = "8"
	ReadingLevel12 ReadingLevel = "12"
)

// ParseReadingLevel validates a level string, defaulting to 12th grade
func ParseReadingLevel(raw string) (ReadingLevel, bool) {
	switch ReadingLevel(raw) {
	case ReadingLevel5, ReadingLevel8, ReadingLevel12:
		return ReadingLevel(raw), true
	case "":
		return ReadingLevel12, true
	}
	return "", false
}

// CitationLocation tags a citation with the answer section it backs
type CitationLocation string

const (
	LocationTLDR CitationLocation = "tldr"
	LocationWhat CitationLocation = "what"
	LocationWho  CitationLocation = "who"
	LocationPros CitationLocation = "pros"
	LocationCons CitationLocation = "cons"
)

// CitationLocations lists the five canonical section slots in order
var CitationLocations = []CitationLocation{
	LocationTLDR,
	LocationWhat,
	LocationWho,
	LocationPros,
	LocationCons,
}

// Citation represents one traceable quotation backing a section of a summary
type Citation struct {
	Quote      string           `json:"quote"`
	SourceName string           `json:"source_name"`
	URL        string           `json:"url"`
	Location   CitationLocation `json:"location,omitempty"`
}

// SummaryLike is a single reading-level view of an answer.
// Values are immutable once built - deriving another level produces a new value.
type SummaryLike struct {
	TLDR        string       `json:"tldr"`
	WhatItDoes  string       `json:"what_it_does"`
	WhoAffected string       `json:"who_affected"`
	Pros        string       `json:"pros"`
	Cons        string       `json:"cons"`
	SourceRatio float64      `json:"source_ratio"`
	Citations   []Citation   `json:"citations"`
	SourceCount int          `json:"source_count,omitempty"`
	Level       ReadingLevel `json:"level"`
}

// SectionTexts returns the five canonical section bodies in slot order
func (s SummaryLike) SectionTexts() []string {
	return []string{s.TLDR, s.WhatItDoes, s.WhoAffected, s.Pros, s.Cons}
}
