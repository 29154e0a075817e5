// Package curated holds the pre-vetted summary table and its matcher.
// Matching is strictly structural (instrument type + number + year) so a hit
// is guaranteed to be verified, human-written content - no fuzzy or semantic
// matching is ever attempted here.
package curated

import (
	"regexp"
	"strconv"
	"strings"

	"clearpolicy-backend/models"
)

// InstrumentType classifies the kind of legal instrument a query names
type InstrumentType string

const (
	TypeProposition InstrumentType = "proposition"
	TypeHouseBill   InstrumentType = "house_bill"
	TypeSenateBill  InstrumentType = "senate_bill"
	TypeAssemblyBill InstrumentType = "assembly_bill"
	TypeMeasure     InstrumentType = "measure"
)

// InstrumentRef is a structural reference to one bill, proposition, or measure
type InstrumentRef struct {
	Type   InstrumentType
	Number int
	Year   int    // 0 when the query names no year
	State  string // lowercase full state name, "" when absent
}

// KnownSummary is one curated entry: a verified answer at every reading
// level, with the 12th-grade level authoritative.
type KnownSummary struct {
	PolicyID   string
	PolicyName string
	Level      models.PolicyLevel
	Category   string
	Type       InstrumentType
	Number     int
	Year       int
	State      string
	Summaries  map[models.ReadingLevel]models.SummaryLike
	Sources    models.AnswerSources
}

// Base returns the authoritative 12th-grade summary
func (k *KnownSummary) Base() models.SummaryLike {
	return k.Summaries[models.ReadingLevel12]
}

// MatchInput carries the fields a caller knows about the instrument it wants
// a curated summary for. Only the structural fields participate in matching;
// title/content/subjects are accepted for interface completeness but never
// used to fuzzy-match.
type MatchInput struct {
	Title      string
	Content    string
	Subjects   []string
	Identifier string
	Type       InstrumentType
	Number     int
	Year       int
}

var instrumentPatterns = []struct {
	re  *regexp.Regexp
	typ InstrumentType
}{
	{regexp.MustCompile(`(?i)\b(?:proposition|prop)\.?\s*(\d{1,4})\b`), TypeProposition},
	{regexp.MustCompile(`(?i)\bh\.?\s?r\.?\s*(\d{1,5})\b`), TypeHouseBill},
	{regexp.MustCompile(`(?i)\bs\.?\s?b\.?\s*(\d{1,5})\b`), TypeSenateBill},
	{regexp.MustCompile(`(?i)\ba\.?\s?b\.?\s*(\d{1,5})\b`), TypeAssemblyBill},
	{regexp.MustCompile(`(?i)\bmeasure\s+(\d{1,4})\b`), TypeMeasure},
}

var yearRE = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// ParseQuery extracts a structural instrument reference from a raw query.
// Returns false when the query names no recognizable instrument.
func ParseQuery(query string) (InstrumentRef, bool) {
	ref := InstrumentRef{}
	matched := false
	for _, p := range instrumentPatterns {
		if m := p.re.FindStringSubmatch(query); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			ref.Type = p.typ
			ref.Number = n
			matched = true
			break
		}
	}
	if !matched {
		return InstrumentRef{}, false
	}
	if m := yearRE.FindString(query); m != "" {
		ref.Year, _ = strconv.Atoi(m)
	}
	lower := strings.ToLower(query)
	for _, state := range StateNames {
		if strings.Contains(lower, state) {
			ref.State = state
			break
		}
	}
	return ref, true
}

// Match looks up a curated summary by exact structural identity. A year in
// the input must agree with the entry's year when both are present; a nil
// return means the caller falls through to live or AI synthesis.
func Match(input MatchInput) *KnownSummary {
	typ := input.Type
	number := input.Number
	year := input.Year
	if typ == "" || number == 0 {
		if ref, ok := ParseQuery(input.Identifier); ok {
			typ = ref.Type
			number = ref.Number
			if year == 0 {
				year = ref.Year
			}
		}
	}
	if typ == "" || number == 0 {
		return nil
	}
	for i := range table {
		entry := &table[i]
		if entry.Type != typ || entry.Number != number {
			continue
		}
		if year != 0 && entry.Year != 0 && entry.Year != year {
			continue
		}
		return entry
	}
	return nil
}

// MatchQuery parses a raw query and matches it against the curated table
func MatchQuery(query string) *KnownSummary {
	ref, ok := ParseQuery(query)
	if !ok {
		return nil
	}
	return Match(MatchInput{Type: ref.Type, Number: ref.Number, Year: ref.Year})
}

// StateNames lists all U.S. state names, lowercase
var StateNames = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana", "maine",
	"maryland", "massachusetts", "michigan", "minnesota", "mississippi",
	"missouri", "montana", "nebraska", "nevada", "new hampshire", "new jersey",
	"new mexico", "new york", "north carolina", "north dakota", "ohio",
	"oklahoma", "oregon", "pennsylvania", "rhode island", "south carolina",
	"south dakota", "tennessee", "texas", "utah", "vermont", "virginia",
	"washington", "west virginia", "wisconsin", "wyoming",
}
