package service

import (
	"regexp"
	"sort"
	"strings"

	"clearpolicy-backend/models"
	"clearpolicy-backend/registry"
)

// Text-extraction heuristics for the live-registry path. Everything here
// selects or trims sentences the record already contains, or emits content a
// keyword match licenses - it never fabricates specifics.

// strongVerbs mark sentences that state what a policy actually does
var strongVerbs = []string{
	"require", "prohibit", "authorize", "fund", "establish", "repeal",
	"reclassif", "expand", "reduce", "increase", "create", "direct",
	"impose", "exempt", "mandate", "appropriate",
}

// policyNouns mark domain-relevant subject matter
var policyNouns = []string{
	"program", "agency", "fee", "tax", "fund", "grant", "penalty",
	"felony", "misdemeanor", "school", "district", "permit", "benefit",
	"department", "commission",
}

var stakeholderTable = []struct {
	keyword      string
	stakeholders []string
}{
	{"school", []string{"students", "schools", "teachers"}},
	{"education", []string{"students", "parents", "school districts"}},
	{"tax", []string{"taxpayers", "businesses"}},
	{"health", []string{"patients", "health care providers", "insurers"}},
	{"housing", []string{"renters", "homeowners", "developers"}},
	{"environment", []string{"residents", "businesses", "conservation agencies"}},
	{"water", []string{"households", "farmers", "water districts"}},
	{"energy", []string{"utility customers", "energy producers"}},
	{"theft", []string{"retailers", "law enforcement", "courts"}},
	{"crime", []string{"law enforcement", "courts", "crime victims"}},
	{"veteran", []string{"veterans", "military families"}},
	{"wage", []string{"workers", "employers"}},
	{"labor", []string{"workers", "unions", "employers"}},
	{"transport", []string{"commuters", "transit agencies"}},
	{"voting", []string{"voters", "election officials"}},
}

var argumentTable = []struct {
	keyword string
	pro     string
	con     string
}{
	{"tax", "Raises revenue that can support public services.", "Increases costs for taxpayers and businesses."},
	{"school", "Invests in education and student outcomes.", "Adds costs that may fall on local budgets."},
	{"education", "Invests in education and student outcomes.", "Adds costs that may fall on local budgets."},
	{"crime", "Strengthens public safety and accountability.", "May increase incarceration and court costs."},
	{"theft", "Strengthens protections for retailers and consumers.", "May increase incarceration and court costs."},
	{"health", "Expands access to care for those who need it.", "May raise premiums or public spending."},
	{"housing", "Could ease housing shortages and costs.", "May face local opposition and slow construction."},
	{"environment", "Protects natural resources for the long term.", "May raise compliance costs for businesses."},
	{"water", "Protects water supplies for the long term.", "May raise rates or compliance costs."},
	{"energy", "Supports a more reliable, cleaner energy supply.", "May raise rates or compliance costs."},
	{"voting", "Makes participation in elections easier.", "Raises administration and verification concerns."},
	{"wage", "Raises take-home pay for affected workers.", "May raise labor costs for employers."},
}

var extractSentenceRE = regexp.MustCompile(`[.!?]+\s+`)

// answerFromRecord synthesizes an Answer from a live registry record
func (s *AnswerService) answerFromRecord(record *models.BillRecord) *models.Answer {
	text := record.Text()
	summary := densestSentence(text)

	answer := &models.Answer{
		PolicyID:        strings.ToLower(strings.ReplaceAll(record.Identifier, " ", "-")),
		PolicyName:      recordName(record),
		Level:           record.Level,
		Category:        recordCategory(record),
		FullTextSummary: summary,
		Sections: models.AnswerSections{
			Summary:          summary,
			KeyProvisions:    keyProvisions(text),
			ArgumentsFor:     keywordArguments(record, true),
			ArgumentsAgainst: keywordArguments(record, false),
		},
		Sources: models.AnswerSources{
			{
				ID:       1,
				Title:    record.Title,
				URL:      record.URL,
				Domain:   registry.DomainFromURL(record.URL),
				Type:     sourceTypeForLevel(record.Level),
				Verified: true,
			},
		},
	}
	if record.LatestAction != "" {
		answer.FullTextSummary = summary + " Latest action: " + strings.TrimSuffix(record.LatestAction, ".") + "."
	}
	return answer
}

func recordName(record *models.BillRecord) string {
	if record.Identifier != "" && record.Title != "" {
		return record.Identifier + ": " + record.Title
	}
	if record.Title != "" {
		return record.Title
	}
	return record.Identifier
}

func recordCategory(record *models.BillRecord) string {
	if len(record.Subjects) > 0 && record.Subjects[0] != "" {
		return record.Subjects[0]
	}
	return "General"
}

func sourceTypeForLevel(level models.PolicyLevel) models.SourceType {
	switch level {
	case models.LevelFederal:
		return models.SourceFederal
	case models.LevelLocal:
		return models.SourceLocal
	default:
		return models.SourceState
	}
}

// densestSentence picks the most policy-dense sentence by counting strong
// verbs and domain nouns. Best-effort extraction, not a verified claim.
func densestSentence(text string) string {
	sentences := splitRecordSentences(text)
	if len(sentences) == 0 {
		return strings.TrimSpace(text)
	}

	best := sentences[0]
	bestScore := -1
	for _, sentence := range sentences {
		if len(sentence) < 20 {
			continue
		}
		score := sentenceScore(sentence)
		if score > bestScore {
			best = sentence
			bestScore = score
		}
	}

	if len(best) > 300 {
		best = best[:300]
		if cut := strings.LastIndex(best, " "); cut > 0 {
			best = best[:cut]
		}
	}
	if !strings.HasSuffix(best, ".") {
		best += "."
	}
	return best
}

func sentenceScore(sentence string) int {
	lower := strings.ToLower(sentence)
	score := 0
	for _, verb := range strongVerbs {
		score += strings.Count(lower, verb) * 2
	}
	for _, noun := range policyNouns {
		score += strings.Count(lower, noun)
	}
	return score
}

// keyProvisions returns up to three policy-dense sentences, highest first
func keyProvisions(text string) []string {
	sentences := splitRecordSentences(text)

	type scored struct {
		sentence string
		score    int
		index    int
	}
	var candidates []scored
	for i, sentence := range sentences {
		if len(sentence) < 20 {
			continue
		}
		if score := sentenceScore(sentence); score > 0 {
			candidates = append(candidates, scored{sentence, score, i})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	// Restore document order so provisions read naturally
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].index < candidates[j].index
	})

	provisions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		provisions = append(provisions, strings.TrimSuffix(c.sentence, "."))
	}
	return provisions
}

// Stakeholders lists who a record plausibly affects, licensed only by
// keyword matches over its text and subjects
func Stakeholders(record *models.BillRecord) []string {
	haystack := strings.ToLower(record.Text() + " " + record.Title + " " + strings.Join(record.Subjects, " "))
	seen := make(map[string]bool)
	var result []string
	for _, entry := range stakeholderTable {
		if !strings.Contains(haystack, entry.keyword) {
			continue
		}
		for _, st := range entry.stakeholders {
			if !seen[st] {
				seen[st] = true
				result = append(result, st)
			}
		}
	}
	return result
}

func keywordArguments(record *models.BillRecord, pro bool) []string {
	haystack := strings.ToLower(record.Text() + " " + record.Title + " " + strings.Join(record.Subjects, " "))
	seen := make(map[string]bool)
	var result []string
	for _, entry := range argumentTable {
		if !strings.Contains(haystack, entry.keyword) {
			continue
		}
		arg := entry.con
		if pro {
			arg = entry.pro
		}
		if !seen[arg] {
			seen[arg] = true
			result = append(result, arg)
		}
		if len(result) == 3 {
			break
		}
	}
	return result
}

func splitRecordSentences(text string) []string {
	parts := extractSentenceRE.Split(strings.TrimSpace(text), -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
