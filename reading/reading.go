// Package reading implements the deterministic reading-level transform.
// Each level is a data record consumed by one shared pipeline, so adding a
// level is a table change rather than a new code path.
package reading

import (
	"regexp"
	"strings"

	"clearpolicy-backend/models"
)

// shrinkFloor is the input length (in characters) above which the transform
// must produce strictly shorter output for levels below 12.
const shrinkFloor = 40

// analogyBudget caps how long a simplified text plus its appended analogy
// may be before the analogy is skipped.
const analogyBudget = 70

// levelConfig drives the shared simplification pipeline for one level
type levelConfig struct {
	identity            bool
	clauseThreshold     int
	splitSubordinate    bool
	maxSentences        int
	maxWordsPerSentence int
	wordRatio           float64
	minWords            int
	charRatio           float64
	analogies           []analogy
}

type analogy struct {
	keywords []string
	sentence string
}

var levelConfigs = map[models.ReadingLevel]levelConfig{
	models.ReadingLevel12: {identity: true},
	models.ReadingLevel8: {
		clauseThreshold: 80,
		wordRatio:       0.8,
		minWords:        3,
		charRatio:       0.9,
	},
	models.ReadingLevel5: {
		clauseThreshold:     80,
		splitSubordinate:    true,
		maxSentences:        2,
		maxWordsPerSentence: 12,
		wordRatio:           0.6,
		minWords:            3,
		charRatio:           0.7,
		analogies: []analogy{
			{keywords: []string{"budget", "tax", "spending"}, sentence: "It works like a family budget."},
			{keywords: []string{"advertising", "disclosure", "label"}, sentence: "It is like a label on a product."},
			{keywords: []string{"theft", "crime", "stealing"}, sentence: "Think of rules at school."},
			{keywords: []string{"environment", "water", "energy"}, sentence: "It is like saving water at home."},
		},
	},
}

// termRule replaces a formal legislative term with a plain synonym
type termRule struct {
	pattern     *regexp.Regexp
	replacement string
}

func newTermRule(term, replacement string) termRule {
	return termRule{
		pattern:     regexp.MustCompile(`(?i)\b` + term + `\b`),
		replacement: replacement,
	}
}

var termRules = []termRule{
	newTermRule("utilize", "use"),
	newTermRule("shall", "will"),
	newTermRule("prohibits", "bans"),
	newTermRule("prohibit", "ban"),
	newTermRule("prohibited", "banned"),
	newTermRule("commence", "start"),
	newTermRule("terminate", "end"),
	newTermRule("allocates", "sets aside"),
	newTermRule("allocate", "set aside"),
	newTermRule("pursuant to", "under"),
	newTermRule("notwithstanding", "despite"),
	newTermRule("amend", "change"),
	newTermRule("statute", "law"),
	newTermRule("legislation", "law"),
	newTermRule("subsequent", "later"),
	newTermRule("prior to", "before"),
	newTermRule("in order to", "to"),
	newTermRule("individuals", "people"),
	newTermRule("obtain", "get"),
	newTermRule("expenditure", "spending"),
}

var (
	whitespaceRE    = regexp.MustCompile(`\s+`)
	parentheticalRE = regexp.MustCompile(`\s*\([^)]*\)`)
	sentenceEndRE   = regexp.MustCompile(`[.!?]+`)
	subordinateRE   = regexp.MustCompile(`(?i),?\s+\b(which|that|because)\b\s+`)
	clauseBreakRE   = regexp.MustCompile(`\s*[;:]\s*`)
)

// Simplify rewrites text for the given reading level. Level "12" is the
// canonical full-detail level; "8" and "5" produce progressively shorter,
// plainer prose. Output is deterministic, ends in terminal punctuation, and
// is strictly shorter than any input over the shrink floor.
func Simplify(text string, level models.ReadingLevel) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return trimmed
	}

	cfg, ok := levelConfigs[level]
	if !ok {
		cfg = levelConfigs[models.ReadingLevel12]
	}
	if cfg.identity {
		return ensureTerminal(trimmed)
	}

	out := whitespaceRE.ReplaceAllString(trimmed, " ")
	out = parentheticalRE.ReplaceAllString(out, "")
	out = replaceTerms(out)

	sentences := splitSentences(out)
	if cfg.splitSubordinate {
		sentences = splitSubordinateClauses(sentences)
	}
	sentences = shortenClauses(sentences, cfg.clauseThreshold)

	if cfg.maxSentences > 0 && len(sentences) > cfg.maxSentences {
		sentences = sentences[:cfg.maxSentences]
	}
	if cfg.maxWordsPerSentence > 0 {
		for i, s := range sentences {
			sentences[i] = capWords(s, cfg.maxWordsPerSentence)
		}
	}

	out = strings.Join(sentences, ". ")

	// Short inputs get term and clause simplification only, never truncation.
	if len(trimmed) <= shrinkFloor {
		return ensureTerminal(out)
	}

	targetWords := int(float64(countWords(trimmed)) * cfg.wordRatio)
	if targetWords < cfg.minWords {
		targetWords = cfg.minWords
	}
	out = capWords(out, targetWords)

	if len(cfg.analogies) > 0 {
		if a := pickAnalogy(trimmed, cfg.analogies); a != "" {
			candidate := ensureTerminal(out) + " " + a
			if len(candidate) <= analogyBudget && len(candidate) < len(trimmed) {
				out = candidate
			}
		}
	}

	ceiling := int(float64(len(trimmed)) * cfg.charRatio)
	if len(out) >= len(trimmed) {
		out = dropLastWord(out)
	}
	out = capChars(out, ceiling)
	if out == "" {
		// A single word longer than the ceiling still yields output.
		out = hardCut(trimmed, ceiling)
	}

	return ensureTerminal(out)
}

func replaceTerms(s string) string {
	for _, rule := range termRules {
		s = rule.pattern.ReplaceAllString(s, rule.replacement)
	}
	return s
}

func splitSentences(s string) []string {
	parts := sentenceEndRE.Split(s, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func splitSubordinateClauses(sentences []string) []string {
	var result []string
	for _, s := range sentences {
		for _, piece := range subordinateRE.Split(s, -1) {
			piece = strings.TrimSpace(strings.Trim(piece, ","))
			if piece != "" {
				result = append(result, piece)
			}
		}
	}
	return result
}

func shortenClauses(sentences []string, threshold int) []string {
	var result []string
	for _, s := range sentences {
		if threshold > 0 && len(s) > threshold {
			for _, clause := range clauseBreakRE.Split(s, -1) {
				clause = strings.TrimSpace(clause)
				if clause != "" {
					result = append(result, clause)
				}
			}
		} else {
			result = append(result, s)
		}
	}
	return result
}

func pickAnalogy(text string, analogies []analogy) string {
	lower := strings.ToLower(text)
	for _, a := range analogies {
		for _, kw := range a.keywords {
			if strings.Contains(lower, kw) {
				return a.sentence
			}
		}
	}
	return ""
}

func countWords(s string) int {
	return len(strings.Fields(s))
}

func capWords(s string, max int) string {
	words := strings.Fields(s)
	if max <= 0 || len(words) <= max {
		return s
	}
	capped := strings.Join(words[:max], " ")
	return strings.TrimRight(capped, ",;:")
}

func dropLastWord(s string) string {
	words := strings.Fields(s)
	if len(words) <= 1 {
		return s
	}
	return strings.Join(words[:len(words)-1], " ")
}

// capChars truncates at a word boundary at or before the ceiling
func capChars(s string, ceiling int) string {
	if ceiling <= 0 || len(s) <= ceiling {
		return s
	}
	cut := strings.LastIndex(s[:ceiling], " ")
	if cut <= 0 {
		return ""
	}
	return strings.TrimRight(s[:cut], " ,;:.")
}

// hardCut truncates mid-word as a last resort, keeping rune boundaries intact
func hardCut(s string, ceiling int) string {
	if ceiling < 1 {
		ceiling = 1
	}
	runes := []rune(s)
	if len(runes) <= ceiling {
		return s
	}
	return string(runes[:ceiling])
}

func ensureTerminal(s string) string {
	if s == "" {
		return s
	}
	s = strings.TrimRight(s, " ,;:")
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}
