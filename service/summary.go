package service

import (
	"strings"

	"clearpolicy-backend/evidence"
	"clearpolicy-backend/models"
	"clearpolicy-backend/reading"
)

// AnswerToSummary projects a canonical Answer into its authoritative
// 12th-grade SummaryLike view. Citations are derived flat from the answer
// sources (no location tags), so coverage falls back to the genuineness
// heuristic.
func AnswerToSummary(answer *models.Answer) models.SummaryLike {
	citations := make([]models.Citation, 0, len(answer.Sources))
	for _, src := range answer.Sources {
		citations = append(citations, models.Citation{
			SourceName: src.Title,
			URL:        src.URL,
		})
	}

	summary := models.SummaryLike{
		Level:       models.ReadingLevel12,
		TLDR:        answer.Sections.Summary,
		WhatItDoes:  strings.Join(answer.Sections.KeyProvisions, ". "),
		Pros:        strings.Join(answer.Sections.ArgumentsFor, " "),
		Cons:        strings.Join(answer.Sections.ArgumentsAgainst, " "),
		Citations:   citations,
		SourceCount: len(answer.Sources),
	}
	if summary.TLDR == "" {
		summary.TLDR = answer.FullTextSummary
	}
	summary.SourceRatio = evidence.SourceRatioFrom(summary.SectionTexts(), summary.Citations)
	return summary
}

// SummaryAtLevel derives a reading-level view from a base summary. The base
// is never mutated; the derived value carries the same citations and a
// freshly computed coverage score, since any text change invalidates the
// prior one.
func SummaryAtLevel(base models.SummaryLike, level models.ReadingLevel) models.SummaryLike {
	if level == base.Level || level == models.ReadingLevel12 {
		return base
	}

	derived := models.SummaryLike{
		Level:       level,
		TLDR:        reading.Simplify(base.TLDR, level),
		WhatItDoes:  reading.Simplify(base.WhatItDoes, level),
		WhoAffected: reading.Simplify(base.WhoAffected, level),
		Pros:        reading.Simplify(base.Pros, level),
		Cons:        reading.Simplify(base.Cons, level),
		Citations:   base.Citations,
		SourceCount: base.SourceCount,
	}
	derived.SourceRatio = evidence.SourceRatioFrom(derived.SectionTexts(), derived.Citations)
	return derived
}
