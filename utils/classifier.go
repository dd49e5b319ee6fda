package utils

import (
	"regexp"

	"github.com/Aashish23092/tax-document-extraction/dto"
)

const (
	classifyHaystackLimit = 4000
	minClassifyConfidence = 0.35
	unknownPenalty        = 0.8
	patternHitBonus       = 0.2
)

type docTypePatterns struct {
	docType  dto.DocType
	patterns []*regexp.Regexp
}

// Declaration order is the tie-break order.
var classifierPatterns = []docTypePatterns{
	{
		docType: dto.DocTypeW2,
		patterns: compileKeywords(
			`w[-_ ]?2`,
			`form\s*w-?2`,
			`wage and tax statement`,
		),
	},
	{
		docType: dto.DocTypeBrokerage1099,
		patterns: compileKeywords(
			`1099`,
			`1099-div`,
			`1099-int`,
			`1099-b`,
			`composite`,
			`brokerage`,
		),
	},
	{
		docType: dto.DocTypeForm1098,
		patterns: compileKeywords(
			`1098`,
			`form\s*1098`,
			`mortgage interest statement`,
			`mortgage interest received`,
		),
	},
}

func compileKeywords(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}

// ClassifyDocument scores the file name plus the first 4000 characters of text against each
// form type's keyword set. The best score wins; a winner below 0.35 is reported as unknown
// with its confidence scaled by 0.8.
func ClassifyDocument(filename, text string) dto.ClassificationResult {
	haystack := filename + "\n" + truncateRunes(text, classifyHaystackLimit)

	best := dto.DocTypeUnknown
	bestScore := -1.0
	for _, candidate := range classifierPatterns {
		score := keywordScore(candidate.patterns, haystack)
		if score > bestScore {
			best = candidate.docType
			bestScore = score
		}
	}

	year := DetectYear(haystack)
	if bestScore < minClassifyConfidence {
		return dto.ClassificationResult{
			DocType:      dto.DocTypeUnknown,
			Confidence:   RoundCents(bestScore * unknownPenalty),
			DetectedYear: year,
		}
	}

	return dto.ClassificationResult{
		DocType:      best,
		Confidence:   RoundCents(bestScore),
		DetectedYear: year,
	}
}

func keywordScore(patterns []*regexp.Regexp, haystack string) float64 {
	hits := 0
	for _, p := range patterns {
		if p.MatchString(haystack) {
			hits++
		}
	}
	if hits == 0 {
		return 0
	}
	score := float64(hits)/float64(len(patterns)) + patternHitBonus
	if score > 1.0 {
		score = 1.0
	}
	return score
}
