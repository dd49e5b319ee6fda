package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	artifactReplacer = strings.NewReplacer(
		"\r\n", "\n",
		"\r", "\n",
		"\u2010", "-",
		"\u2011", "-",
		"\u2012", "-",
		"\u2013", "-",
		"\u2014", "-",
		"\u2015", "-",
		"\u2212", "-",
		"\u00a0", " ",
	)

	// "Box l" / "Box I" read by OCR instead of "Box 1".
	boxLetterRegex       = regexp.MustCompile(`(?i)\b(box[ \t]+)[li]\b`)
	horizontalSpaceRegex = regexp.MustCompile(`[ \t]+`)
	blankLinesRegex      = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText cleans PDF/OCR artifacts so every downstream parser sees the same canonical
// text. It is idempotent: NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	normalized := norm.NFC.String(text)
	normalized = artifactReplacer.Replace(normalized)
	normalized = replaceBetweenDigits(normalized, "Oo", '0')
	normalized = boxLetterRegex.ReplaceAllString(normalized, "${1}1")
	normalized = replaceBetweenDigits(normalized, "lI", '1')
	normalized = horizontalSpaceRegex.ReplaceAllString(normalized, " ")
	normalized = blankLinesRegex.ReplaceAllString(normalized, "\n\n")

	return strings.TrimSpace(normalized)
}

// replaceBetweenDigits swaps any rune in letters for digit when both neighbours are ASCII
// digits. Neighbours are read from the input, so "1O1O1" becomes "10101".
func replaceBetweenDigits(s string, letters string, digit rune) string {
	runes := []rune(s)
	out := make([]rune, len(runes))
	copy(out, runes)

	for i := 1; i < len(runes)-1; i++ {
		if strings.ContainsRune(letters, runes[i]) && isASCIIDigit(runes[i-1]) && isASCIIDigit(runes[i+1]) {
			out[i] = digit
		}
	}
	return string(out)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
