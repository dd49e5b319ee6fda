package utils

import (
	"testing"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDocument(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		text       string
		docType    dto.DocType
		confidence float64
	}{
		{
			name:       "w2",
			filename:   "My_W2_2024.pdf",
			text:       "Form W-2 Wage and Tax Statement 2024",
			docType:    dto.DocTypeW2,
			confidence: 1.0,
		},
		{
			name:       "brokerage composite",
			filename:   "fidelity_composite.pdf",
			text:       "1099-DIV 1099-INT 1099-B composite statement",
			docType:    dto.DocTypeBrokerage1099,
			confidence: 1.0,
		},
		{
			name:       "1098",
			filename:   "2024_1098_Mortgage_Ryan_WellsFargo.pdf",
			text:       "Form 1098 Mortgage Interest Statement",
			docType:    dto.DocTypeForm1098,
			confidence: 0.95,
		},
		{
			name:       "single brokerage keyword",
			filename:   "statement.pdf",
			text:       "Your brokerage account",
			docType:    dto.DocTypeBrokerage1099,
			confidence: 0.37,
		},
		{
			name:       "nothing matches",
			filename:   "receipt.png",
			text:       "Thank you for shopping",
			docType:    dto.DocTypeUnknown,
			confidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDocument(tt.filename, tt.text)
			assert.Equal(t, tt.docType, got.DocType)
			assert.Equal(t, tt.confidence, got.Confidence)
		})
	}
}

func TestClassifyDocumentYear(t *testing.T) {
	got := ClassifyDocument("My W2 2024.pdf", "Form W-2 Wage and Tax Statement")
	require.NotNil(t, got.DetectedYear)
	assert.Equal(t, 2024, *got.DetectedYear)

	got = ClassifyDocument("w2-2023.pdf", "Form W-2 Wage and Tax Statement")
	require.NotNil(t, got.DetectedYear)
	assert.Equal(t, 2023, *got.DetectedYear)

	// Underscores are word characters, so a year glued to one is not a token.
	got = ClassifyDocument("My_W2_2024.pdf", "Form W-2 Wage and Tax Statement")
	assert.Nil(t, got.DetectedYear)

	got = ClassifyDocument("w2.pdf", "Form W-2")
	assert.Nil(t, got.DetectedYear)
}

func TestClassifyDocumentOnlyReadsLeadingText(t *testing.T) {
	filler := make([]byte, 5000)
	for i := range filler {
		filler[i] = 'x'
	}

	got := ClassifyDocument("scan.pdf", string(filler)+" Form 1098 Mortgage Interest Statement")

	assert.Equal(t, dto.DocTypeUnknown, got.DocType)
}

func TestClassifyDocumentDeterministic(t *testing.T) {
	first := ClassifyDocument("2024_1099_Fidelity.pdf", "Composite 1099-B 2024")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ClassifyDocument("2024_1099_Fidelity.pdf", "Composite 1099-B 2024"))
	}
}
