package service

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTextPDF writes a single-page PDF that shows each line with the Helvetica base font.
func buildTextPDF(lines ...string) []byte {
	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, line := range lines {
		if i > 0 {
			content.WriteString("0 -16 Td\n")
		}
		escaped := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`).Replace(line)
		fmt.Fprintf(&content, "(%s) Tj\n", escaped)
	}
	content.WriteString("ET")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func encryptPDF(t *testing.T, data []byte, password string) []byte {
	t.Helper()
	var out bytes.Buffer
	conf := model.NewAESConfiguration(password, password, 256)
	require.NoError(t, api.Encrypt(bytes.NewReader(data), &out, conf))
	return out.Bytes()
}

func TestNaturalLess(t *testing.T) {
	names := []string{
		"doc_10_Im0.png",
		"doc_2_Im1.png",
		"doc_2_Im0.png",
		"doc_1_Im0.png",
		"doc_02_Im2.png",
	}

	sort.Slice(names, func(i, j int) bool { return naturalLess(names[i], names[j]) })

	assert.Equal(t, []string{
		"doc_1_Im0.png",
		"doc_2_Im0.png",
		"doc_2_Im1.png",
		"doc_02_Im2.png",
		"doc_10_Im0.png",
	}, names)
}

func TestJoinRow(t *testing.T) {
	tests := []struct {
		name string
		runs pdf.TextHorizontal
		want string
	}{
		{
			name: "adjacent glyphs",
			runs: pdf.TextHorizontal{
				{X: 10, W: 5, FontSize: 10, S: "W"},
				{X: 15, W: 5, FontSize: 10, S: "-"},
				{X: 20, W: 5, FontSize: 10, S: "2"},
			},
			want: "W-2",
		},
		{
			name: "word gap",
			runs: pdf.TextHorizontal{
				{X: 10, W: 30, FontSize: 10, S: "Wages"},
				{X: 45, W: 40, FontSize: 10, S: "85,200.00"},
			},
			want: "Wages 85,200.00",
		},
		{
			name: "existing space kept once",
			runs: pdf.TextHorizontal{
				{X: 10, W: 30, FontSize: 10, S: "Box "},
				{X: 50, W: 5, FontSize: 10, S: "1"},
			},
			want: "Box 1",
		},
		{
			name: "empty row",
			runs: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinRow(tt.runs))
		})
	}
}

func TestExtractTextRejectsGarbage(t *testing.T) {
	_, err := NewPDFProcessor().ExtractText([]byte("not a pdf"), "")
	assert.Error(t, err)
}

func TestExtractTextPlainPDF(t *testing.T) {
	data := buildTextPDF("Form W-2 Wage and Tax Statement")

	tests := []struct {
		name     string
		password string
	}{
		{"no password", ""},
		{"batch password on a plain file", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := NewPDFProcessor().ExtractText(data, tt.password)
			require.NoError(t, err)
			assert.Contains(t, text, "Form W-2 Wage and Tax Statement")
		})
	}
}

func TestExtractTextEncryptedPDF(t *testing.T) {
	data := encryptPDF(t, buildTextPDF("Form 1098 Mortgage Interest Statement"), "secret")

	text, err := NewPDFProcessor().ExtractText(data, "secret")
	require.NoError(t, err)
	assert.Contains(t, text, "Form 1098 Mortgage Interest Statement")

	_, err = NewPDFProcessor().ExtractText(data, "wrong")
	assert.Error(t, err)
}
