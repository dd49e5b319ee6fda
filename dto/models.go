package dto

// Provenance notes recorded while acquiring a document's text.
const (
	NoteEmbeddedText          = "embedded_text_extracted"
	NoteOCRApplied            = "ocr_applied"
	NotePDFTextFailed         = "pdf_text_extraction_failed"
	NotePDFImagesFailed       = "pdf_image_extraction_failed"
	NoteOCRFailed             = "ocr_failed"
	NoteOCRDisabled           = "ocr_disabled"
	NoteLowOCRQuality         = "low_ocr_quality"
	NoteUnsupportedFileType   = "unsupported_file_type"
	NoteTextAcquisitionFailed = "text_acquisition_failed"
)

// DocumentText is the raw text of one source file plus how it was obtained.
type DocumentText struct {
	Text  string   `json:"text"`
	Notes []string `json:"notes"`
}

// SourceDocument is one uploaded file awaiting extraction.
type SourceDocument struct {
	FileName string
	SHA256   string
	Data     []byte
	Password string
}

// DocumentRecord indexes one processed file.
type DocumentRecord struct {
	Client          string   `json:"client"`
	FileName        string   `json:"file_name"`
	SHA256          string   `json:"sha256"`
	DocType         DocType  `json:"doc_type"`
	Confidence      float64  `json:"confidence"`
	DetectedYear    *int     `json:"detected_year"`
	Issuer          *string  `json:"issuer"`
	TradeCount      int      `json:"trade_count"`
	ExtractionNotes []string `json:"extraction_notes"`

	// Set for brokerage statements that yielded at least one trade.
	Reconciliation *ReconciliationSummary `json:"reconciliation,omitempty"`
	Exceptions     []TradeException       `json:"exceptions,omitempty"`
}

// DocumentResult is everything extracted from a single document in one pass.
// Exactly one of W2, Brokerage, Form1098 or Unknown is set, matching Record.DocType.
type DocumentResult struct {
	Record    DocumentRecord        `json:"record"`
	W2        *W2Record             `json:"w2,omitempty"`
	Brokerage *Brokerage1099Summary `json:"brokerage_1099,omitempty"`
	Trades    []TradeRecord         `json:"trades,omitempty"`
	Form1098  *Form1098Record       `json:"form_1098,omitempty"`
	Unknown   *UnknownDocument      `json:"unknown,omitempty"`
}

// ExtractionResult aggregates the document results of one client by form type.
type ExtractionResult struct {
	Client              string                 `json:"client"`
	W2                  []W2Record             `json:"w2"`
	Brokerage1099       []Brokerage1099Summary `json:"brokerage_1099"`
	Brokerage1099Trades []TradeRecord          `json:"brokerage_1099_trades"`
	Form1098            []Form1098Record       `json:"form_1098"`
	Unknown             []UnknownDocument      `json:"unknown"`
	Documents           []DocumentRecord       `json:"documents"`
	Reconciliation      *ReconciliationSummary `json:"reconciliation,omitempty"`
	Exceptions          []TradeException       `json:"exceptions"`
}
