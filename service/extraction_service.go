package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/Aashish23092/tax-document-extraction/utils"
	"github.com/Aashish23092/tax-document-extraction/utils/brokerage"
	"github.com/Aashish23092/tax-document-extraction/utils/form1098"
	"github.com/Aashish23092/tax-document-extraction/utils/trades"
	"github.com/Aashish23092/tax-document-extraction/utils/w2"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const unclassifiedReason = "unclassified"

// ExtractionService runs the classification and extraction pipeline over a client's
// documents. Successful per-document results are memoized by client, content hash, file name
// and password.
type ExtractionService struct {
	textExtractor TextExtractor
	resultCache   *cache.Cache
	maxConcurrent int
}

func NewExtractionService(textExtractor TextExtractor, resultCache *cache.Cache, maxConcurrent int) *ExtractionService {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &ExtractionService{
		textExtractor: textExtractor,
		resultCache:   resultCache,
		maxConcurrent: maxConcurrent,
	}
}

// NewSourceDocument wraps uploaded bytes and fingerprints them.
func NewSourceDocument(fileName string, data []byte, password string) dto.SourceDocument {
	sum := sha256.Sum256(data)
	return dto.SourceDocument{
		FileName: fileName,
		SHA256:   hex.EncodeToString(sum[:]),
		Data:     data,
		Password: password,
	}
}

// ExtractDocuments processes every document independently, at most maxConcurrent at a time,
// and merges the results in input order. A document that cannot be read still produces a
// record; only cancellation of ctx fails the batch.
func (s *ExtractionService) ExtractDocuments(ctx context.Context, client string, docs []dto.SourceDocument) (*dto.ExtractionResult, error) {
	start := time.Now()
	results := make([]dto.DocumentResult, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for i := range docs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = s.ProcessDocument(gCtx, client, docs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extraction cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extraction cancelled: %w", err)
	}

	merged := MergeResults(client, results)

	zap.L().Info("extraction completed",
		zap.String("client", client),
		zap.Int("documents", len(docs)),
		zap.Int("trades", len(merged.Brokerage1099Trades)),
		zap.Int("exceptions", len(merged.Exceptions)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return merged, nil
}

// ProcessDocument acquires the text of one document and extracts it, reusing a cached result
// for a file seen before.
func (s *ExtractionService) ProcessDocument(ctx context.Context, client string, doc dto.SourceDocument) dto.DocumentResult {
	if doc.SHA256 == "" {
		doc = NewSourceDocument(doc.FileName, doc.Data, doc.Password)
	}

	key := cacheKey(client, doc)
	if s.resultCache != nil {
		if cached, ok := s.resultCache.Get(key); ok {
			zap.L().Debug("document result served from cache", zap.String("file", doc.FileName))
			return cached.(dto.DocumentResult)
		}
	}

	text, err := s.textExtractor.ExtractDocumentText(ctx, doc)
	if err != nil {
		zap.L().Warn("text acquisition failed",
			zap.String("file", doc.FileName),
			zap.Error(err),
		)
		text.Notes = append(text.Notes, dto.NoteTextAcquisitionFailed)
	}

	result := ExtractDocument(client, doc, text)

	// A cancelled or failed acquisition is not remembered, so a retry reads the file again.
	if s.resultCache != nil && ctx.Err() == nil && err == nil && !acquisitionFailed(text.Notes) {
		s.resultCache.SetDefault(key, result)
	}
	return result
}

// cacheKey includes a digest of the password: the same bytes may read differently under
// another password.
func cacheKey(client string, doc dto.SourceDocument) string {
	pw := sha256.Sum256([]byte(doc.Password))
	return client + "|" + doc.SHA256 + "|" + doc.FileName + "|" + hex.EncodeToString(pw[:8])
}

func acquisitionFailed(notes []string) bool {
	for _, note := range notes {
		switch note {
		case dto.NotePDFTextFailed, dto.NoteTextAcquisitionFailed, dto.NoteOCRFailed, dto.NotePDFImagesFailed:
			return true
		}
	}
	return false
}

// ExtractDocument classifies acquired text and runs the matching extractor. It has no side
// effects beyond debug logging.
func ExtractDocument(client string, doc dto.SourceDocument, text dto.DocumentText) dto.DocumentResult {
	classification := utils.ClassifyDocument(doc.FileName, text.Text)

	notes := text.Notes
	if notes == nil {
		notes = []string{}
	}

	result := dto.DocumentResult{
		Record: dto.DocumentRecord{
			Client:          client,
			FileName:        doc.FileName,
			SHA256:          doc.SHA256,
			DocType:         classification.DocType,
			Confidence:      classification.Confidence,
			DetectedYear:    classification.DetectedYear,
			ExtractionNotes: notes,
		},
	}

	switch classification.DocType {
	case dto.DocTypeW2:
		record := w2.ParseW2(text.Text)
		result.W2 = &record
		result.Record.Issuer = record.EmployerName

	case dto.DocTypeBrokerage1099:
		summary := brokerage.ParseSummary(text.Text)
		result.Brokerage = &summary
		result.Record.Issuer = summary.BrokerName

		parsed, diag := trades.ParseTrades(text.Text, summary.BrokerName, doc.FileName, doc.SHA256)
		zap.L().Debug("parsed 1099-B trade rows",
			zap.String("file", doc.FileName),
			zap.Int("row_candidates", diag.RowCandidates),
			zap.Int("parsed_rows", diag.ParsedRows),
		)
		result.Trades = parsed
		result.Record.TradeCount = len(parsed)
		if len(parsed) > 0 {
			rec := Reconcile(parsed, summary.BSummary.Proceeds, summary.BSummary.CostBasis, summary.BSummary.WashSales)
			result.Record.Reconciliation = &rec
			result.Record.Exceptions = BuildExceptions(parsed, &rec)
		}

	case dto.DocTypeForm1098:
		record := form1098.ParseForm1098(text.Text)
		result.Form1098 = &record
		result.Record.Issuer = record.LenderName

	default:
		result.Unknown = &dto.UnknownDocument{
			FileName: doc.FileName,
			Reason:   unclassifiedReason,
		}
	}

	zap.L().Debug("document classified",
		zap.String("file", doc.FileName),
		zap.String("doc_type", string(classification.DocType)),
		zap.Float64("confidence", classification.Confidence),
	)
	return result
}

// MergeResults groups document results by form type, in the given order. When any trades were
// parsed, they are reconciled against the stated 1099-B totals summed over every statement
// that states them.
func MergeResults(client string, results []dto.DocumentResult) *dto.ExtractionResult {
	merged := &dto.ExtractionResult{
		Client:              client,
		W2:                  []dto.W2Record{},
		Brokerage1099:       []dto.Brokerage1099Summary{},
		Brokerage1099Trades: []dto.TradeRecord{},
		Form1098:            []dto.Form1098Record{},
		Unknown:             []dto.UnknownDocument{},
		Documents:           make([]dto.DocumentRecord, 0, len(results)),
		Exceptions:          []dto.TradeException{},
	}

	var statedProceeds, statedCostBasis, statedWashSales statedTotal
	for _, r := range results {
		merged.Documents = append(merged.Documents, r.Record)
		switch {
		case r.W2 != nil:
			merged.W2 = append(merged.W2, *r.W2)
		case r.Brokerage != nil:
			merged.Brokerage1099 = append(merged.Brokerage1099, *r.Brokerage)
			merged.Brokerage1099Trades = append(merged.Brokerage1099Trades, r.Trades...)
			statedProceeds.add(r.Brokerage.BSummary.Proceeds)
			statedCostBasis.add(r.Brokerage.BSummary.CostBasis)
			statedWashSales.add(r.Brokerage.BSummary.WashSales)
		case r.Form1098 != nil:
			merged.Form1098 = append(merged.Form1098, *r.Form1098)
		case r.Unknown != nil:
			merged.Unknown = append(merged.Unknown, *r.Unknown)
		}
	}

	if len(merged.Brokerage1099Trades) > 0 {
		rec := Reconcile(merged.Brokerage1099Trades, statedProceeds.value(), statedCostBasis.value(), statedWashSales.value())
		merged.Reconciliation = &rec
		merged.Exceptions = BuildExceptions(merged.Brokerage1099Trades, &rec)
	}

	return merged
}

// statedTotal sums optional amounts; it stays absent until one is present.
type statedTotal struct {
	sum     decimal.Decimal
	present bool
}

func (t *statedTotal) add(v *float64) {
	if v == nil {
		return
	}
	t.sum = t.sum.Add(decimal.NewFromFloat(*v))
	t.present = true
}

func (t *statedTotal) value() *float64 {
	if !t.present {
		return nil
	}
	v := t.sum.Round(2).InexactFloat64()
	return &v
}
