package service

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"go.uber.org/zap"
)

const (
	// OCR output shorter than this is treated as a miss and the next engine is tried.
	minOCRTextLength = 10
	// Mean word confidence below which a document is flagged for review.
	lowOCRQuality = 60.0
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// TextService acquires document text: embedded PDF text first, OCR when that is too short
// or the upload is an image. OCR engines are tried in the order given.
type TextService struct {
	pdfProcessor  PDFProcessor
	ocrClients    []OCRClient
	enableOCR     bool
	minTextLength int
}

func NewTextService(pdfProcessor PDFProcessor, enableOCR bool, minTextLength int, ocrClients ...OCRClient) *TextService {
	return &TextService{
		pdfProcessor:  pdfProcessor,
		ocrClients:    ocrClients,
		enableOCR:     enableOCR,
		minTextLength: minTextLength,
	}
}

// ExtractDocumentText never fails on a readable file of a supported type; every fallback is
// recorded as a note on the result instead.
func (s *TextService) ExtractDocumentText(ctx context.Context, doc dto.SourceDocument) (dto.DocumentText, error) {
	result := dto.DocumentText{Notes: []string{}}

	ext := strings.ToLower(filepath.Ext(doc.FileName))
	switch {
	case ext == ".pdf":
		s.extractPDF(ctx, doc, &result)
	case imageExtensions[ext]:
		s.extractImage(ctx, doc, ext, &result)
	default:
		result.Notes = append(result.Notes, dto.NoteUnsupportedFileType)
		return result, fmt.Errorf("%s: %w", doc.FileName, dto.ErrUnsupportedFileType)
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (s *TextService) extractPDF(ctx context.Context, doc dto.SourceDocument, result *dto.DocumentText) {
	text, err := s.pdfProcessor.ExtractText(doc.Data, doc.Password)
	if err != nil {
		zap.L().Warn("pdf text extraction failed", zap.String("file", doc.FileName), zap.Error(err))
		result.Notes = append(result.Notes, dto.NotePDFTextFailed)
	}
	text = strings.TrimSpace(text)
	if text != "" {
		result.Notes = append(result.Notes, dto.NoteEmbeddedText)
	}
	result.Text = text

	if !s.enableOCR || len(text) >= s.minTextLength {
		return
	}

	zap.L().Info("pdf has little embedded text, attempting OCR",
		zap.String("file", doc.FileName),
		zap.Int("text_length", len(text)),
	)

	images, err := s.pdfProcessor.ExtractImages(doc.Data, doc.Password)
	if err != nil || len(images) == 0 {
		zap.L().Warn("pdf image extraction failed", zap.String("file", doc.FileName), zap.Error(err))
		result.Notes = append(result.Notes, dto.NotePDFImagesFailed)
		return
	}

	var pages []string
	var totalQuality float64
	for i, img := range images {
		if ctx.Err() != nil {
			return
		}

		path, err := saveImageToTempFile(img)
		if err != nil {
			zap.L().Warn("failed to save page image", zap.String("file", doc.FileName), zap.Error(err))
			continue
		}
		pageText, quality, err := s.ocrFile(path)
		os.Remove(path)
		if err != nil {
			zap.L().Warn("ocr failed for page image",
				zap.String("file", doc.FileName),
				zap.Int("image", i),
				zap.Error(err),
			)
			continue
		}
		pages = append(pages, pageText)
		totalQuality += quality
	}

	if len(pages) == 0 {
		result.Notes = append(result.Notes, dto.NoteOCRFailed)
		return
	}

	result.Text = strings.TrimSpace(text + "\n" + strings.Join(pages, "\n"))
	result.Notes = append(result.Notes, dto.NoteOCRApplied)
	s.noteQuality(doc.FileName, totalQuality/float64(len(pages)), result)
}

func (s *TextService) extractImage(ctx context.Context, doc dto.SourceDocument, ext string, result *dto.DocumentText) {
	if !s.enableOCR {
		result.Notes = append(result.Notes, dto.NoteOCRDisabled)
		return
	}

	path, err := writeTempFile(doc.Data, ext)
	if err != nil {
		zap.L().Warn("failed to stage image for OCR", zap.String("file", doc.FileName), zap.Error(err))
		result.Notes = append(result.Notes, dto.NoteOCRFailed)
		return
	}
	defer os.Remove(path)

	text, quality, err := s.ocrFile(path)
	if err != nil {
		zap.L().Warn("image OCR failed", zap.String("file", doc.FileName), zap.Error(err))
		result.Notes = append(result.Notes, dto.NoteOCRFailed)
		return
	}

	result.Text = strings.TrimSpace(text)
	result.Notes = append(result.Notes, dto.NoteOCRApplied)
	s.noteQuality(doc.FileName, quality, result)
}

// ocrFile tries each engine in turn and returns the first usable result.
func (s *TextService) ocrFile(path string) (string, float64, error) {
	if len(s.ocrClients) == 0 {
		return "", 0, fmt.Errorf("no OCR engine configured")
	}

	var lastErr error
	for _, engine := range s.ocrClients {
		text, quality, err := engine.ExtractTextAndQuality(path)
		if err != nil {
			lastErr = err
			continue
		}
		if len(strings.TrimSpace(text)) < minOCRTextLength {
			lastErr = fmt.Errorf("OCR returned %d characters", len(strings.TrimSpace(text)))
			continue
		}
		return text, quality, nil
	}
	return "", 0, lastErr
}

func (s *TextService) noteQuality(fileName string, quality float64, result *dto.DocumentText) {
	zap.L().Debug("ocr quality", zap.String("file", fileName), zap.Float64("quality", quality))
	if quality < lowOCRQuality {
		result.Notes = append(result.Notes, dto.NoteLowOCRQuality)
	}
}

// saveImageToTempFile saves an image.Image to a temporary PNG file.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}

func writeTempFile(data []byte, ext string) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close()

	if _, err := tempFile.Write(data); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return tempFile.Name(), nil
}
