package service

import (
	"context"
	"image"

	"github.com/Aashish23092/tax-document-extraction/dto"
)

// PDFProcessor reads embedded text and page images out of PDF bytes.
//
//go:generate mockgen -destination=mocks/mock_service.go -package=mock_service -source=interface.go
type PDFProcessor interface {
	ExtractText(pdfData []byte, password string) (string, error)
	ExtractImages(pdfData []byte, password string) ([]image.Image, error)
}

// OCRClient recognizes the text of an image file. Quality is the mean word confidence on a
// 0-100 scale.
type OCRClient interface {
	ExtractTextAndQuality(filePath string) (string, float64, error)
}

// TextExtractor turns an uploaded file into raw text plus provenance notes.
type TextExtractor interface {
	ExtractDocumentText(ctx context.Context, doc dto.SourceDocument) (dto.DocumentText, error)
}
