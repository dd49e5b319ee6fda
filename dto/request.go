package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrNoFiles             = errors.New("at least one file is required")
	ErrMissingClient       = errors.New("client is required")
	ErrUnsupportedFileType = errors.New("invalid file type. Supported: PDF, PNG, JPG")
	ErrFileTooLarge        = errors.New("file exceeds the maximum upload size")
)

// SupportedExtensions lists the file types the text acquisition layer understands.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ExtractionRequest represents the incoming multipart request
type ExtractionRequest struct {
	Files    []*multipart.FileHeader `form:"files[]" binding:"required"`
	Client   string                  `form:"client"`
	Password string                  `form:"password"`
}

// Validate performs basic validation on the request
func (r *ExtractionRequest) Validate(maxFileSize int64) error {
	if len(r.Files) == 0 {
		return ErrNoFiles
	}
	if strings.TrimSpace(r.Client) == "" {
		return ErrMissingClient
	}

	for _, file := range r.Files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !SupportedExtensions[ext] {
			return fmt.Errorf("%s: %w", file.Filename, ErrUnsupportedFileType)
		}
		if maxFileSize > 0 && file.Size > maxFileSize {
			return fmt.Errorf("%s: %w", file.Filename, ErrFileTooLarge)
		}
	}
	return nil
}
