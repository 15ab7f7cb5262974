// Package documents validates and stores claim supporting documents.
package documents

import (
	"errors"
	"path/filepath"
	"strings"
)

// MaxSize caps uploads at 5 MB.
const MaxSize = 5 * 1024 * 1024

var (
	ErrUnsupportedType = errors.New("only PDF, DOCX and XLSX files are allowed")
	ErrEmptyUpload     = errors.New("a supporting document is required")
	ErrTooLarge        = errors.New("file exceeds the maximum upload size")
)

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".xlsx": {},
}

// Validate checks an upload's name and size against policy. It touches no
// business state; storing the bytes is the Store's job.
func Validate(filename string, size int64) error {
	if size <= 0 {
		return ErrEmptyUpload
	}
	if size > MaxSize {
		return ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return ErrUnsupportedType
	}
	return nil
}
