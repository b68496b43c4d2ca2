package security

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool
	Extension    string
	DetectedMIME string
	Error        string
}

// Magic byte signatures for the accepted picture formats
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}},
}

var allowedImageMIME = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

var ErrEmptyFile = errors.New("file is empty")

// ValidateImage checks extension whitelist, magic bytes and sniffed MIME type.
// All three must agree for the upload to be accepted.
func ValidateImage(filename string, data []byte) FileValidationResult {
	result := FileValidationResult{}
	if len(data) == 0 {
		result.Error = ErrEmptyFile.Error()
		return result
	}

	ext := strings.ToLower(filepath.Ext(filename))
	result.Extension = ext
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	if _, ok := magicBytes[ext]; !ok {
		result.Error = "file extension not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	result.DetectedMIME = http.DetectContentType(data)
	if !allowedImageMIME[result.DetectedMIME] {
		result.Error = "MIME type not allowed: " + result.DetectedMIME
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	for _, sig := range magicBytes[ext] {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// AllowedImageExtensions lists accepted extensions for error messages.
func AllowedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif"}
}
