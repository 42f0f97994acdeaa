package utils

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"unicode"
)

var allowedImageTypes = map[string]map[string]bool{
	"image/jpeg": {".jpg": true, ".jpeg": true},
	"image/png":  {".png": true},
	"image/gif":  {".gif": true},
	"image/webp": {".webp": true},
}

// HasNoWhitespace reports whether s is non-empty and contains no whitespace.
func HasNoWhitespace(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, unicode.IsSpace) < 0
}

// NormalizeIdentifier lower-cases and trims an email or username.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ImageExtension returns the lower-cased extension of filename if it is an
// accepted image type.
func ImageExtension(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, exts := range allowedImageTypes {
		if exts[ext] {
			return ext, true
		}
	}
	return ext, false
}

// ValidateImageContent sniffs the first bytes of reader and checks that the
// real content type matches ext. The reader is rewound before returning.
func ValidateImageContent(reader io.ReadSeeker, ext string) (bool, string) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "Failed to read file content"
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return false, "Failed to rewind file"
	}

	contentType := http.DetectContentType(buffer[:n])
	if exts, ok := allowedImageTypes[contentType]; ok && exts[strings.ToLower(ext)] {
		return true, ""
	}
	return false, "File content (" + contentType + ") does not match extension (" + ext + ") or is not supported"
}
