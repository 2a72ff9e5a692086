package validation

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/username/fopzvit/src/logger"
)

// AllowedClientContentTypes is a map for quick lookup of allowed client-declared MIME types.
var AllowedClientContentTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true, // .xlsx
	"application/vnd.ms-excel": true, // old Excel MIME, some banks still declare it for xlsx
	"application/octet-stream": true, // generic fallback; magic-byte check runs after
}

// ValidateClientContentType checks the Content-Type header provided by the client.
func ValidateClientContentType(contentType string) error {
	normalized := strings.ToLower(strings.Split(contentType, ";")[0])
	if !AllowedClientContentTypes[normalized] {
		logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		return fmt.Errorf("client-declared file type '%s' is not allowed for statement upload", contentType)
	}
	return nil
}

// XLSX files are ZIP containers, so the signature is PK\x03\x04.
var xlsxMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// ValidateFileContentByMagicBytes checks the actual file content signature.
// It returns an error when the bytes cannot be an XLSX workbook.
func ValidateFileContentByMagicBytes(file io.ReadSeeker) error {
	if file == nil {
		return fmt.Errorf("file is nil")
	}

	buffer := make([]byte, 4)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file for content type checking: %w", err)
	}

	// Reset the read pointer so the actual parser can read the full file.
	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return fmt.Errorf("failed to reset file read pointer: %w", seekErr)
	}

	if n < len(xlsxMagic) || !bytes.Equal(buffer[:len(xlsxMagic)], xlsxMagic) {
		logger.L.Warn("Uploaded file is not a ZIP container, rejecting as non-XLSX")
		return fmt.Errorf("file content is not a valid XLSX workbook")
	}

	logger.L.Debug("File content signature validated as XLSX")
	return nil
}
