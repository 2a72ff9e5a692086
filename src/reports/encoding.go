package reports

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// EncodeWindows1251 converts the XML text to the single-byte legacy
// encoding the receiving government system requires at the file
// boundary. Characters outside the code page become '?' rather than
// failing the whole document.
func EncodeWindows1251(s string) ([]byte, error) {
	encoder := encoding.ReplaceUnsupported(charmap.Windows1251.NewEncoder())
	encoded, err := encoder.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("error encoding document to windows-1251: %w", err)
	}
	return encoded, nil
}
