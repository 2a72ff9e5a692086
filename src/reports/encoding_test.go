package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWindows1251(t *testing.T) {
	encoded, err := EncodeWindows1251("ФОП Шевченко")
	require.NoError(t, err)

	// single-byte encoding: one byte per character
	assert.Len(t, encoded, 12)
	// 0xD4 is 'Ф' in windows-1251
	assert.Equal(t, byte(0xD4), encoded[0])
}

func TestEncodeWindows1251KeepsASCII(t *testing.T) {
	input := `<?xml version="1.0" encoding="windows-1251"?>`
	encoded, err := EncodeWindows1251(input)
	require.NoError(t, err)
	assert.Equal(t, []byte(input), encoded)
}

func TestEncodeWindows1251ReplacesUnsupported(t *testing.T) {
	// the euro-less code page cannot represent CJK
	encoded, err := EncodeWindows1251("налог 税")
	require.NoError(t, err)
	assert.Len(t, encoded, 7)
}
