package course

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataURI(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", DataURI(nil, GLBMimeType))
	})

	t.Run("SniffsPNG", func(t *testing.T) {
		uri := DataURI(png, "")
		assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), uri)
	})

	t.Run("FallbackForUnknownBinary", func(t *testing.T) {
		uri := DataURI([]byte{0x00, 0x01, 0x02, 0x03, 0xfe, 0xff}, GLBMimeType)
		assert.True(t, strings.HasPrefix(uri, "data:"+GLBMimeType+";base64,"), uri)
	})
}
