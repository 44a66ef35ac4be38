package course

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const GLBMimeType = "model/gltf-binary"

const octetStream = "application/octet-stream"

// DataURI encodes a stored blob as a base64 data URI, sniffing its MIME type.
// fallback replaces a generic octet-stream detection. Empty blobs give "".
func DataURI(b []byte, fallback string) string {
	if len(b) == 0 {
		return ""
	}
	mime := mimetype.Detect(b).String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if mime == octetStream && fallback != "" {
		mime = fallback
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b)
}
