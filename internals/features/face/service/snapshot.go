// file: internals/features/face/service/snapshot.go
package service

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	// snapshots above this byte size get downscaled before upload
	maxSnapshotBytes = 512 * 1024
	snapshotWidth    = 640
)

// NormalizeSnapshot downscales an oversized data-URL snapshot to a
// JPEG of at most snapshotWidth px wide. Anything that is not a decodable
// image data URL (opaque references, embeddings, small captures) passes
// through unchanged.
func NormalizeSnapshot(face string) string {
	if !strings.HasPrefix(face, "data:image/") {
		return face
	}
	idx := strings.Index(face, ";base64,")
	if idx < 0 {
		return face
	}
	payload := face[idx+len(";base64,"):]
	if len(payload) <= maxSnapshotBytes {
		return face
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return face
	}

	img, err := decodeSnapshot(face[:idx], raw)
	if err != nil {
		return face
	}

	if img.Bounds().Dx() > snapshotWidth {
		img = imaging.Resize(img, snapshotWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return face
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeSnapshot(mimePrefix string, raw []byte) (image.Image, error) {
	if strings.Contains(mimePrefix, "webp") {
		return webp.Decode(bytes.NewReader(raw))
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	return img, err
}
