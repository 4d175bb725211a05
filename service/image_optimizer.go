package service

import (
	"bytes"
	"image"
	"image/jpeg"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// Maximum dimension sent to the image gateway. Phone photos routinely
	// exceed this and only inflate request size and latency.
	maxUploadDim = 1536
	// JPEG quality for re-encoded uploads
	uploadQuality = 85
)

// NormalizeUpload downscales and re-encodes an uploaded photo before it is
// sent to the image gateway. Returns the normalized bytes and their MIME
// type. Images that cannot be decoded pass through unchanged: the gateway is
// the authority on what it accepts.
func NormalizeUpload(imageData []byte, mimeType string) ([]byte, string) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		log.Printf("⚠️  NormalizeUpload: could not decode upload (%v), passing through", err)
		return imageData, mimeType
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxUploadDim && height <= maxUploadDim {
		return imageData, mimeType
	}

	// Resize maintaining aspect ratio
	var newWidth, newHeight int
	if width > height {
		newWidth = maxUploadDim
		newHeight = int(float64(height) * float64(maxUploadDim) / float64(width))
	} else {
		newHeight = maxUploadDim
		newWidth = int(float64(width) * float64(maxUploadDim) / float64(height))
	}

	log.Printf("🔄 NormalizeUpload: resizing %s upload %dx%d -> %dx%d", format, width, height, newWidth, newHeight)
	resized := imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: uploadQuality}); err != nil {
		log.Printf("⚠️  NormalizeUpload: re-encode failed (%v), passing through", err)
		return imageData, mimeType
	}

	return buf.Bytes(), "image/jpeg"
}
