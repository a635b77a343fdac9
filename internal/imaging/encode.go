package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-transform/internal/transform"
)

// EncodedImage contains an image encoded as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as base64 PNG, optionally rescaled.
//
// A scale of 1.0 (or any value <= 0) keeps the original size. Other values
// resize with a Lanczos filter; the result is at least 1x1.
func EncodePNG(img image.Image, scale float64) (*EncodedImage, error) {
	out := img
	if scale != 1.0 && scale > 0 && !img.Bounds().Empty() {
		newWidth := max(1, int(float64(img.Bounds().Dx())*scale))
		newHeight := max(1, int(float64(img.Bounds().Dy())*scale))
		out = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// EncodeBuffer encodes a transform buffer as base64 PNG.
func EncodeBuffer(buf *transform.Buffer, scale float64) (*EncodedImage, error) {
	img, err := FromBuffer(buf)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img, scale)
}

// DecodeBase64PNG reverses EncodePNG.
func DecodeBase64PNG(data string) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}
	return img, nil
}
