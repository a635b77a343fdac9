package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-transform/internal/transform"
)

// ToBuffer flattens any image into an RGB transform buffer.
//
// The image is first normalized to non-premultiplied 8-bit RGBA, so 16-bit,
// paletted, gray and YCbCr sources all map to plain 8-bit channels. Alpha is
// dropped. The buffer origin is the image's top-left corner regardless of
// img.Bounds().Min.
func ToBuffer(img image.Image) *transform.Buffer {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()

	buf := &transform.Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*transform.Channels),
	}
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		dst := buf.Pix[y*w*transform.Channels : (y+1)*w*transform.Channels]
		for x := 0; x < w; x++ {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return buf
}

// FromBuffer converts a transform buffer to a fully opaque image.
func FromBuffer(buf *transform.Buffer) (*image.NRGBA, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for i, j := 0, 0; i < len(buf.Pix); i, j = i+3, j+4 {
		img.Pix[j] = buf.Pix[i]
		img.Pix[j+1] = buf.Pix[i+1]
		img.Pix[j+2] = buf.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img, nil
}

// LoadBuffer decodes an image file through the cache and converts it to a
// transform buffer.
func LoadBuffer(cache *ImageCache, path string) (*transform.Buffer, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return ToBuffer(img), nil
}

// SaveBuffer encodes buf to path. The format is chosen from the file
// extension (PNG, JPEG, GIF, BMP or TIFF). Missing parent directories are
// created.
func SaveBuffer(buf *transform.Buffer, path string) error {
	img, err := FromBuffer(buf)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
