package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/buckket/go-blurhash"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	blurhashComponentsX = 3
	blurhashComponentsY = 3
	// longest edge of the image the hash is computed from
	maxSampleEdge = 64
)

// DefaultMaxPixels bounds width*height of images that get decoded.
const DefaultMaxPixels = 40_000_000

var ErrTooManyPixels = errors.New("image dimensions exceed the pixel limit")

// CheckDimensions reads only the image header and fails with
// ErrTooManyPixels when width*height is above maxPixels.
func CheckDimensions(data []byte, maxPixels int64) error {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return ErrTooManyPixels
	}
	return nil
}

// BlurhashLength is the length of every hash produced by Blurhash.
const BlurhashLength = 4 + 2*blurhashComponentsX*blurhashComponentsY

// Blurhash decodes an encoded image (jpeg, png, gif or webp) and returns its
// 3x3 blurhash placeholder.
func Blurhash(data []byte) (string, error) {
	if err := CheckDimensions(data, DefaultMaxPixels); err != nil {
		return "", err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	return blurhash.Encode(blurhashComponentsX, blurhashComponentsY, downscale(img))
}

func downscale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSampleEdge && h <= maxSampleEdge {
		return src
	}

	if w >= h {
		h = max(1, h*maxSampleEdge/w)
		w = maxSampleEdge
	} else {
		w = max(1, w*maxSampleEdge/h)
		h = maxSampleEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
