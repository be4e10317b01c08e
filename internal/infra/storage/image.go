package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/Tai-brother/UthMentor/internal/httperr"
)

const maxImageWidth = 512

// NormalizeImage decodes a submitted profile picture (jpeg/png/webp),
// scales it down to at most 512px wide and re-encodes it as webp.
func NormalizeImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// webp input is not covered by image.Decode's registered formats
		src, err = webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, httperr.ErrInvalid("invalid_image")
		}
	}

	bounds := src.Bounds()
	if bounds.Dx() > maxImageWidth {
		h := bounds.Dy() * maxImageWidth / bounds.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, src, &webp.Options{Quality: 85}); err != nil {
		return nil, httperr.ErrUpload("image_encode_failed")
	}
	return out.Bytes(), nil
}
