package services

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	ClothingImageMaxSide = 1024
	clothingImageQuality = 85
)

// PrepareClothingImage shrinks a wardrobe photo to fit the analyzer limits and re-encodes it as JPEG.
func PrepareClothingImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() > ClothingImageMaxSide || b.Dy() > ClothingImageMaxSide {
		img = imaging.Fit(img, ClothingImageMaxSide, ClothingImageMaxSide, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(clothingImageQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
