package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 20, G: 40, B: 120, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepareClothingImageShrinksLargePhotos(t *testing.T) {
	out, err := PrepareClothingImage(pngBytes(t, 2048, 1024))
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 512, cfg.Height)
}

func TestPrepareClothingImageKeepsSmallPhotos(t *testing.T) {
	out, err := PrepareClothingImage(pngBytes(t, 300, 400))
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestPrepareClothingImageRejectsGarbage(t *testing.T) {
	_, err := PrepareClothingImage([]byte("definitely not an image"))
	assert.Error(t, err)
}
