package imageprocessor_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventcms_backend/internal/imageprocessor"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	return img
}

func TestFitScalesDownPreservingRatio(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	out := p.Fit(testImage(4000, 2000), 1920, 0)
	assert.Equal(t, 1920, out.Bounds().Dx())
	assert.Equal(t, 960, out.Bounds().Dy())
}

func TestFitNeverUpscales(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	src := testImage(800, 600)
	out := p.Fit(src, 1920, 1080)
	assert.Equal(t, 800, out.Bounds().Dx())
	assert.Equal(t, 600, out.Bounds().Dy())
}

func TestFitBoundsBothDimensions(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	out := p.Fit(testImage(1000, 4000), 400, 200)
	assert.Equal(t, 50, out.Bounds().Dx())
	assert.Equal(t, 200, out.Bounds().Dy())
}

func TestFillCropsToExactSize(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	out := p.Fill(testImage(1600, 900), 400, 400)
	assert.Equal(t, 400, out.Bounds().Dx())
	assert.Equal(t, 400, out.Bounds().Dy())
}

func TestFillDoesNotUpscaleSmallImages(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	out := p.Fill(testImage(200, 300), 400, 400)
	assert.Equal(t, 200, out.Bounds().Dx())
	assert.Equal(t, 200, out.Bounds().Dy())
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(100, 50), nil))

	img, format, err := p.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, img.Bounds().Dx())

	out, err := p.Encode(img, "jpeg")
	require.NoError(t, err)

	w, h, err := imageprocessor.GetImageDimensions(out)
	require.NoError(t, err)
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	p := imageprocessor.NewProcessor(85)

	_, _, err := p.Decode(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)

	assert.False(t, imageprocessor.IsValidImage(bytes.NewReader([]byte{0x00, 0x01})))
}
