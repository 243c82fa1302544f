package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Processor decodes, resizes and re-encodes uploaded images.
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality: quality,
	}
}

// Fit scales the image down so it fits within maxWidth x maxHeight while
// keeping the aspect ratio. Pass 0 for a dimension to leave it
// unconstrained. Images already within bounds come back unchanged;
// nothing is ever upscaled.
func (p *Processor) Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if (maxWidth <= 0 || width <= maxWidth) && (maxHeight <= 0 || height <= maxHeight) {
		return img
	}

	scale := 1.0
	if maxWidth > 0 && width > maxWidth {
		scale = float64(maxWidth) / float64(width)
	}
	if maxHeight > 0 && height > maxHeight {
		if s := float64(maxHeight) / float64(height); s < scale {
			scale = s
		}
	}

	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Fill scales and center-crops the image to exactly width x height.
// Smaller images are not upscaled; the largest centered region matching
// the target aspect ratio is cropped instead.
func (p *Processor) Fill(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == width && srcH == height {
		return img
	}

	targetRatio := float64(width) / float64(height)
	srcRatio := float64(srcW) / float64(srcH)

	// Centered crop region matching the target aspect ratio.
	cropW := srcW
	cropH := srcH
	if srcRatio > targetRatio {
		cropW = int(float64(srcH) * targetRatio)
	} else {
		cropH = int(float64(srcW) / targetRatio)
	}
	x0 := bounds.Min.X + (srcW-cropW)/2
	y0 := bounds.Min.Y + (srcH-cropH)/2
	crop := image.Rect(x0, y0, x0+cropW, y0+cropH)

	outW := width
	outH := height
	if cropW < width || cropH < height {
		outW = cropW
		outH = cropH
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)
	return dst
}

// Decode reads an image in any registered format (JPEG, PNG, GIF, WebP)
// and reports the detected format name.
func (p *Processor) Decode(reader io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// Encode writes the image in the given format. GIF and WebP inputs are
// re-encoded as JPEG since the pipeline stores flattened stills.
func (p *Processor) Encode(img image.Image, format string) (io.Reader, error) {
	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	}
	return &buf, nil
}

// GetImageDimensions returns the pixel dimensions of an encoded image.
func GetImageDimensions(reader io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(reader)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// IsValidImage reports whether the reader holds a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.DecodeConfig(reader)
	return err == nil
}
