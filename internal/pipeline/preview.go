package pipeline

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/nfnt/resize"
)

// WriteContactSheet tiles thumbnails of the rendered frames into a single
// PNG for a quick visual pass over the whole run.
func WriteContactSheet(path string, framePaths []string, columns, thumbWidth int) error {
	if len(framePaths) == 0 {
		return fmt.Errorf("pipeline: no frames for contact sheet")
	}
	if columns <= 0 {
		columns = 4
	}

	thumbs := make([]image.Image, 0, len(framePaths))
	thumbHeight := 0
	for _, fp := range framePaths {
		img, err := decodeImage(fp)
		if err != nil {
			return fmt.Errorf("pipeline: contact sheet: %w", err)
		}
		thumb := resize.Resize(uint(thumbWidth), 0, img, resize.Lanczos3)
		if h := thumb.Bounds().Dy(); h > thumbHeight {
			thumbHeight = h
		}
		thumbs = append(thumbs, thumb)
	}

	rows := (len(thumbs) + columns - 1) / columns
	sheet := image.NewNRGBA(image.Rect(0, 0, columns*thumbWidth, rows*thumbHeight))

	for i, thumb := range thumbs {
		x := (i % columns) * thumbWidth
		y := (i / columns) * thumbHeight
		r := image.Rect(x, y, x+thumb.Bounds().Dx(), y+thumb.Bounds().Dy())
		draw.Draw(sheet, r, thumb, thumb.Bounds().Min, draw.Over)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("pipeline: contact sheet dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pipeline: contact sheet: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, sheet); err != nil {
		return fmt.Errorf("pipeline: contact sheet encode: %w", err)
	}
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Rendered frames are png or webp; route by extension so decoding never
	// depends on format sniffing.
	var img image.Image
	if filepath.Ext(path) == ".webp" {
		img, err = nativewebp.Decode(f)
	} else {
		img, err = png.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
