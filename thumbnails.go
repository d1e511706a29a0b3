package showcase

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

const (
	maxPreviewWidth = 800
	jpegQuality     = 80
	previewBase     = "preview"
)

// Preview describes an encoded preview image.
type Preview struct {
	Width  int
	Height int
	Data   []byte
}

// ResizePreview decodes an image from src, scales it down to maxPreviewWidth
// if wider, and encodes it as JPEG.
func ResizePreview(src io.Reader) (Preview, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return Preview{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxPreviewWidth {
		newH := h * maxPreviewWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxPreviewWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = maxPreviewWidth, newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return Preview{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return Preview{Width: w, Height: h, Data: buf.Bytes()}, nil
}

// previewSources lists the preview files a directory may hold, in the order
// one is chosen as the source for preview.jpg.
var previewSources = []string{".png", ".gif", ".jpeg", ".jpg"}

// ProcessPreviews writes one resized preview.jpg per directory under dir
// and returns how many were written. The first existing preview in
// previewSources order is the source; the other preview files in that
// directory are removed. A preview.jpg that is the only source and already
// fits maxPreviewWidth is left alone.
func ProcessPreviews(dir string) (int, error) {
	n := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		wrote, err := processPreviewDir(p)
		if err != nil {
			return err
		}
		if wrote {
			n++
		}
		return nil
	})
	return n, err
}

func processPreviewDir(dir string) (bool, error) {
	var found []string
	for _, ext := range previewSources {
		p := filepath.Join(dir, previewBase+ext)
		if _, err := os.Stat(p); err == nil {
			found = append(found, p)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return false, err
		}
	}
	if len(found) == 0 {
		return false, nil
	}

	out := filepath.Join(dir, previewBase+".jpg")
	src := found[0]
	if src == out {
		w, err := previewWidth(src)
		if err != nil {
			return false, err
		}
		if w <= maxPreviewWidth {
			return false, nil
		}
	}

	f, err := os.Open(src)
	if err != nil {
		return false, err
	}
	pv, err := ResizePreview(f)
	f.Close()
	if err != nil {
		return false, fmt.Errorf("%s: %w", src, err)
	}
	if err := os.WriteFile(out, pv.Data, 0o644); err != nil {
		return false, fmt.Errorf("write preview: %w", err)
	}
	for _, p := range found {
		if p == out {
			continue
		}
		if err := os.Remove(p); err != nil {
			return false, err
		}
	}
	return true, nil
}

func previewWidth(file string) (int, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, fmt.Errorf("%s: decode config: %w", file, err)
	}
	return cfg.Width, nil
}
