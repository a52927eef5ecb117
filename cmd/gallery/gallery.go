package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/dataset"
	"github.com/28H4/plot-playground/src/mfp"
	"github.com/28H4/plot-playground/src/multifit"
	"github.com/28H4/plot-playground/src/residuals"
)

// RunGallery renders every figure with its default options and writes them as
// PNGs under outDir. It runs headlessly without creating a window and returns
// the written paths in render order.
func RunGallery(outDir, dataPath string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	if dataPath == "" {
		dataPath = filepath.Join("cmd", "multifit", "testdata", "example_data.pid")
	}

	toRender := []struct {
		name string
		fn   func() (image.Image, error)
	}{
		{"residuals.png", renderResiduals},
		{"multifit.png", func() (image.Image, error) { return renderMultiFit(dataPath) }},
		{"mean_free_path.png", func() (image.Image, error) { return mfp.Render(config.DefaultMeanFreePath()) }},
	}

	var written []string
	for _, item := range toRender {
		img, err := item.fn()
		if err != nil {
			return written, fmt.Errorf("render %s: %w", item.name, err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return written, fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", outPath, err)
		}
		written = append(written, outPath)
	}
	return written, nil
}

func renderResiduals() (image.Image, error) {
	cfg := config.DefaultResiduals()
	x, y := residuals.Generate(cfg)
	d, err := residuals.Build(x, y, cfg)
	if err != nil {
		return nil, err
	}
	return d.Render()
}

func renderMultiFit(dataPath string) (image.Image, error) {
	cfg := config.DefaultMultiFit()
	cfg.Data.File = dataPath
	tab, err := dataset.LoadTable(dataPath, multifit.TableOptions(cfg.Data))
	if err != nil {
		return nil, err
	}
	img, _, err := multifit.Render(cfg, tab)
	return img, err
}
