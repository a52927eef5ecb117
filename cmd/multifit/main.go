package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/28H4/plot-playground/src/colormap"
	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/dataset"
	"github.com/28H4/plot-playground/src/figure"
	"github.com/28H4/plot-playground/src/logging"
	"github.com/28H4/plot-playground/src/multifit"
	"github.com/28H4/plot-playground/src/report"
	"github.com/28H4/plot-playground/src/viewer"
)

var logger = logging.For("multifit")

// Bundled ion flux sample, used when the default data file is not in the working directory.
//
//go:embed testdata/example_data.pid
var sampleData []byte

type options struct {
	configPath  string
	dataPath    string
	outPath     string
	printConfig bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Optional YAML file overlaying the default figure options")
	flag.StringVar(&opts.dataPath, "file", "", "Data file (text table or .xlsx); overrides data.file of the config")
	flag.StringVar(&opts.outPath, "out", "", "Write the figure to this PNG file")
	show := flag.Bool("show", true, "Open the figure in a window")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration as YAML")
	flag.Parse()
	if !logging.SetLogLevel(*logLevel) {
		logger.Warnf("unknown log level %q, using info", *logLevel)
	}

	img, err := run(opts)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	if *show {
		viewer.Show("Ion flux", img, "multifit.png")
	}
}

func run(opts options) (image.Image, error) {
	cfg := config.DefaultMultiFit()
	if opts.configPath != "" {
		if err := config.Load(opts.configPath, &cfg); err != nil {
			return nil, err
		}
	}
	if opts.dataPath != "" {
		cfg.Data.File = opts.dataPath
	}
	if opts.printConfig {
		out, err := config.Marshal(cfg)
		if err != nil {
			return nil, err
		}
		fmt.Print(out)
	}

	path, cleanup, err := resolveDataFile(cfg.Data.File, config.DefaultMultiFit().Data.File)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	tab, err := dataset.LoadTable(path, multifit.TableOptions(cfg.Data))
	if err != nil {
		return nil, err
	}
	logger.Infof("%s: %d series, %d rows", cfg.Data.File, len(tab.Columns), tab.Rows())

	img, reports, err := multifit.Render(cfg, tab)
	if err != nil {
		return nil, err
	}
	colors, err := colormap.ColorsByName(cfg.Colormap, len(reports))
	if err != nil {
		return nil, err
	}
	fmt.Println(report.SeriesTable(cfg.Legend.Title, reports, colors))

	if opts.outPath != "" {
		if err := figure.SavePNG(opts.outPath, img); err != nil {
			return nil, err
		}
		logger.Infof("wrote %s", opts.outPath)
	}
	return img, nil
}

// resolveDataFile returns path unchanged when it exists. When path is the
// default name and missing, the bundled sample is written to a temp file.
func resolveDataFile(path, defaultName string) (string, func(), error) {
	noop := func() {}
	if _, err := os.Stat(path); err == nil || !errors.Is(err, fs.ErrNotExist) || path != defaultName {
		return path, noop, nil
	}
	dir, err := os.MkdirTemp("", "multifit-")
	if err != nil {
		return "", noop, fmt.Errorf("sample dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }
	p := filepath.Join(dir, defaultName)
	if err := os.WriteFile(p, sampleData, 0o644); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("write sample: %w", err)
	}
	logger.Infof("%s not found, using the bundled sample", path)
	return p, cleanup, nil
}
