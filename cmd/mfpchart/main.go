package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/figure"
	"github.com/28H4/plot-playground/src/logging"
	"github.com/28H4/plot-playground/src/mfp"
	"github.com/28H4/plot-playground/src/viewer"
)

var logger = logging.For("mfpchart")

type options struct {
	configPath   string
	outPath      string
	temperature  float64
	crossSection float64
	printConfig  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Optional YAML file overlaying the default chart options")
	flag.StringVar(&opts.outPath, "out", "", "Write the chart to this PNG file")
	show := flag.Bool("show", true, "Open the chart in a window")
	flag.Float64Var(&opts.temperature, "temperature", 0, "Gas temperature in K (0 keeps the configured value)")
	flag.Float64Var(&opts.crossSection, "cross-section", 0, "Collision cross section in m² (0 keeps the configured value)")
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
		viewer.Show("Pressure and mean free path", img, "mean_free_path.png")
	}
}

func run(opts options) (image.Image, error) {
	cfg := config.DefaultMeanFreePath()
	if opts.configPath != "" {
		if err := config.Load(opts.configPath, &cfg); err != nil {
			return nil, err
		}
	}
	if opts.temperature != 0 {
		cfg.Temperature = opts.temperature
	}
	if opts.crossSection != 0 {
		cfg.CrossSection = opts.crossSection
	}
	if opts.printConfig {
		out, err := config.Marshal(cfg)
		if err != nil {
			return nil, err
		}
		fmt.Print(out)
	}

	img, err := mfp.Render(cfg)
	if err != nil {
		return nil, err
	}
	if opts.outPath != "" {
		if err := figure.SavePNG(opts.outPath, img); err != nil {
			return nil, err
		}
		logger.Infof("wrote %s", opts.outPath)
	}
	return img, nil
}
