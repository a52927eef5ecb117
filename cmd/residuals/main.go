package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/28H4/plot-playground/src/config"
	"github.com/28H4/plot-playground/src/figure"
	"github.com/28H4/plot-playground/src/logging"
	"github.com/28H4/plot-playground/src/report"
	"github.com/28H4/plot-playground/src/residuals"
	"github.com/28H4/plot-playground/src/viewer"
)

var logger = logging.For("residuals")

type options struct {
	configPath  string
	outPath     string
	seed        uint64
	seedSet     bool
	printConfig bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Optional YAML file overlaying the default figure options")
	flag.StringVar(&opts.outPath, "out", "", "Write the figure to this PNG file")
	show := flag.Bool("show", true, "Open the figure in a window")
	flag.Uint64Var(&opts.seed, "seed", 0, "Seed of the noise generator (default: configured seed)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration as YAML")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	if !logging.SetLogLevel(*logLevel) {
		logger.Warnf("unknown log level %q, using info", *logLevel)
	}

	img, err := run(opts)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	if *show {
		viewer.Show("Residuals", img, "residuals.png")
	}
}

func run(opts options) (image.Image, error) {
	cfg := config.DefaultResiduals()
	if opts.configPath != "" {
		if err := config.Load(opts.configPath, &cfg); err != nil {
			return nil, err
		}
	}
	if opts.seedSet {
		cfg.Seed = opts.seed
	}
	if opts.printConfig {
		out, err := config.Marshal(cfg)
		if err != nil {
			return nil, err
		}
		fmt.Print(out)
	}

	x, y := residuals.Generate(cfg)
	d, err := residuals.Build(x, y, cfg)
	if err != nil {
		return nil, err
	}
	fmt.Println(report.FitSummary(cfg.FitLabel, d.Fit()))

	img, err := d.Render()
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
