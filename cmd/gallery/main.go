package main

import (
	"flag"
	"os"

	"github.com/28H4/plot-playground/src/logging"
)

var logger = logging.For("gallery")

func main() {
	outDir := flag.String("out", "gallery", "Directory the PNG files are written to")
	dataPath := flag.String("file", "", "Data file of the multi-series figure (default: cmd/multifit/testdata/example_data.pid)")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	if !logging.SetLogLevel(*logLevel) {
		logger.Warnf("unknown log level %q, using info", *logLevel)
	}

	written, err := RunGallery(*outDir, *dataPath)
	for _, p := range written {
		logger.Infof("wrote %s", p)
	}
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
