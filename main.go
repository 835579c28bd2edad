package main

import (
	"flag"
	"os"

	"github.com/soocke/gallery-picker-go/app"
	"github.com/soocke/gallery-picker-go/config"
)

func main() {
	var (
		cfgPath   = flag.String("config", "gallery-picker.json", "path to the configuration file")
		imagePath = flag.String("image", "", "gallery image to analyze (headless mode)")
		picks     = flag.Int("picks", 0, "number of draws to perform in headless mode")
		headless  = flag.Bool("headless", false, "run without a window; requires -image")
		debugMode = flag.Bool("debug", false, "enable debug logging and runtime stats")
	)
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)
	if *debugMode {
		cfg.Debug = true
	}

	logger := NewLogger(logLevel(cfg.Debug))
	if cfgErr != nil {
		logger.Warn("using default configuration", "path", *cfgPath, "error", cfgErr)
	}

	if *headless || *imagePath != "" {
		if err := app.RunHeadless(cfg, logger, *imagePath, *picks); err != nil {
			logger.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	application := app.NewApp("Gallery Picker", 900, 700, cfg, *cfgPath, logger)
	application.Start()
}
