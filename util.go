package main

import (
	"fmt"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/thunderbottom/cfmanifest/pkg/manifest"
	"github.com/thunderbottom/cfmanifest/pkg/render"
)

// Colour modes accepted by --color
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// Config is the resolved command line configuration
type Config struct {
	File  string `koanf:"file"`
	Color string `koanf:"color"`
	Debug bool   `koanf:"debug"`
}

// Validate checks values the flag parser cannot
func (c Config) Validate() error {
	switch c.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("Invalid color mode %q, expected one of %s, %s, %s.", c.Color, colorAuto, colorAlways, colorNever)
	}
	if c.File == "" {
		return fmt.Errorf("Manifest path must not be empty.")
	}
	return nil
}

// getLogger returns a logrus.Logger writing to w
// with LogLevel set to INFO
func getLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)

	return logger
}

// registerFlags declares the command line flags on f
func registerFlags(f *pflag.FlagSet) {
	f.StringP("file", "f", manifest.DefaultFile, "Path to the deployment manifest.")
	f.String("color", colorAuto, "Colorize output: auto, always or never.")
	f.Bool("debug", false, "Enable debug logging.")
}

// readConfig loads the parsed flags through koanf into a Config
func readConfig(f *pflag.FlagSet) (Config, error) {
	var cfg Config
	k := koanf.New(".")

	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return cfg, fmt.Errorf("Error loading configuration: %v", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("Error reading configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// useColor resolves the colour mode against the output stream
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// run loads the manifest and prints its tables to out. Nothing is
// written unless the manifest was read and parsed successfully.
func run(cfg Config, log *logrus.Logger, out io.Writer) error {
	log.WithField("file", cfg.File).Debug("loading manifest")

	m, err := manifest.Decode(cfg.File)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"releases":  m.Releases.Len(),
		"stemcells": m.Stemcells.Len(),
	}).Debug("parsed manifest")

	return render.New(out, useColor(cfg.Color, out)).Render(m)
}
