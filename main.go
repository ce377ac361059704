package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	log := getLogger(os.Stderr)

	if err := newRootCmd(log).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cfmanifest",
		Short:         "Summarize the releases and stemcells of a deployment manifest",
		Long:          `cfmanifest reads a BOSH deployment manifest and prints its releases and stemcells as colorized tables.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Debug {
				log.SetLevel(logrus.DebugLevel)
			}
			log.WithFields(logrus.Fields{
				"file":  cfg.File,
				"color": cfg.Color,
			}).Debug("resolved configuration")

			return run(cfg, log, os.Stdout)
		},
	}
	registerFlags(cmd.Flags())

	return cmd
}
