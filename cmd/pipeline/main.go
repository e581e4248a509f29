package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/huynhanx03/go-crossqueue/pkg/logger"
	"github.com/huynhanx03/go-crossqueue/pkg/settings"
)

func main() {
	configFile := flag.String("c", "", "path to a YAML config file")
	showDefault := flag.Bool("dc", false, "show default config")
	flag.Parse()

	if *showDefault {
		if err := writeDefaultConfig(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg, err := settings.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg.Pipeline, log, os.Stdout); err != nil {
		log.Error("pipeline failed", zap.Error(err))
		stop()
		log.Sync()
		os.Exit(1)
	}
}

// writeDefaultConfig writes the default configuration to w as YAML.
func writeDefaultConfig(w io.Writer) error {
	b, err := yaml.Marshal(settings.Default())
	if err != nil {
		return errors.Wrap(err, "failed to encode default config")
	}
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "failed to write default config")
	}
	return nil
}
