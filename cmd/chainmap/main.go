package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/homier/chainmap"
	"github.com/homier/chainmap/internal/config"
	"github.com/homier/chainmap/internal/logutil"
	"github.com/homier/chainmap/internal/repl"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "chainmap: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logutil.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	m, err := chainmap.New(
		chainmap.WithCapacity[string](cfg.MapCapacity()),
		chainmap.WithLogger[string](logger.Named("chainmap")),
	)
	if err != nil {
		return err
	}

	logger.Info("map ready", zap.Int("capacity", m.Capacity()))

	fmt.Println("Type 'help' for available commands.")

	return repl.New(m, os.Stdout, logger.Named("repl")).Run(os.Stdin)
}
