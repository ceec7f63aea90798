package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"tunemint/internal/chain"
	"tunemint/internal/config"
	"tunemint/internal/logger"
	"tunemint/internal/mint"
	"tunemint/internal/preview"
	"tunemint/internal/receipt"
	"tunemint/internal/ui"
	"tunemint/internal/wallet"

	"golang.org/x/term"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "tunemint needs an interactive terminal")
		os.Exit(1)
	}

	cfg := config.LoadOrInit()
	dataDir := config.ExpandPath(cfg.DataDir)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		panic(err)
	}

	cleanup, err := logger.Setup(dataDir, *debug)
	if err == nil {
		defer func() { _ = cleanup() }()
	}
	log := logger.L()

	sess := wallet.NewSession(config.ExpandPath(cfg.KeystorePath), cfg.RPCURL, log)
	orch := mint.NewOrchestrator(chain.NewMinter(sess, log), log)

	previews, err := preview.NewManager(filepath.Join(dataDir, "_previews"), cfg.PreviewBudget)
	if err != nil {
		panic(err)
	}
	receipts := receipt.NewStore(dataDir)

	h := ui.NewApp(cfg, sess, orch, previews, receipts, log)
	if err := h.Run(); err != nil {
		panic(err)
	}
}
