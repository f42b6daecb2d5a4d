// cmd/console/main.go
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-sales/internal/config"
	"github.com/javajoker/inventory-sales/internal/console"
	"github.com/javajoker/inventory-sales/internal/database"
	"github.com/javajoker/inventory-sales/internal/i18n"
	"github.com/javajoker/inventory-sales/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// stdout belongs to the menu, logs go to stderr.
	if err := logger.Setup(cfg.Log, os.Stderr); err != nil {
		logrus.Fatal("Failed to configure logging: ", err)
	}

	if err := i18n.Initialize(); err != nil {
		logrus.Fatal("Failed to initialize i18n: ", err)
	}

	store, err := database.Initialize(cfg.Store)
	if err != nil {
		logrus.Fatal("Failed to initialize store: ", err)
	}

	lang := cfg.I18n.DefaultLocale

	// Ctrl+C does not end the session; option 0 does.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, syscall.SIGINT)
	go func() {
		for range interrupts {
			fmt.Fprintf(os.Stdout, "\n\n%s\n\n", i18n.T(lang, i18n.KeyAppInterrupted))
		}
	}()

	term := console.NewTerminal(os.Stdin, os.Stdout, lang)
	shell := console.NewShell(term, store, cfg.Store.ExportDir)
	if err := shell.Run(); err != nil {
		logrus.Fatal("Console session failed: ", err)
	}
}
