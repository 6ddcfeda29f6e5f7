package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ssshep/expensepro/cmd/add"
	"ssshep/expensepro/cmd/analyze"
	"ssshep/expensepro/cmd/bill"
	"ssshep/expensepro/cmd/budget"
	configcmd "ssshep/expensepro/cmd/config"
	"ssshep/expensepro/cmd/edit"
	"ssshep/expensepro/cmd/export"
	"ssshep/expensepro/cmd/filters"
	importcmd "ssshep/expensepro/cmd/import"
	"ssshep/expensepro/cmd/list"
	"ssshep/expensepro/cmd/remove"
	"ssshep/expensepro/cmd/reset"
	"ssshep/expensepro/cmd/root"
	"ssshep/expensepro/cmd/show"
	"ssshep/expensepro/cmd/summary"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Environment first, so the level below and viper both see .env values.
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(remove.AllCmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(show.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(filters.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(bill.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(reset.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

// loadEnvSilently loads a .env file from the working directory or its
// parent without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global logrus level from
// EXPENSEPRO_LOG_LEVEL before any logger is created
func configureLogLevelDirectly() {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv("EXPENSEPRO_LOG_LEVEL")))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
