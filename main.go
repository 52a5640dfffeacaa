package main

import (
	"fmt"
	"log"
	"os"

	"github.com/deanrtaylor1/gogenre/cli"
	"github.com/deanrtaylor1/gogenre/config"
	"github.com/deanrtaylor1/gogenre/logger"
	"github.com/deanrtaylor1/gogenre/util"
)

const configName = "gogenre"

func help() {
	fmt.Println("GoGenre - A Naive Bayes film genre classifier written in Go")
	fmt.Println("Author: Dean Taylor")
	fmt.Println("Version: 0.1")
	fmt.Println("License: MIT")
	fmt.Println("default start: gogenre trains on " + config.DefaultTrainPath + " and reports per genre results on " + config.DefaultTestPath)

	fmt.Println("CLI Usage: PROGRAM [SUBCOMMAND]")
	fmt.Println("----------------------------------")
	fmt.Println("Subcommands:")
	fmt.Println("    cli:                            pick corpora and classify descriptions interactively")
	fmt.Println("    -help:                          list all commands")
	fmt.Println("Configuration: optional " + configName + ".yaml in the working directory")
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configName)
	if err != nil {
		logger.HandleLog(fmt.Sprintf("no configuration loaded (%v), using defaults", err))
		cfg = config.GetDefaultConfig()
	}
	return cfg
}

func main() {
	args := os.Args[1:]
	if len(args) < 1 {
		if err := cli.RunBatch(loadConfig(), os.Stdout); err != nil {
			log.Fatal(util.TerminalRed, err, util.TerminalReset)
		}
		return
	}
	program := args[0]

	switch program {
	case "cli":
		cli.InitialPrompt(loadConfig())

	case "-help":
		help()

	default:
		help()
		os.Exit(1)
	}

}
