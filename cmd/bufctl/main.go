// Package main is the entry point for bufctl, a command line driver for growable regions
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/AdrianWangs/go-buffer/config"
	"github.com/AdrianWangs/go-buffer/internal/script"
	"github.com/AdrianWangs/go-buffer/pkg/logger"
)

// globalFlags are shared by every command
type globalFlags struct {
	configFile *string
	logLevel   *string
	logFormat  *string
}

// load reads the configuration file, or the environment when none is given,
// applies flag overrides and configures logging
func (g *globalFlags) load() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *g.configFile != "" {
		cfg, err = config.LoadFromFile(*g.configFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.LoadFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	if *g.logLevel != "" {
		cfg.LogLevel = *g.logLevel
	}
	if *g.logFormat != "" {
		cfg.LogFormat = *g.logFormat
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	logger.WithFields(logger.Fields{
		"capacity":      cfg.Capacity,
		"growth_factor": cfg.GrowthFactor,
		"charset":       cfg.Charset,
		"max_length":    cfg.MaxLength,
	}).Info("configuration loaded")
	return cfg, nil
}

func newApp() *kingpin.Application {
	app := kingpin.New("bufctl", "Drive a growable byte region from a command script.")
	g := &globalFlags{
		configFile: app.Flag("config", "Path to a JSON or YAML config file.").String(),
		logLevel:   app.Flag("log-level", "Log level (debug, info, warn, error).").String(),
		logFormat:  app.Flag("log-format", "Log format (text or json).").Enum("text", "json"),
	}

	addRunCommand(app, g)
	addConvertCommand(app, g)
	addCommandsCommand(app)
	return app
}

func addCommandsCommand(app *kingpin.Application) {
	app.Command("commands", "List script commands.").Action(func(_ *kingpin.ParseContext) error {
		for _, usage := range script.Commands() {
			fmt.Println(usage)
		}
		return nil
	})
}

func exitWithErr(err error) {
	fmt.Fprintf(os.Stderr, "bufctl: %v\n", err)
	os.Exit(1)
}

func main() {
	app := newApp()
	if _, err := app.Parse(os.Args[1:]); err != nil {
		exitWithErr(err)
	}
}
