package main

import (
	"github.com/alecthomas/kong"
	"github.com/haguru/docgate/config"
	"github.com/haguru/docgate/internal/app"
)

var cli struct {
	Config string `default:"${default_config}" type:"path" help:"Path to the YAML configuration file."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("docgate"),
		kong.Description("REST gateway for MongoDB configuration documents."),
		kong.Vars{"default_config": config.CONFIG_PATH},
		kong.DefaultEnvars("DOCGATE"),
	)

	// create and initialize the app
	app, err := app.NewApp(cli.Config)
	if err != nil {
		panic(err)
	}

	// blocks until SIGINT/SIGTERM
	err = app.Run()
	if err != nil {
		panic(err)
	}
}
