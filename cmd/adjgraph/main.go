// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	Version   = "dev"
	GitCommit = "-"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s(%s)", Version, GitCommit)
	app.Name = "adjgraph"
	app.Usage = "Build undirected integer graphs and quicksort integers from the command line"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "log.json",
			Usage: "[optional] Log as JSON",
		},
		cli.BoolFlag{
			Name:  "log.debug",
			Usage: "[optional] Log debug info",
		},
	}

	app.Commands = []cli.Command{
		sortCommand(),
		graphCommand(),
	}

	app.Before = func(context *cli.Context) error {
		if context.Bool("log.json") {
			log.SetFormatter(&log.JSONFormatter{})
		} else {
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		}

		if context.Bool("log.debug") {
			log.SetLevel(log.DebugLevel)
		}

		log.SetOutput(os.Stderr)

		return nil
	}

	return app
}
