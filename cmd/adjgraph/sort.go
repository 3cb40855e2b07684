// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/katalvlaran/adjgraph/quicksort"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func sortCommand() cli.Command {
	return cli.Command{
		Name:      "sort",
		Usage:     "Quicksort a list of integers",
		ArgsUsage: "<int> [<int>...]",
		Action: func(c *cli.Context) error {
			values, err := parseInts(c.Args())
			if err != nil {
				return errors.Annotate(err, "unable to read numbers")
			}
			log.WithField("count", len(values)).Debug("sorting")

			_, err = fmt.Fprintln(c.App.Writer, quicksort.Sort(values))
			return err
		},
	}
}
