// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/katalvlaran/adjgraph/core"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func graphCommand() cli.Command {
	return cli.Command{
		Name:  "graph",
		Usage: "Build a graph, optionally remove vertices and traverse it, then print the result",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "vertices",
				Usage: "Comma separated vertex IDs, in insertion order, e.g. 1,2,3",
			},
			cli.StringFlag{
				Name:  "edges",
				Usage: "[optional] Comma separated edges, e.g. 1-2,2-3 (use 1:-2 for negative IDs)",
			},
			cli.StringFlag{
				Name:  "remove",
				Usage: "[optional] Comma separated vertex IDs to remove after building",
			},
			cli.StringFlag{
				Name:  "traverse",
				Usage: "[optional] Traversal kind to run after building: bfs or dfs",
			},
			cli.IntFlag{
				Name:  "start",
				Usage: "[optional] Start vertex for --traverse",
			},
			cli.IntFlag{
				Name:  "max-depth",
				Usage: "[optional] Depth limit for --traverse, 0 means unlimited",
			},
			cli.BoolFlag{
				Name:  "unique",
				Usage: "[optional] Ignore repeated vertex IDs instead of re-adding them",
			},
		},
		Action: runGraph,
	}
}

func runGraph(c *cli.Context) error {
	vertices, err := parseIntList(c.String("vertices"))
	if err != nil {
		return errors.Annotate(err, "unable to read --vertices")
	}
	edges, err := parseEdges(c.String("edges"))
	if err != nil {
		return errors.Annotate(err, "unable to read --edges")
	}
	removals, err := parseIntList(c.String("remove"))
	if err != nil {
		return errors.Annotate(err, "unable to read --remove")
	}

	var opts []core.GraphOption
	if c.Bool("unique") {
		opts = append(opts, core.WithUniqueVertices())
	}
	g := core.NewGraph(opts...)

	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return errors.Annotatef(err, "unable to add edge %d-%d", e[0], e[1])
		}
	}
	log.WithFields(log.Fields{
		"size":      g.Size(),
		"relations": g.Relations(),
	}).Debug("graph built")

	for _, v := range removals {
		if err := g.RemoveVertex(v); err != nil {
			return errors.Annotatef(err, "unable to remove vertex %d", v)
		}
		log.WithField("vertex", v).Debug("vertex removed")
	}

	w := c.App.Writer
	fmt.Fprintln(w, g.Print())
	fmt.Fprintf(w, "size=%d relations=%d\n", g.Size(), g.Relations())

	if !c.IsSet("traverse") {
		return nil
	}
	kind, err := core.ParseTraversalKind(c.String("traverse"))
	if err != nil {
		return errors.Trace(err)
	}
	start := c.Int("start")
	var order []int
	err = g.Traverse(start, func(v int) error {
		order = append(order, v)
		return nil
	}, kind, core.WithMaxDepth(c.Int("max-depth")))
	if err != nil {
		return errors.Annotatef(err, "unable to traverse from %d", start)
	}
	fmt.Fprintf(w, "%s from %d: %v\n", kind, start, order)

	return nil
}
