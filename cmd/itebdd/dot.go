// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"path/filepath"

	"github.com/dalzilio/itebdd"
	"github.com/dalzilio/itebdd/internal/netlist"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type dotOptions struct {
	*options
	all   bool
	stats bool
	size  int
}

func newDotCmd(o *options) *cobra.Command {
	d := &dotOptions{options: o}
	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Build the outputs of a netlist and export them",
		Long: `Read a YAML netlist, build its gates and write one GraphViz file, named
after the output, for each output of the netlist.

        $ itebdd dot adder.yaml -o /tmp/adder --stats
        `,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.run(cmd, args[0])
		},
	}
	addOutFlag(cmd.Flags(), o)
	cmd.Flags().BoolVar(&d.all, "all", false, "also write the whole diagram in bdd.gv")
	cmd.Flags().BoolVar(&d.stats, "stats", false, "print statistics about the diagram")
	cmd.Flags().IntVar(&d.size, "maxnodes", 0, "maximal number of nodes, 0 means no limit")
	return cmd
}

func (d *dotOptions) run(cmd *cobra.Command, filename string) error {
	nl, err := netlist.Load(filename)
	if err != nil {
		return err
	}
	bdd, err := itebdd.New(len(nl.Variables), itebdd.Logger(d.logger), itebdd.Maxnodesize(d.size))
	if err != nil {
		return err
	}
	env, err := nl.Build(bdd)
	if err != nil {
		return errors.Wrapf(err, "netlist %s", nl.Name)
	}
	d.logger.WithFields(logrus.Fields{
		"netlist": nl.Name,
		"nodes":   bdd.Size(),
	}).Debug("netlist built")

	// The construction is over; exports only read the Manager.
	var g errgroup.Group
	for _, out := range nl.Outputs {
		out, root := out, env[out]
		g.Go(func() error {
			return bdd.FPrintDot(filepath.Join(d.outdir, out+".gv"), out, root)
		})
	}
	if d.all {
		g.Go(func() error {
			return bdd.FPrintDot(filepath.Join(d.outdir, "bdd.gv"), nl.Name)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if d.stats {
		fmt.Fprintln(cmd.OutOrStdout(), bdd.Stats())
		for _, out := range nl.Outputs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s solutions\n", out, bdd.Satcount(env[out]))
		}
	}
	return nil
}
