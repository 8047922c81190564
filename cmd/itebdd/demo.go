// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"path/filepath"

	"github.com/dalzilio/itebdd"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDemoCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the exclusive or of two variables",
		Long: `Build x2 ^ x3 and write two files in the output directory:
other_bdd.gv, with the nodes reachable from the result, and bdd.gv, with every
node of the diagram.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.demo()
		},
	}
	addOutFlag(cmd.Flags(), o)
	return cmd
}

func (o *options) demo() error {
	bdd, err := itebdd.New(2, itebdd.Logger(o.logger))
	if err != nil {
		return err
	}
	n2 := bdd.AddNthIndex(2)
	n3 := bdd.AddNthIndex(3)
	root := bdd.Xor(n2, n3)
	if bdd.Errored() {
		return errors.Wrap(bdd.Err(), "building demo")
	}
	if err := bdd.FPrintDot(filepath.Join(o.outdir, "other_bdd.gv"), "otherBDD", root); err != nil {
		return err
	}
	if err := bdd.FPrintDot(filepath.Join(o.outdir, "bdd.gv"), "bdd"); err != nil {
		return err
	}
	o.logger.WithFields(logrus.Fields{
		"root":  root,
		"nodes": bdd.Size(),
	}).Info("demo written")
	return nil
}
