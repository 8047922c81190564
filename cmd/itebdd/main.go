// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command itebdd builds binary decision diagrams and exports them in the
// GraphViz DOT format.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	debug  bool
	outdir string
	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{logger: logrus.New()}

	cmd := &cobra.Command{
		Use:          "itebdd",
		Short:        "Build binary decision diagrams with if-then-else",
		Long:         `A tool to build reduced ordered binary decision diagrams and export them as GraphViz files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.debug {
				o.logger.SetLevel(logrus.DebugLevel)
			}
			o.logger.SetOutput(cmd.ErrOrStderr())
			o.logger.Debugf("log level %s", o.logger.Level)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.AddCommand(newDemoCmd(o), newDotCmd(o))
	return cmd
}

// addOutFlag registers the output directory flag shared by subcommands.
func addOutFlag(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.outdir, "out", "o", ".", "directory where GraphViz files are written")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
