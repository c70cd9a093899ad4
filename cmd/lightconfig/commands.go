// FILE: lixenwraith/lightconfig/cmd/lightconfig/commands.go
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/lixenwraith/lightconfig"
	"github.com/spf13/cobra"
)

// panel is the demo owner managed by the CLI
type panel struct {
	*lightconfig.Configuration

	Width   int      `config:"Window width"`
	Height  int      `config:"Window height"`
	Title   string   `config:""`
	Ratio   float64  `config:"Aspect ratio"`
	Opacity float32  `config:""`
	Count   *int     `config:"Open tab count"`
	Scale   *float64 `config:""`
}

func defaultPanel() *panel {
	return &panel{Width: 640, Height: 480, Title: "Hello World!", Ratio: 4.0 / 3.0, Opacity: 1}
}

type options struct {
	file    string
	format  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lightconfig",
		Short: "Inspect and edit a persisted panel configuration",
		Long: `lightconfig manages the configuration of a demo panel.

The file is discovered in $LIGHTCONFIG_CONFIG, the current directory and
the XDG config directories unless --file is given. Missing files are
created with default values on first use.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", "file format: xml, toml, yaml or json")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	rootCmd.AddCommand(
		newShowCmd(opts),
		newSetCmd(opts),
		newResetCmd(opts),
		newPathCmd(opts),
	)
	return rootCmd
}

// open binds a default panel to the configured file without loading it
func open(opts *options) (*panel, error) {
	level := log.WarnLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "lightconfig", Level: level})

	p := defaultPanel()
	b := lightconfig.NewBuilder().
		WithOwner(p).
		WithLogger(logger).
		WithFileDiscovery(lightconfig.DefaultDiscoveryOptions("lightconfig"))
	if opts.file != "" {
		b = b.WithFile(opts.file)
	}
	if opts.format != "" {
		b = b.WithFormat(opts.format)
	}

	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}
	p.Configuration = cfg
	return p, nil
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every variable with its label and current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := open(opts)
			if err != nil {
				return err
			}
			if err := p.LoadOrSave(); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tLABEL\tTYPE\tVALUE")
			for _, v := range p.Vars() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Key(), v.Label(), v.TypeName(), v.String())
			}
			return w.Flush()
		},
	}
}

func newSetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one variable and save the file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := open(opts)
			if err != nil {
				return err
			}
			if err := p.LoadOrSave(); err != nil {
				return err
			}

			key, value := args[0], args[1]
			v, ok := p.Var(key)
			if !ok {
				return fmt.Errorf("%w: %s (known: %v)", lightconfig.ErrUnknownVariable, key, p.Keys())
			}
			v.Observe(lightconfig.ObserverFunc(func(v *lightconfig.Variable) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", v.Key(), v.String())
			}))

			if err := p.Apply(key, value); err != nil {
				return err
			}
			return p.Save()
		},
	}
}

func newResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the configuration file so defaults apply again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := open(opts)
			if err != nil {
				return err
			}
			if err := p.Delete(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", p.Location())
			return nil
		},
	}
}

func newPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := open(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Location())
			return nil
		},
	}
}
