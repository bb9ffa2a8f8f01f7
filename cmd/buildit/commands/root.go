// Package commands implements the command line interface for buildit.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/buildit/internal/build"
	"go.trai.ch/buildit/internal/core/domain"
)

const usage = `buildit -c -cr -cd -j -m -h -s -b -v
  -c: configure (release is default)
  -cr: configure release
  -cd: configure debug
  -j: build
  -m: clean
  -h: help
  -s: source directory
  -b: build directory
  -v: version

Any other argument is passed to the generator or build tool.
The source directory defaults to $` + domain.SourceDirEnv + `.
`

// CLI represents the command line interface for buildit.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, flags domain.Flags, envSourceDir string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	// Flags are single-dash words (-cr, -cd) and unknown tokens are forwarded,
	// so pflag parsing is disabled and ParseArgs reads the raw arguments.
	rootCmd := &cobra.Command{
		Use:                "buildit",
		Short:              "Configure, build and clean CMake projects",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Version:            build.Version,
		RunE:               c.run,
	}
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), usage)
	})

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	flags, err := ParseArgs(args)
	if err != nil {
		return err
	}

	if flags.ShowVersion {
		c.printVersion(cmd.OutOrStdout())
		return nil
	}

	if flags.Mode == domain.ModeHelp {
		return cmd.Help()
	}

	return c.app.Run(cmd.Context(), flags, os.Getenv(domain.SourceDirEnv))
}

func (c *CLI) printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s version %s (commit: %s, date: %s)\n",
		c.rootCmd.Name(), build.Version, build.Commit, build.Date)
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
