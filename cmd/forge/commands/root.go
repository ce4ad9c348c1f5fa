// Package commands implements the CLI commands for the forge build tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/build"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// CLI represents the command line interface for forge.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
	args    []string
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) (*app.BuildReport, error)
	Clean(ctx context.Context, opts app.CleanOptions) error
	Watch(ctx context.Context, opts app.BuildOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application, logger ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:                "forge",
		Short:              "An incremental build tool for C and C++ programs",
		SilenceUsage:       true,
		SilenceErrors:      true,
		Version:            build.Version,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		PersistentPreRun:   c.applyLogFlags,
		RunE:               c.runBuild,
	}

	rootCmd.SetVersionTemplate(build.String() + "\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Configuration file, or a directory searched upwards for "+domain.ConfigFileName+" (default: working directory)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write logs as JSON")
	addClearFlag(rootCmd)

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.warnUnknownFlags()
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.args = args
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func addClearFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("clear", "C", false, "Discard previous build results and rebuild everything")
}

func (c *CLI) applyLogFlags(cmd *cobra.Command, _ []string) {
	jsonLog, _ := cmd.Flags().GetBool("json-log")
	if !jsonLog {
		return
	}
	if l, ok := c.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(true)
	}
}

func (c *CLI) buildOptions(cmd *cobra.Command) app.BuildOptions {
	configPath, _ := cmd.Flags().GetString("config")
	reset, _ := cmd.Flags().GetBool("clear")
	return app.BuildOptions{ConfigPath: configPath, Clear: reset}
}

func (c *CLI) runBuild(cmd *cobra.Command, args []string) error {
	c.warnUnknownArgs(args)
	_, err := c.app.Build(cmd.Context(), c.buildOptions(cmd))
	return err
}

func (c *CLI) warnUnknownArgs(args []string) {
	for _, arg := range args {
		c.logger.Warn(fmt.Sprintf("Unknown argument: %q", arg))
	}
}

// warnUnknownFlags reports flags the target command does not define.
// Parsing itself tolerates them.
func (c *CLI) warnUnknownFlags() {
	cmd, _, err := c.rootCmd.Find(c.args)
	if err != nil || cmd == nil {
		cmd = c.rootCmd
	}

	for _, arg := range c.args {
		if arg == "--" {
			return
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		if !knownFlag(cmd, arg) {
			c.logger.Warn(fmt.Sprintf("Unknown argument: %q", arg))
		}
	}
}

func knownFlag(cmd *cobra.Command, arg string) bool {
	if long, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, _ := strings.Cut(long, "=")
		switch name {
		case "help", "version":
			return true
		}
		return lookup(cmd, func(fs *pflag.FlagSet) bool { return fs.Lookup(name) != nil })
	}

	short := arg[1:2]
	if short == "h" {
		return true
	}
	return lookup(cmd, func(fs *pflag.FlagSet) bool { return fs.ShorthandLookup(short) != nil })
}

func lookup(cmd *cobra.Command, found func(*pflag.FlagSet) bool) bool {
	return found(cmd.Flags()) || found(cmd.PersistentFlags()) || found(cmd.InheritedFlags())
}
