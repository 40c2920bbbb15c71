// Package commands implements the CLI commands for autodeps.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/autodeps/internal/app"
	"go.trai.ch/autodeps/internal/build"
	"go.trai.ch/autodeps/internal/core/domain"
)

const envPrefix = "AUTODEPS"

// Flag names, also used as viper keys.
const (
	flagTarget    = "target"
	flagRoot      = "root"
	flagName      = "name"
	flagContainer = "container"
	flagCacheDir  = "cache-dir"
	flagNoCache   = "no-cache"
	flagJSONLog   = "json-log"
)

// CLI represents the command line interface for autodeps.
type CLI struct {
	app     Application
	logger  any
	config  *viper.Viper
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, opts app.ResolveOptions) (*app.Result, error)
	Clean(ctx context.Context, cacheDir string) error
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{
		app:    a,
		config: newConfig(),
	}

	rootCmd := &cobra.Command{
		Use:   "autodeps [buildlog] [overrides]",
		Short: "Reconstruct per-directory build manifests from a gcc/g++ build log",
		Long: fmt.Sprintf("Reads a build log (default %s), infers the module tree and writes one %s per\n"+
			"directory below --target. Corrections are read from an overrides file (default %s).",
			domain.DefaultBuildLog, domain.DefaultManifestName, domain.DefaultOverridesFile),
		Args:              cobra.MaximumNArgs(2),
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           build.Version,
		PersistentPreRunE: c.bindConfig,
		RunE:              c.runResolve,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.StringP(flagTarget, "t", "", "Output root for the manifests (nothing is written when empty)")
	flags.String(flagRoot, "", "Use this module root instead of the common source prefix")
	flags.String(flagName, domain.DefaultManifestName, "File name of each written manifest")
	flags.String(flagContainer, domain.DefaultContainer, "Directory that groups modules without being one")
	flags.Bool(flagNoCache, false, "Bypass the parse cache")

	persistent := rootCmd.PersistentFlags()
	persistent.String(flagCacheDir, domain.DefaultCachePath(), "Directory holding the parse cache")
	persistent.Bool(flagJSONLog, false, "Emit logs as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogger lets --json-log switch the given logger to JSON output.
func (c *CLI) WithLogger(logger any) *CLI {
	c.logger = logger
	return c
}

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// bindConfig layers the parsed flags over AUTODEPS_* environment variables.
// Flags set on the command line win.
func (c *CLI) bindConfig(cmd *cobra.Command, _ []string) error {
	if err := c.config.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if c.config.GetBool(flagJSONLog) {
		if l, ok := c.logger.(jsonLogger); ok {
			l.SetJSON(true)
		}
	}
	return nil
}

func (c *CLI) runResolve(cmd *cobra.Command, args []string) error {
	opts := app.ResolveOptions{
		BuildLog:     domain.DefaultBuildLog,
		Overrides:    domain.DefaultOverridesFile,
		Target:       c.config.GetString(flagTarget),
		Root:         c.config.GetString(flagRoot),
		ManifestName: c.config.GetString(flagName),
		Container:    c.config.GetString(flagContainer),
		CacheDir:     c.config.GetString(flagCacheDir),
		NoCache:      c.config.GetBool(flagNoCache),
	}
	if len(args) > 0 {
		opts.BuildLog = args[0]
	}
	if len(args) > 1 {
		opts.Overrides = args[1]
	}

	_, err := c.app.Resolve(cmd.Context(), opts)
	return err
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
