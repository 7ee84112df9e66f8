package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/icd-converter/internal/app"
	"github.com/oshokin/icd-converter/internal/config"
	"github.com/oshokin/icd-converter/internal/logger"
	"github.com/oshokin/icd-converter/internal/version"
)

// exitCodeFailure is the process exit status of any failed command.
const exitCodeFailure = 1

// rootOptions holds the persistent flag values and the configuration they resolve to.
type rootOptions struct {
	// configFilename is the value of --config.
	configFilename string
	// cfg is loaded by loadConfig before a command runs.
	cfg *config.Config
}

// Execute executes the root command and exits with status 1 on failure.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()

	_ = logger.Logger().Sync()

	if err != nil {
		os.Exit(exitCodeFailure)
	}
}

// run executes the command line args and reports errors not yet reported by the command itself.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, app.ErrReported) {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	return err
}

func newRootCommand() *cobra.Command {
	opts := new(rootOptions)

	rootCmd := &cobra.Command{
		Use:   "icd-converter",
		Short: "Convert ICD-10 to ICD-11 mapping tables into CSV and JSON.",
		Long: `ICD Converter prepares the ICD-10 to ICD-11 mapping table for publishing.

The usual workflow is:
1. convert the published Excel workbook to CSV:
   icd-converter convert mapping.xlsx temp_icd_data.csv
2. extract the code and name columns into JSON:
   icd-converter parse
3. look up a code or name in the result:
   icd-converter search F70`,
		Version:       version.Full(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringVarP(
		&opts.configFilename,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags.String(
		"log-level",
		"",
		"logging level: debug, info, warn, error, dpanic, panic or fatal.")

	rootCmd.AddCommand(
		newConvertCommand(opts),
		newParseCommand(opts),
		newSearchCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(),
	)

	return rootCmd
}

// loadConfig loads the configuration, applies flag overrides and validates the result.
func (o *rootOptions) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(o.configFilename)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	o.cfg = cfg

	return nil
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("input"); flag != nil && flag.Changed {
		cfg.InputPath, _ = flags.GetString("input")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("mappings"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("mappings")
	}

	if flag := flags.Lookup("header-rows"); flag != nil && flag.Changed {
		cfg.HeaderRows, _ = flags.GetInt64("header-rows")
	}

	if flag := flags.Lookup("sheet"); flag != nil && flag.Changed {
		cfg.SheetName, _ = flags.GetString("sheet")
	}

	if flag := flags.Lookup("progress"); flag != nil && flag.Changed {
		cfg.ShowProgress, _ = flags.GetBool("progress")
	}

	return config.ValidateConfig(cfg)
}

// streamsOf returns the standard streams configured on cmd.
func streamsOf(cmd *cobra.Command) app.Streams {
	return app.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
}
