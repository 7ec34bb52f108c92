// Command llm-catalog asks a provider CLI tool for its model list.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	llmcatalog "github.com/kingfs/go-llm-catalog"
	"github.com/kingfs/go-llm-catalog/internal/config"
)

var (
	version = "0.1.0"
	logger  *slog.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		envFile string
	)

	rootCmd := &cobra.Command{
		Use:           "llm-catalog",
		Short:         "Query the model catalog of a provider CLI tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := config.LoadFile(envFile); err != nil {
					return fmt.Errorf("load env file: %w", err)
				}
			}
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load settings from a dotenv file")

	rootCmd.AddCommand(fetchCmd(), resolveCmd(), parseCmd(), showCmd())
	return rootCmd
}

// toolFlags are shared by commands that run the tool.
type toolFlags struct {
	cli     string
	timeout time.Duration
	asJSON  bool
}

func (f *toolFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.cli, "cli", "", "Tool executable (default $LLM_CATALOG_CLI)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Fetch timeout (default $LLM_CATALOG_TIMEOUT or 10s)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Output as JSON")
}

func (f *toolFlags) resolved() (string, time.Duration) {
	env := config.Env()
	cli, timeout := f.cli, f.timeout
	if cli == "" {
		cli = env.CLIPath
	}
	if timeout <= 0 {
		timeout = env.Timeout
	}
	return cli, timeout
}

func fetchCmd() *cobra.Command {
	var flags toolFlags
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run `<tool> models --json` and print the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, timeout := flags.resolved()
			if cli == "" {
				return errors.New("no tool configured: pass --cli or set LLM_CATALOG_CLI")
			}
			logger.Debug("fetching catalog", "cli", cli, "timeout", timeout)

			start := time.Now()
			resp := llmcatalog.FetchAvailableModels(cmd.Context(), cli, llmcatalog.SlogLogger(logger), timeout)
			if resp == nil {
				return llmcatalog.ErrNoCatalog
			}
			logger.Debug("catalog fetched", "models", len(resp.Models), "duration", time.Since(start))
			return printCatalog(cmd.OutOrStdout(), resp, flags.asJSON)
		},
	}
	flags.register(cmd)
	return cmd
}

func resolveCmd() *cobra.Command {
	var (
		flags    toolFlags
		fallback string
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Fetch the catalog, falling back to a static YAML catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, source, err := resolveCatalog(cmd.Context(), flags, fallback)
			if err != nil {
				return err
			}
			logger.Info("catalog resolved", "source", source, "models", len(resp.Models))
			return printCatalog(cmd.OutOrStdout(), resp, flags.asJSON)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&fallback, "fallback", "", "Fallback YAML catalog (default $LLM_CATALOG_FALLBACK)")
	return cmd
}

func parseCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "parse [FILE|-]",
		Short: "Validate captured `models --json` output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			resp := llmcatalog.ParseModelsOutput(string(raw))
			if resp == nil {
				if apiErr, ok := llmcatalog.ParseModelsError(string(raw)); ok {
					return fmt.Errorf("tool reported error %s: %s", apiErr.Code, apiErr.Error)
				}
				return errors.New("output is not a valid model catalog")
			}
			return printCatalog(cmd.OutOrStdout(), resp, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func showCmd() *cobra.Command {
	var (
		flags    toolFlags
		fallback string
	)
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show one model by ID or alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, _, err := resolveCatalog(cmd.Context(), flags, fallback)
			if err != nil {
				return err
			}
			m, ok := llmcatalog.NewCatalog(resp).Get(args[0])
			if !ok {
				return fmt.Errorf("model %q not in catalog", args[0])
			}
			return printModel(cmd.OutOrStdout(), m, flags.asJSON)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&fallback, "fallback", "", "Fallback YAML catalog (default $LLM_CATALOG_FALLBACK)")
	return cmd
}

func resolveCatalog(ctx context.Context, flags toolFlags, fallback string) (*llmcatalog.ModelsResponse, llmcatalog.Source, error) {
	cli, timeout := flags.resolved()
	if fallback == "" {
		fallback = config.Env().FallbackPath
	}
	return llmcatalog.Resolve(ctx, llmcatalog.Options{
		ExecutablePath: cli,
		FallbackPath:   fallback,
		Timeout:        timeout,
		Logger:         llmcatalog.SlogLogger(logger),
	})
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}
