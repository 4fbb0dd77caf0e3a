package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/culturize/internal/config"
	"github.com/JonMunkholm/culturize/internal/core"
	"github.com/JonMunkholm/culturize/internal/logging"
	"github.com/JonMunkholm/culturize/internal/report"
	"github.com/JonMunkholm/culturize/internal/source"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	output     string
	format     string
	sheet      string
	configPath string
	noProbe    bool
}

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, core.FormatUserError(core.MapError(err)))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "culturize",
		Short:         "Check PID to URL redirect datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCheckCmd(), newCodesCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a .csv or .xlsx dataset and write a report",
		Long: `check reads a redirect dataset, flags malformed rows (E01-E05),
duplicate PID and document type pairs (E07) and unreachable URLs (E06),
and writes an HTML or JSON report. It exits non-zero when the run fails,
including when invalid rows are found and CSV_IGNORE_ON_INVALID_DATA is off.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Report file path (default: stdout)")
	cmd.Flags().StringVar(&flags.format, "format", "", "Report format: html or json (default from REPORT_FORMAT)")
	cmd.Flags().StringVar(&flags.sheet, "sheet", "", "Worksheet to read from .xlsx input (default: first sheet)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML config file (default from "+config.FileEnv+")")
	cmd.Flags().BoolVar(&flags.noProbe, "no-probe", false, "Skip URL liveness probes")

	return cmd
}

func runCheck(ctx context.Context, stdout io.Writer, path string, flags checkFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.format != "" {
		cfg.Report.Format = flags.format
	}
	if flags.sheet != "" {
		cfg.CSV.Sheet = flags.sheet
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	src, err := source.Open(path, cfg.CSV.Sheet)
	if err != nil {
		return err
	}
	defer src.Close()

	svc := core.NewService(cfg, nil)
	if flags.noProbe {
		svc.SetProbe(false)
	}

	result, checkErr := svc.Check(ctx, path, src)
	if result == nil {
		return checkErr
	}

	if err := writeReport(ctx, stdout, flags.output, cfg, result); err != nil {
		return errors.Join(checkErr, err)
	}
	return checkErr
}

func writeReport(ctx context.Context, stdout io.Writer, output string, cfg *config.Config, result *core.RunResult) error {
	w := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := report.Write(ctx, w, cfg.Report.Format, cfg.Report.Title, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if output != "" {
		slog.Info("report written", "path", output, "format", cfg.Report.Format)
	}
	return nil
}

func newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List row error codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := []core.ErrorCode{
				core.CodeInvalidPID,
				core.CodeInvalidDocType,
				core.CodeMissingDocType,
				core.CodeInvalidURL,
				core.CodeInvalidEnabled,
				core.CodeURLUnreachable,
				core.CodeDuplicate,
			}
			for _, code := range codes {
				msg := core.Describe(code)
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s. %s\n", msg.Code, msg.Message, msg.Action)
			}
			return nil
		},
	}
}
