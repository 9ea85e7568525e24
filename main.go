package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/gomokun/internal"
	"github.com/rocketscienceinc/gomokun/internal/apperror"
	"github.com/rocketscienceinc/gomokun/internal/config"
	"github.com/rocketscienceinc/gomokun/internal/entity"
)

const (
	exitWin         = 0
	exitDraw        = 1
	exitFailure     = 2
	exitInterrupted = 3
)

// main - is the entry point of the application. It parses flags, loads the configuration and plays one game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(exitFailure)
		}
	}()

	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute - runs the root command and maps its outcome to an exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var result *entity.Result

	cmd := newRootCommand(stderr, &result)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}

	return exitCode(result, err)
}

func newRootCommand(logOutput io.Writer, result **entity.Result) *cobra.Command {
	var (
		configPath string
		logLevel   string
		size       int
	)

	cmd := &cobra.Command{
		Use:           "gomokun",
		Short:         "Two player N-in-a-row on a 2N x 2N board",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := initConfig(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("size") {
				conf.BoardSize = size
			}
			if cmd.Flags().Changed("log-level") {
				conf.LogLevel = logLevel
			}

			if err = conf.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := initLogger(conf, logOutput)

			*result, err = app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().IntVarP(&size, "size", "s", 0, "board size and winning run length, 0 asks for it")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// exitCode - a win exits 0, a draw 1, an interruption 3 and anything else 2.
func exitCode(result *entity.Result, err error) int {
	switch {
	case errors.Is(err, apperror.ErrInterrupted),
		errors.Is(err, apperror.ErrInputClosed),
		errors.Is(err, context.Canceled):
		return exitInterrupted
	case err != nil:
		return exitFailure
	case result == nil:
		return exitFailure
	case result.IsDraw():
		return exitDraw
	default:
		return exitWin
	}
}

// initialize config.
func initConfig(path string) (*config.Config, error) {
	conf, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return conf, nil
}

// initialize logger.
func initLogger(conf *config.Config, output io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level}))
}
