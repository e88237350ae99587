package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "Pomodoro"

var (
	// Version is set via ldflags.
	Version = "dev"

	headless bool
	hidden   bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Pomodoro focus timer",
	Long: `pomodoro runs a 25 minute focus timer followed by a 5 minute break,
with a 15 minute break after every fourth focus session.

By default it opens a desktop window and a system tray menu. With --headless
it reads commands (start, pause, reset, skip, status, quit) from standard input.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run in the terminal without a window")
	rootCmd.Flags().BoolVar(&hidden, "hidden", false, "start with the timer window hidden in the tray")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pomodoro:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if headless {
		err = runHeadless(ctx, logger)
	} else {
		err = runDesktop(ctx, logger)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config = zap.NewDevelopmentConfig()
	}
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}
