// Package main demonstrates broadcasting one shared error to many consumers.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/next-trace/scg-shared-error/failure"
	"github.com/next-trace/scg-shared-error/shared"
)

// connError cannot be copied safely; it is only ever used through a pointer.
type connError struct {
	mu   sync.Mutex
	addr string
}

func (e *connError) Error() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fmt.Sprintf("connection to %s reset by peer", e.addr)
}

var (
	consumers int
	backtrace bool
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "broadcast",
	Short: "Broadcast one shared error to several consumers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if consumers < 1 {
			return fmt.Errorf("--consumers must be at least 1, got %d", consumers)
		}

		logger, err := newConsoleLogger(debug)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		broadcast(logger, consumers, backtrace)

		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&consumers, "consumers", 4, "Number of consumer goroutines")
	rootCmd.Flags().BoolVar(&backtrace, "backtrace", false, "Capture a backtrace when the error is wrapped")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func broadcast(logger *zap.Logger, n int, withBacktrace bool) {
	src := &connError{addr: "10.0.0.7:5432"}
	origin := shared.New(src, failure.WithBacktrace(withBacktrace))

	var wg sync.WaitGroup

	inboxes := make([]chan shared.Error, n)
	for i := range inboxes {
		inbox := make(chan shared.Error, 1)
		inboxes[i] = inbox

		wg.Add(1)

		go func() {
			defer wg.Done()

			err := <-inbox
			if ce, ok := shared.Downcast[*connError](err); ok {
				logger.Debug("recovered concrete error", zap.Int("consumer", i), zap.String("addr", ce.addr))
			}

			logger.Error("consumer received failure", zap.Int("consumer", i), zap.Object("error", err))
		}()
	}

	for _, inbox := range inboxes {
		inbox <- origin.Clone()
	}

	wg.Wait()

	fmt.Println(failure.DebugString(origin))
}

// newConsoleLogger returns a human-friendly console logger.
// If debug is true, the level is Debug; otherwise Error.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"

	level := zap.ErrorLevel
	if debug {
		level = zap.DebugLevel
	}

	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	return cfg.Build()
}
