package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sharedprint/core/config"
	"sharedprint/core/logger"
	"sharedprint/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session carries what every command needs for one run.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
}

func newSession() (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if debugMode {
		cfg.Log.Level = "debug"
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &session{cfg: cfg, logger: logger.WithRunID(l)}, nil
}

// connectStorage creates the object storage client if any path needs it.
func (s *session) connectStorage(paths ...string) error {
	if s.client != nil {
		return nil
	}
	for _, p := range paths {
		if !storage.IsRemote(p) {
			continue
		}
		client, err := storage.NewClient(s.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		s.client = client
		return nil
	}
	return nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// commandContext is cancelled on SIGINT or SIGTERM.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
