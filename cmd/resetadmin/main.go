package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gamenight-admin/internal/auth"
	"gamenight-admin/internal/config"
	"gamenight-admin/internal/database"
	apperrors "gamenight-admin/internal/errors"
	"gamenight-admin/internal/logging"
	"gamenight-admin/internal/metrics"
)

const (
	// defaultPassword is used when no argument is supplied.
	defaultPassword = "admin"
	// runTimeout bounds one complete reset.
	runTimeout = 30 * time.Second
)

func main() {
	// Zero or one positional argument; a single argument is always taken
	// as the password, never as a flag.
	password := defaultPassword
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	logger := logging.FromEnv()
	defer func() { _ = logger.Sync() }()

	metrics.InitializeMetrics()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
	}()

	baseDir, err := config.BaseDir()
	if err != nil {
		fail(logger, err)
	}

	if err := run(ctx, logger, baseDir, password, os.Stdout); err != nil {
		fail(logger, err)
	}
}

// run performs one password reset against the database resolved from baseDir.
func run(ctx context.Context, logger *zap.Logger, baseDir, password string, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	fmt.Fprintf(out, "Resetting admin password to '%s'...\n", password)

	cfg, err := config.Load(baseDir)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		zap.String("base_dir", cfg.BaseDir),
		zap.String("database_url", cfg.DatabaseURL),
	)

	fmt.Fprintf(out, "Using database at: %s\n", cfg.DatabasePath)

	db, err := database.New(ctx, cfg.DatabasePath, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warn("failed to close database", zap.Error(closeErr))
		}
	}()

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Generated password hash: %s\n", hash)

	created, err := db.SetAdminPassword(ctx, hash)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintln(out, "Admin user created successfully")
	} else {
		fmt.Fprintln(out, "Admin password updated successfully")
	}

	// Echoing the plaintext is deliberate; see the package documentation.
	fmt.Fprintln(out)
	fmt.Fprintln(out, "You can now log in with:")
	fmt.Fprintf(out, "Username: %s\n", database.AdminUsername)
	fmt.Fprintf(out, "Password: %s\n", password)

	return nil
}

// fail reports a failure to the operator and exits non-zero. The message
// and hint go to standard output, matching where the progress lines went.
func fail(logger *zap.Logger, err error) {
	logger.Error("admin password reset failed", zap.Error(err))

	fmt.Printf("Error: %v\n", err)
	fmt.Println()
	fmt.Println(apperrors.Hint(apperrors.GetCode(err)))
	os.Exit(1)
}
