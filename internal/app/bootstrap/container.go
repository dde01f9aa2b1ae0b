package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"go-arrays/internal/app/config"
	"go-arrays/internal/demo"
	"go-arrays/internal/shared/logger"
	"go-arrays/internal/shared/metrics"
	"go-arrays/internal/utils"
)

// Container holds all application dependencies
type Container struct {
	// Configuration and Infrastructure
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.Metrics
	RunID   string

	// Demo execution
	Runner *demo.Runner
}

// ContainerOptions defines configuration options for the container
type ContainerOptions struct {
	ConfigPath string

	// Output receives demo output. Defaults to os.Stdout.
	Output io.Writer

	// LogOutput receives console logs. Defaults to os.Stderr.
	LogOutput io.Writer
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts ContainerOptions) (*Container, error) {
	container := &Container{
		RunID: utils.GenerateRunID(),
	}

	// Load configuration first
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	container.Config = cfg

	// Initialize logger
	appLogger, err := logger.New(logger.Options{
		Environment: cfg.Environment,
		Level:       cfg.LogLevel,
		Dir:         cfg.LogDir,
		Console:     opts.LogOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	container.Logger = appLogger.With(zap.String("run_id", container.RunID))

	// Initialize metrics (if enabled)
	if cfg.MetricsEnabled {
		container.Metrics = metrics.New(container.Logger)
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	container.Runner = demo.NewRunner(output, container.Logger, container.Metrics)

	container.Logger.Debug("Container initialized",
		zap.String("environment", cfg.Environment),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled))

	return container, nil
}

// Close flushes metrics and logs
func (c *Container) Close() error {
	var errs []error

	if c.Metrics != nil && c.Config.MetricsTextfile != "" {
		if err := c.Metrics.WriteTextfile(c.Config.MetricsTextfile); err != nil {
			c.Logger.Error("Failed to write metrics", zap.Error(err))
			errs = append(errs, err)
		}
	}

	// Sync on a terminal stderr commonly fails with EINVAL; not worth reporting
	_ = c.Logger.Sync()

	return errors.Join(errs...)
}
