package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/antonrybalko/record-demo-go/internal/config"
	"github.com/antonrybalko/record-demo-go/internal/processor"
	"github.com/antonrybalko/record-demo-go/internal/service"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Version represents the application version
const Version = "0.1.0"

// Service represents the application
type Service struct {
	config   *config.Config
	logger   *zap.Logger
	sugar    *zap.SugaredLogger
	demo     *service.DemoService
	scenario service.Scenario
	errOut   io.Writer
}

// NewService creates a new application service from the given configuration
func NewService(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	sugar := logger.Sugar()

	// Build the scenario
	scenario, err := scenarioFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}

	// Initialize processor and demo service
	stringProcessor := processor.New()
	demo := service.NewDemoService(stringProcessor, sugar)

	return &Service{
		config:   cfg,
		logger:   logger,
		sugar:    sugar,
		demo:     demo,
		scenario: scenario,
		errOut:   os.Stderr,
	}, nil
}

// Run executes the demonstration and writes the report to w
func (s *Service) Run(ctx context.Context, w io.Writer) error {
	s.sugar.Infow("Starting record demo",
		"version", Version,
		"environment", s.config.Environment,
		"output", s.config.OutputFormat,
	)

	report, err := s.demo.Run(ctx, s.scenario)
	if err != nil {
		return fmt.Errorf("demo run failed: %w", err)
	}

	switch s.config.OutputFormat {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	default:
		if _, err := report.WriteTo(w); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	s.sugar.Infow("Record demo finished", "runID", report.RunID)
	return nil
}

// Cleanup performs cleanup tasks
func (s *Service) Cleanup() {
	// Sync logger
	if err := s.logger.Sync(); err != nil && !isStderrSyncError(err) {
		fmt.Fprintf(s.errOut, "Failed to sync logger: %v\n", err)
	}
}

// isStderrSyncError reports whether err is the EINVAL/ENOTTY returned when
// fsync is called on a terminal or pipe
func isStderrSyncError(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}

// newLogger builds the zap logger for the configured environment
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "test" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	return zapConfig.Build()
}

// scenarioFromConfig builds the demo inputs, loading items from file if set
func scenarioFromConfig(cfg *config.Config) (service.Scenario, error) {
	scenario := service.DefaultScenario()
	scenario.RecordName = cfg.RecordName
	scenario.RecordValue = cfg.RecordValue
	scenario.Increment = cfg.Increment
	scenario.FilterEmpty = cfg.FilterEmpty
	scenario.SearchTarget = cfg.SearchTarget

	if cfg.ItemsPath != "" {
		items, err := config.LoadItems(cfg.ItemsPath)
		if err != nil {
			return service.Scenario{}, err
		}
		scenario.Items = items
	}

	return scenario, nil
}
