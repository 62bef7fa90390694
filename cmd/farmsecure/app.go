package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/farmsecure/farmsecure/internal/platform"
	"github.com/farmsecure/farmsecure/pkg/config"
	"github.com/farmsecure/farmsecure/pkg/dashboard"
	"github.com/farmsecure/farmsecure/pkg/i18n"
	"github.com/farmsecure/farmsecure/pkg/profile"
	"github.com/farmsecure/farmsecure/pkg/scoring"
	"github.com/farmsecure/farmsecure/pkg/surface"
)

// app holds state shared by all subcommands for one invocation.
type app struct {
	// global flags
	configPath  string
	verbose     bool
	logFormat   string
	metricsFile string

	now func() time.Time

	cfg     *config.Config
	logger  *zap.Logger
	metrics *platform.Metrics
}

// setup loads configuration and builds the logger and metrics.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path := a.configPath
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	} else if wd, err := os.Getwd(); err == nil {
		path = config.FindConfigFile(wd)
	}

	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	a.cfg = cfg

	logger, err := platform.NewLogger(platform.LogConfig{
		Level:   cfg.Logging.Level,
		Format:  firstNonEmpty(a.logFormat, cfg.Logging.Format),
		Verbose: a.verbose,
		Output:  zapcore.AddSync(cmd.ErrOrStderr()),
	})
	if err != nil {
		return err
	}
	a.logger = logger
	a.metrics = platform.NewMetrics()

	if path != "" {
		a.logger.Debug("loaded config", zap.String("path", path))
	}
	return nil
}

// teardown writes the metrics file when requested and flushes the logger.
func (a *app) teardown() error {
	if a.metricsFile != "" && a.metrics != nil {
		if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
			return err
		}
		a.logger.Debug("wrote metrics", zap.String("path", a.metricsFile))
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}

func (a *app) engine() (*scoring.Engine, error) {
	opts, err := a.cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, scoring.WithLogger(a.logger), scoring.WithClock(a.now))
	return scoring.NewEngine(opts...), nil
}

// assess scores one profile and records the outcome in the metrics.
func (a *app) assess(e *scoring.Engine, p scoring.Profile) (*scoring.Assessment, error) {
	result, err := e.AssessProfile(p)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidFactors) {
			a.metrics.ObserveRejected()
		}
		return nil, err
	}
	a.metrics.ObserveAssessment(result)
	return result, nil
}

func (a *app) language(flag string) (i18n.Language, error) {
	return i18n.ParseLanguage(firstNonEmpty(flag, a.cfg.Display.Language))
}

func (a *app) outputFormat(flag string) string {
	return firstNonEmpty(flag, a.cfg.Display.Output, surface.FormatText)
}

// dataset loads the dataset at path, or the built-in one when path is empty.
func (a *app) dataset(path string) (*dashboard.Dataset, error) {
	if path == "" {
		return profile.DefaultDataset()
	}
	ds, err := profile.LoadDataset(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded dataset", zap.String("path", path), zap.String("farm", ds.Farm))
	return ds, nil
}

// firstNonEmpty returns the first non-empty string from the arguments.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
