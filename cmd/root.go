package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kilianp07/evtrip/config"
	coremon "github.com/kilianp07/evtrip/core/monitoring"
	"github.com/kilianp07/evtrip/infra/logger"
	"github.com/kilianp07/evtrip/infra/monitoring"
)

var (
	cfgPath string
	envFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:               "evtrip",
	Short:             "Electric vehicle trip time over cruising speed",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the configuration")
}

// Execute runs the CLI.
func Execute() error {
	defer coremon.Flush(2 * time.Second)
	err := rootCmd.Execute()
	if err != nil {
		coremon.CaptureException(err, map[string]string{"component": "cli"})
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c
	logger.SetLevel(cfg.Logging.Level)
	if f := cfg.Logging.File; f != "" {
		w, err := logger.NewRotatingFile(f, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(w)
	}

	mon, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		logger.New("main").Warnf("sentry disabled: %v", err)
		return nil
	}
	coremon.Init(mon)
	return nil
}
