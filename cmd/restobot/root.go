package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/edgard/restobot/internal/app"
	"github.com/edgard/restobot/internal/config"
	"github.com/edgard/restobot/internal/logger"
)

// runtime carries what PersistentPreRunE loaded to the subcommands.
type runtime struct {
	configPath string
	envFile    string
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:           "restobot",
		Short:         "Telegram bot gateway for restaurants",
		Long:          "Provisions per-restaurant Telegram bots, receives their webhooks, publishes news and authenticates Mini App users.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return rt.load()
		},
	}
	root.PersistentFlags().StringVar(&rt.configPath, "config", "", "Path to configuration file (default ./config.yaml)")
	root.PersistentFlags().StringVar(&rt.envFile, "env-file", ".env", "Dotenv file loaded before reading configuration")

	root.AddCommand(
		newServeCmd(rt),
		newMigrateCmd(rt),
		newTenantCmd(rt),
		newNewsCmd(rt),
	)
	return root
}

func (rt *runtime) load() error {
	if rt.envFile != "" {
		if err := godotenv.Load(rt.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", rt.envFile, err)
		}
	}

	cfg, err := config.Load(rt.configPath)
	if err != nil {
		return err
	}
	rt.cfg = cfg
	rt.log = logger.New(logger.Options{
		Level:      cfg.Logger.Level,
		JSON:       cfg.Logger.JSON,
		File:       cfg.Logger.File,
		MaxSizeMB:  cfg.Logger.MaxSizeMB,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAgeDays: cfg.Logger.MaxAgeDays,
	})
	rt.log.Debug("Configuration loaded", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)
	return nil
}

// withApp builds the components, runs fn and releases them.
func (rt *runtime) withApp(fn func(a *app.App) error) error {
	a, err := app.New(rt.cfg, rt.log)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
