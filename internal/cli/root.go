// Package cli is the terminal front-end of the prompt library. Every
// mutating command is routed through the view controller so the terminal
// and the HTTP popup share one set of rules.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"bullprompt-backend/config"
	"bullprompt-backend/internal/controller"
	"bullprompt-backend/internal/database"
	"bullprompt-backend/internal/services"
	"bullprompt-backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what a command needs once PersistentPreRunE has run.
type app struct {
	loadConfig func() (*config.Config, error)
	driver     string
	dbPath     string

	cfg     *config.Config
	backend database.Backend
	svc     *services.PromptService
	log     *zap.Logger
}

// Execute runs the root command against the process arguments.
func Execute() {
	if err := NewRootCmd(config.LoadConfig).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. loadConfig supplies the configuration
// for every subcommand.
func NewRootCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	a := &app{loadConfig: loadConfig}

	root := &cobra.Command{
		Use:          "bullprompt",
		Short:        "A small library of reusable prompts",
		Long:         `Store, tag, search and copy prompt snippets from the terminal or a browser popup.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// help and completion need no storage
			if cmd.RunE == nil {
				return nil
			}
			return a.open(cmd.Context(), cmd.Name() != "serve")
		},
	}

	root.PersistentFlags().StringVar(&a.driver, "driver", "", "storage driver: memory, sqlite or redis (overrides STORAGE_DRIVER)")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "sqlite database path (overrides DB_PATH)")

	root.AddCommand(
		newServeCmd(a),
		newListCmd(a),
		newTagsCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newRmCmd(a),
		newCopyCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)
	return root
}

func (a *app) open(ctx context.Context, quiet bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.driver != "" {
		cfg.StorageDriver = a.driver
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.LogFilename != "" {
		if err := logger.InitLogger(&logger.Config{
			Level:      cfg.LogLevel,
			Filename:   cfg.LogFilename,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
			Compress:   cfg.LogCompress,
			Quiet:      quiet,
		}); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
	}
	a.log = logger.Log

	backend, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err)
	}

	a.cfg = cfg
	a.backend = backend
	a.svc = services.NewPromptService(backend,
		services.WithStorageKey(cfg.StorageKey),
		services.WithLogger(a.log),
	)
	a.log.Debug("storage opened", zap.String("driver", cfg.StorageDriver))
	return nil
}

// runE closes storage after fn, whether or not fn succeeded.
func (a *app) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := a.close(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd, args)
	}
}

func (a *app) close() error {
	defer logger.Sync()
	if a.backend == nil {
		return nil
	}
	err := a.backend.Close()
	a.backend = nil
	return err
}

// controller returns a loaded controller for a one-shot command. The CLI
// process exits right after, so notifications never auto-dismiss.
func (a *app) controller(ctx context.Context, opts ...controller.Option) (*controller.Controller, controller.View, error) {
	opts = append([]controller.Option{
		controller.WithNotifyTimeout(0),
		controller.WithLogger(a.log),
	}, opts...)
	c := controller.New(a.svc, opts...)
	v, err := c.Dispatch(ctx, controller.Load())
	return c, v, err
}

// report prints the current notification, if any, to w.
func report(w io.Writer, v controller.View) {
	if v.Notification != nil && v.Notification.Kind == controller.NotificationSuccess {
		fmt.Fprintln(w, v.Notification.Message)
	}
}
