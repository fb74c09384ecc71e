package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/linkpage/internal/infrastructure/container"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// A positional document argument wins over LINKPAGE_DOCUMENT and the config file.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := slog.Default()

		c, err := container.New(container.Options{
			SystemConfigPath: cfgFile,
			Logger:           logger,
			Overrides:        overridesFrom(args),
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		runCtx := cmd.Context()
		if runCtx == nil {
			runCtx = context.Background()
		}

		ctx := &CommandContext{
			Container: c,
			Logger:    logger,
			Context:   runCtx,
		}

		return handler(ctx, cmd, args)
	}
}

func overridesFrom(args []string) container.Overrides {
	o := container.Overrides{
		Document:      viper.GetString(keyDocument),
		APIBase:       viper.GetString(keyAPIBase),
		FallbackBase:  viper.GetString(keyFallbackBase),
		ServerAddr:    viper.GetString(keyServerAddr),
		RenderTimeout: viper.GetString(keyRenderTimeout),
	}
	if len(args) > 0 && args[0] != "" {
		o.Document = args[0]
	}
	return o
}
