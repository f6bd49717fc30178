package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/glenveagh/gardenledger/internal/config"
	"github.com/glenveagh/gardenledger/internal/events"
	"github.com/glenveagh/gardenledger/internal/ledger"
	"github.com/glenveagh/gardenledger/internal/logging"
)

// app bundles the wired components one CLI invocation works with.
type app struct {
	cfg     *config.Config
	bus     *events.Bus
	service *ledger.Service
	jsonOut bool
}

type appKey struct{}

// setupApp builds the config, logger, event bus, and ledger service for
// this invocation and stores them on the command's context.
func setupApp(cmd *cobra.Command) error {
	cfg := config.NewWithOverlay(config.ProjectConfigPath())

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}
	if loggingCfg.File != "" {
		if err := cfg.EnsureLogDir(); err != nil {
			cmd.PrintErrf("Warning: could not create log directory: %v\n", err)
		}
	}

	traceID := logging.GetOrGenerateTraceID(cmd.Context())

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	// Every log event in this invocation carries the same trace ID.
	base := result.Logger.With().Str("trace_id", traceID).Logger()
	logger = logging.ComponentLogger(base, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ledgerPath, _ := cmd.Flags().GetString("ledger")
	if ledgerPath == "" {
		var err error
		ledgerPath, err = cfg.DefaultLedgerPath()
		if err != nil {
			return err
		}
	}

	store, err := ledger.NewStore(ledgerPath, logging.ComponentLogger(base, "store"))
	if err != nil {
		return err
	}

	bus := events.NewBus(logging.ComponentLogger(base, "events"))
	service := ledger.NewService(store, bus, logging.ComponentLogger(base, "ledger"))

	// Every mutation is observable at debug level, whatever command made it.
	bus.Subscribe(events.TopicDataChanged, func(topic events.Topic, payload events.Payload) {
		logger.Debug().
			Str("topic", string(topic)).
			Str("practice_id", payload.PracticeID).
			Str("resource_kind", payload.ResourceKind).
			Float64("amount", payload.Amount).
			Msg("ledger changed")
	})

	jsonOut, _ := cmd.Flags().GetBool("json")

	ctx := logging.ContextWithTraceID(cmd.Context(), traceID)
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, appKey{}, &app{
		cfg:     cfg,
		bus:     bus,
		service: service,
		jsonOut: jsonOut || cfg.Output.Format == "json",
	})
	cmd.SetContext(ctx)
	return nil
}

// appFromCmd retrieves the invocation's wired components.
func appFromCmd(cmd *cobra.Command) *app {
	a, _ := cmd.Context().Value(appKey{}).(*app)
	return a
}
