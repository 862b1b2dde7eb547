package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zoobzio/capitan"

	"github.com/go-drift/statehooks/pkg/config"
	"github.com/go-drift/statehooks/pkg/hooks"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Follow configuration and hook events",
		Long: `Apply hooks.yaml and re-apply it whenever it changes, printing the
resolved settings and every hook event emitted in this process.

Stop with Ctrl+C.`,
		Usage: "hooks watch [dir]",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	root, err := projectDir(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	traceHookEvents()
	defer capitan.Shutdown()

	updates, err := config.Watch(ctx, root)
	if err != nil {
		return err
	}
	for cfg := range updates {
		fmt.Fprintf(stdout, "[CONFIG] debug=%v verbose=%v events=%v\n", cfg.Debug, cfg.VerboseErrors, cfg.Events)
	}
	return nil
}

func traceHookEvents() {
	capitan.Hook(hooks.ControllableChanged, func(_ context.Context, e *capitan.Event) {
		id, _ := hooks.KeyHookID.From(e)
		fmt.Fprintf(stdout, "[CHANGED] %s\n", id)
	})

	capitan.Hook(hooks.EditableStatusChanged, func(_ context.Context, e *capitan.Event) {
		id, _ := hooks.KeyHookID.From(e)
		from, _ := hooks.KeyOldStatus.From(e)
		to, _ := hooks.KeyNewStatus.From(e)
		fmt.Fprintf(stdout, "[STATUS] %s %s -> %s\n", id, from, to)
	})

	capitan.Hook(hooks.LateInitialized, func(_ context.Context, e *capitan.Event) {
		id, _ := hooks.KeyHookID.From(e)
		kind, _ := hooks.KeyHookKind.From(e)
		fmt.Fprintf(stdout, "[INIT] %s %s\n", kind, id)
	})

	capitan.Hook(hooks.LateInitializationFailed, func(_ context.Context, e *capitan.Event) {
		id, _ := hooks.KeyHookID.From(e)
		msg, _ := hooks.KeyError.From(e)
		fmt.Fprintf(stdout, "[FAILED] %s: %s\n", id, msg)
	})
}
