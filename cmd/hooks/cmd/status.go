package cmd

import (
	"fmt"

	"github.com/go-drift/statehooks/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show resolved configuration",
		Long: `Show how hooks.yaml resolves for the project.

Without a directory the enclosing Go module is used. Missing settings
fall back to their defaults: debug off, terse error logs, events on.`,
		Usage: "hooks status [dir]",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := projectDir(args)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Project: %s (%s)\n", cfg.AppName, cfg.ModulePath)
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  %-16s %v\n", "debug:", cfg.Debug)
	fmt.Fprintf(stdout, "  %-16s %v\n", "errors.verbose:", cfg.VerboseErrors)
	fmt.Fprintf(stdout, "  %-16s %v\n", "events.enabled:", cfg.Events)
	return nil
}
