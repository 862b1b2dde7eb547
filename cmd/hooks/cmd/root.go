// Package cmd implements the hooks CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (status, watch).
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/statehooks/pkg/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "hooks",
	Short: "Inspect state hook diagnostics",
	Long: `hooks reports how the optional hooks.yaml of a project resolves and
can follow it live, printing every hook event while the file changes.

Use "hooks <command> --help" for more information about a command.`,
	Usage: "hooks <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout is where commands write their output.
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(stdout, "hooks version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}

// projectDir returns args[0] when given, otherwise the enclosing module root.
func projectDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return config.FindProjectRoot()
}
