// Package cmd implements the formkit CLI commands.
//
// The root command dispatches to subcommands (inspect, fill, replay, watch)
// that load a form definition, build its widgets and drive them.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/go-drift/formkit/cmd/formkit/internal/config"
	"github.com/go-drift/formkit/pkg/definition"
	"github.com/go-drift/formkit/pkg/errors"
	"github.com/go-drift/formkit/pkg/widgets"
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
	Name:  "formkit",
	Short: "formkit - form input widgets for Go",
	Long: `formkit loads declarative form definitions, builds their input widgets
and lets you inspect, fill in and replay interactions against them.

Use "formkit <command> --help" for more information about a command.`,
	Usage: "formkit <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// globals holds the flags shared by every command.
var globals struct {
	configPath string
	noColor    bool
	verbose    bool
	settings   *config.Resolved
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("formkit version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a file path")
			}
			globals.configPath = args[i+1]
			i++
		case "--no-color":
			globals.noColor = true
		case "--verbose":
			globals.verbose = true
		default:
			if strings.HasPrefix(arg, "--config=") {
				globals.configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
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

	if err := setup(); err != nil {
		return err
	}
	return cmd.Run(cmdArgs)
}

// setup loads the configuration and installs the error handler.
func setup() error {
	var (
		cfg *config.Config
		err error
	)
	if globals.configPath != "" {
		cfg, err = config.LoadFile(globals.configPath)
	} else {
		cfg, err = config.LoadOptional(".")
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	resolved, err := config.Resolve(cfg, Version)
	if err != nil {
		return err
	}
	if globals.noColor {
		resolved.Color = "never"
	}
	if globals.verbose {
		resolved.Verbose = true
	}
	globals.settings = resolved

	errors.SetHandler(&errors.LogHandler{Verbose: resolved.Verbose, Out: os.Stderr})
	return nil
}

// settings returns the resolved configuration, defaulting when setup has
// not run.
func settings() *config.Resolved {
	if globals.settings == nil {
		return &config.Resolved{Color: "auto"}
	}
	return globals.settings
}

// newOutput returns a styled writer honoring the color setting.
func newOutput(w io.Writer) *termenv.Output {
	switch settings().Color {
	case "never":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	case "always":
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256))
	default:
		return termenv.NewOutput(w)
	}
}

// loadForm reads a definition and builds it with opts. Unset debounce falls
// back to the configured one.
func loadForm(path string, opts widgets.Options) (*definition.Document, *widgets.Form, error) {
	doc, err := definition.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if opts.Debounce == 0 {
		opts.Debounce = settings().Debounce
	}
	form, err := definition.Build(doc, nil, opts)
	if err != nil {
		return nil, nil, err
	}
	return doc, form, nil
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --config FILE        Config file (default: ./formkit.yaml or ./formkit.toml)")
	fmt.Println("  --no-color           Disable colored output")
	fmt.Println("  --verbose            Log error details and stacks")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  formkit inspect signup.yaml        Show field values and validity")
	fmt.Println("  formkit fill signup.yaml           Fill in a form interactively")
	fmt.Println("  formkit replay signup.yaml s.yaml  Replay scripted input and print events")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
