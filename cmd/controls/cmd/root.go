// Package cmd implements the controls CLI commands.
//
// A root command dispatches to subcommands (preview, theme). Global flags
// select a theme file and verbose error reporting.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/uicontrols/pkg/errors"
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
	Name:  "controls",
	Short: "controls - page indicator and floating label field previews",
	Long: `controls renders the page indicator and floating label field to PNG
so themes can be checked without a device.

Use "controls <command> --help" for more information about a command.`,
	Usage: "controls <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// themeOverride is the --theme flag, taking precedence over controls.yaml.
var themeOverride string

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	themeOverride = ""

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
				fmt.Printf("controls version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		case "--theme":
			if i+1 >= len(args) {
				return fmt.Errorf("--theme requires a file path")
			}
			themeOverride = args[i+1]
			i++
		default:
			if v, ok := strings.CutPrefix(arg, "--theme="); ok {
				themeOverride = v
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

	return cmd.Run(cmdArgs)
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
	fmt.Println("  --theme FILE         Theme YAML (default: controls.yaml theme, then built-in)")
	fmt.Println("  --verbose            Print stack traces with reported errors")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  controls preview indicator --progress 0.3     Render dots between pages 1 and 2")
	fmt.Println("  controls preview field --text secret --secure  Render a masked field")
	fmt.Println("  controls theme                                Print the resolved theme")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
