package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agnivade/levenshtein"

	nexustack "github.com/1ean267/nexustack-sub001"
	"github.com/1ean267/nexustack-sub001/cmd/nexusdoc/commands"
	"github.com/1ean267/nexustack-sub001/internal/cliutil"
	"github.com/1ean267/nexustack-sub001/internal/mcpserver"
)

// commandNames lists the commands offered as suggestions.
var commandNames = []string{"document", "schema", "types", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	case "document":
		err = commands.HandleDocument(args, os.Stdout)
	case "schema":
		err = commands.HandleSchema(args, os.Stdout)
	case "types":
		err = commands.HandleTypes(args, os.Stdout)
	case "mcp":
		err = runMCP()
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMCP serves MCP over stdio until the client disconnects or the process
// receives an interrupt.
func runMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

func printVersion() {
	fmt.Printf("nexusdoc v%s\n", nexustack.Version())
	fmt.Printf("commit: %s\n", nexustack.Commit())
	fmt.Printf("built: %s\n", nexustack.BuildTime())
	fmt.Printf("go: %s\n", nexustack.GoVersion())
}

// suggestCommand returns the closest known command within an edit distance
// of two, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func printUsage() {
	fmt.Println(`nexusdoc - OpenAPI documents from schema descriptions

Usage:
  nexusdoc <command> [options]

Commands:
  document    Generate the pet store OpenAPI 3.0 or 3.1 document
  schema      Render one named type as a standalone schema
  types       List the named types of the catalog
  mcp         Serve the generators as MCP tools over stdio
  version     Show version information
  help        Show this help message

Examples:
  nexusdoc document -f yaml -o openapi.yaml
  nexusdoc document -version 3.0 -rename snake_case
  nexusdoc schema -inline Owner
  nexusdoc types -f json

Run 'nexusdoc <command> --help' for more information on a command.`)
}
