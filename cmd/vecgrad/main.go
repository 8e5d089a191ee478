// Package main provides the vecgrad CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute dispatches a command and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "vecgrad %s\n", version)
		return 0
	case "run":
		return runCommand(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func runCommand(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML file with x, y, seed and policy")
	policy := fs.String("policy", "", "gradient policy: accumulate or overwrite")
	verbose := fs.Bool("v", false, "log every propagation step")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if *policy != "" {
		cfg.Policy = *policy
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := run(stdout, cfg, logger); err != nil {
		logger.Error("run failed", "error", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "vecgrad - reverse-mode gradients over numeric arrays")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  run        Evaluate the demo expression and print its gradients")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run flags:")
	fmt.Fprintln(w, "  -config string   YAML file with x, y, seed and policy")
	fmt.Fprintln(w, "  -policy string   accumulate (default) or overwrite")
	fmt.Fprintln(w, "  -v               debug logging")
}
