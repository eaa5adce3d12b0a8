package main

import (
	"fmt"
	"os"

	apppkg "fex/internal/app"
	"github.com/gdamore/tcell/v2"
)

func printHelp() {
	fmt.Print(`fex - Interactive terminal file browser

USAGE:
    fex [OPTIONS] [PATH]

ARGS:
    PATH                  Starting directory (defaults to current directory)

OPTIONS:
    -a, --all             Show hidden files
    -h, --help            Show this help message and exit
`)
}

func parseArgs(args []string) (apppkg.Config, bool, error) {
	var cfg apppkg.Config
	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			return cfg, true, nil
		case arg == "-a" || arg == "--all":
			cfg.ShowHidden = true
		case len(arg) > 1 && arg[0] == '-':
			return cfg, false, fmt.Errorf("unknown option: %s", arg)
		case cfg.StartPath == "":
			cfg.StartPath = arg
		default:
			return cfg, false, fmt.Errorf("unexpected argument: %s", arg)
		}
	}
	return cfg, false, nil
}

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII file names render on
	// terminals with unhelpful locale settings.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	cfg, showHelp, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if showHelp {
		printHelp()
		os.Exit(0)
	}

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}

	runErr := app.Run()
	_ = app.Close()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
