package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/buildpulse/php-segment/internal/cmd/render"
	"github.com/buildpulse/php-segment/internal/logger"
	"github.com/buildpulse/php-segment/internal/metadata"
	"github.com/spf13/pflag"
)

// set at buildtime via ldflags
var (
	Version = "development"
	Commit  = "unknown"
)

var usage = strings.ReplaceAll(`
Prints the PHP version of the current project for use in a shell prompt

USAGE
	$ %s render [--dir DIR] [--format FORMAT] [--color WHEN] [--config FILE] [--debug]

FLAGS
  --dir       Directory to inspect (default: ".")
  --format    Output format: ansi or yaml (default: "ansi")
  --color     When to emit ANSI colors: auto, always, or never (default: "auto")
  --config    Path to a YAML config file
  --debug     Print the debug log to STDERR

ENVIRONMENT VARIABLES
	The following environment variables override the config file:

	PHP_SEGMENT_DISABLED  Set to true to never show the segment

	PHP_SEGMENT_SYMBOL    Text shown before the version (default: "🐘 ")

	PHP_SEGMENT_COLOR     ANSI color index or hex code (default: "4")

	PHP_SEGMENT_BOLD      Set to false to drop the bold style

EXAMPLE
	$ PS1='$(%s render --color always) \$ '
`, "\t", "  ")

func main() {
	help := pflag.Bool("help", false, "")
	version := pflag.Bool("version", false, "")
	pflag.Usage = func() {
		binaryName := os.Args[0]
		fmt.Fprintf(pflag.CommandLine.Output(), usage, binaryName, binaryName)
	}
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	// if no cmd entered then exit
	if len(os.Args) == 1 {
		pflag.Usage()
		os.Exit(1)
	}

	switch {
	case *help || os.Args[1] == "help":
		pflag.Usage()
	case *version || os.Args[1] == "version":
		fmt.Print(getVersion().String())
	case os.Args[1] == "render":
		log := logger.New()
		c := render.NewRender(getVersion(), log)
		envs := toMap(os.Environ())

		// validate args + env vars
		if err := c.Init(os.Args[2:], envs); err != nil {
			fmt.Fprintf(os.Stderr, "\n%s\n\nSee more help with --help\n", err)
			os.Exit(1)
		}

		out, err := c.Run(context.Background())
		if c.Debug() {
			fmt.Fprint(os.Stderr, log.Text())
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(out)
	default:
		pflag.Usage()
		os.Exit(1)
	}

	os.Exit(0)
}

func toMap(pairs []string) map[string]string {
	m := map[string]string{}
	for _, s := range pairs {
		pair := strings.SplitN(s, "=", 2)
		if len(pair) != 2 {
			continue
		}
		m[pair[0]] = pair[1]
	}
	return m
}

func getVersion() *metadata.Version {
	return metadata.NewVersion(Version, Commit)
}
