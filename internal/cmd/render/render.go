package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/buildpulse/php-segment/internal/config"
	"github.com/buildpulse/php-segment/internal/logger"
	"github.com/buildpulse/php-segment/internal/metadata"
	"github.com/buildpulse/php-segment/internal/php"
	"github.com/buildpulse/php-segment/internal/scan"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

// Output formats accepted by the --format flag.
const (
	FormatANSI = "ansi"
	FormatYAML = "yaml"
)

// Color modes accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Render represents the task of printing the PHP segment for a directory.
type Render struct {
	fs      *pflag.FlagSet
	logger  logger.Logger
	version *metadata.Version
	runner  php.Runner
	out     *os.File

	dir        string
	format     string
	color      string
	configPath string
	debug      bool
	config     *config.Config
}

// NewRender creates a new Render instance.
func NewRender(version *metadata.Version, log logger.Logger) *Render {
	r := &Render{
		fs:      pflag.NewFlagSet("render", pflag.ContinueOnError),
		logger:  log,
		version: version,
		runner:  new(php.ExecRunner),
		out:     os.Stdout,
	}

	r.fs.StringVar(&r.dir, "dir", ".", "Directory to inspect")
	r.fs.StringVar(&r.format, "format", FormatANSI, "Output format (ansi, yaml)")
	r.fs.StringVar(&r.color, "color", ColorAuto, "When to emit ANSI colors (auto, always, never)")
	r.fs.StringVar(&r.configPath, "config", "", "Path to a YAML config file")
	r.fs.BoolVar(&r.debug, "debug", false, "Print the debug log to STDERR")
	r.fs.SetOutput(io.Discard) // Disable automatic writing to STDERR

	r.logger.Printf("Current version: %s", strings.TrimSpace(r.version.String()))
	r.logger.Println("Initiating `render`")

	return r
}

// Init populates r from args and envs. It returns an error if the args are
// malformed or the config cannot be loaded.
func (r *Render) Init(args []string, envs map[string]string) error {
	r.logger.Printf("Received args: %s", strings.Join(args, " "))

	if err := r.fs.Parse(args); err != nil {
		return err
	}

	if r.fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", r.fs.Arg(0))
	}

	switch r.format {
	case FormatANSI, FormatYAML:
	default:
		return fmt.Errorf("invalid value \"%s\" for flag --format: should be one of %s, %s", r.format, FormatANSI, FormatYAML)
	}

	switch r.color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid value \"%s\" for flag --color: should be one of %s, %s, %s", r.color, ColorAuto, ColorAlways, ColorNever)
	}

	info, err := os.Stat(r.dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("invalid value for flag --dir: %s is not a directory", r.dir)
	}

	dir, err := filepath.Abs(r.dir)
	if err != nil {
		return err
	}
	r.dir = dir
	r.logger.Printf("Using directory: %s", r.dir)

	if r.configPath != "" {
		r.logger.Printf("Loading config from %s", r.configPath)
	}
	r.config, err = config.Load(r.configPath, envs)
	if err != nil {
		return err
	}

	return nil
}

// Debug reports whether the --debug flag was given.
func (r *Render) Debug() bool {
	return r.debug
}

// Run builds the PHP segment and returns the text to print. The result is
// empty, with a nil error, whenever there is no segment to show.
func (r *Render) Run(ctx context.Context) (string, error) {
	s := php.NewSegment(r.config, php.NewVersionQuery(r.runner), r.logger)
	m, ok := s.Build(ctx, scan.NewDir(r.dir, r.logger))
	if !ok {
		return "", nil
	}

	switch r.format {
	case FormatYAML:
		yaml, err := m.MarshalYAML()
		if err != nil {
			return "", err
		}
		return string(yaml), nil
	default:
		return m.Render(r.renderer()), nil
	}
}

// renderer returns a lipgloss renderer for r.out honoring the --color flag.
func (r *Render) renderer() *lipgloss.Renderer {
	lr := lipgloss.NewRenderer(r.out)

	switch r.color {
	case ColorAlways:
		lr.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(r.out) {
			r.logger.Printf("Output is not a terminal; disabling colors")
			lr.SetColorProfile(termenv.Ascii)
		}
	}

	return lr
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
