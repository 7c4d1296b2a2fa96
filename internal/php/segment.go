package php

import (
	"context"

	"github.com/buildpulse/php-segment/internal/config"
	"github.com/buildpulse/php-segment/internal/module"
)

// Name identifies the module produced by a Segment.
const Name = "php"

// A Logger represents a mechanism for logging. 🙃
type Logger interface {
	Printf(format string, v ...interface{})
}

// Segment builds the PHP prompt module.
type Segment struct {
	config *config.Config
	query  VersionQuery
	logger Logger
}

// NewSegment creates a new Segment. The query is only invoked for directories
// that look like PHP projects.
func NewSegment(cfg *config.Config, query VersionQuery, logger Logger) *Segment {
	return &Segment{config: cfg, query: query, logger: logger}
}

// Build returns the module to display for the directory behind probe. It
// returns false, and nothing should be displayed, when the segment is
// disabled, the directory is not a PHP project, or the PHP version cannot be
// determined.
func (s *Segment) Build(ctx context.Context, probe Probe) (*module.Module, bool) {
	if s.config.Disabled {
		s.logger.Printf("Segment %q is disabled", Name)
		return nil, false
	}

	if !IsProject(probe) {
		s.logger.Printf("Not a PHP project; skipping `php -v`")
		return nil, false
	}

	raw, ok := s.query(ctx)
	if !ok {
		s.logger.Printf("Unable to run `php -v`")
		return nil, false
	}

	version, ok := FormatVersion(raw)
	if !ok {
		s.logger.Printf("Unrecognized `php -v` output: %q", raw)
		return nil, false
	}
	s.logger.Printf("Detected PHP %s", version)

	m := module.New(Name)
	m.SetStyle(module.Style{Color: s.config.Color, Bold: s.config.Bold})
	m.NewSegment("symbot", s.config.Symbol)
	m.NewSegment("version", version)

	return m, true
}
