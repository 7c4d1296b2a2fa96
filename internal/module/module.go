// Package module holds the value a prompt segment hands back to the prompt:
// a named, styled list of text fragments.
package module

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Style describes how every segment of a Module is drawn. Color is any value
// lipgloss.Color accepts: an ANSI index ("4") or a hex code ("#4F5B93").
type Style struct {
	Color string `yaml:"color,omitempty"`
	Bold  bool   `yaml:"bold"`
}

// A Segment is one named fragment of text within a Module.
type Segment struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// A Module is a named unit of prompt output composed of ordered segments.
type Module struct {
	Name     string    `yaml:"name"`
	Style    Style     `yaml:"style"`
	Segments []Segment `yaml:"segments"`
}

// New creates an empty Module with the given name.
func New(name string) *Module {
	return &Module{Name: name, Segments: []Segment{}}
}

// SetStyle replaces the style applied to the module's segments.
func (m *Module) SetStyle(style Style) {
	m.Style = style
}

// NewSegment appends a segment to the module.
func (m *Module) NewSegment(name, value string) {
	m.Segments = append(m.Segments, Segment{Name: name, Value: value})
}

// Segment returns the first segment with the given name.
func (m *Module) Segment(name string) (Segment, bool) {
	for _, s := range m.Segments {
		if s.Name == name {
			return s, true
		}
	}
	return Segment{}, false
}

// String returns the segment values joined in order, without any styling.
func (m *Module) String() string {
	var b strings.Builder
	for _, s := range m.Segments {
		b.WriteString(s.Value)
	}
	return b.String()
}

// Render returns the module's text styled for the terminal described by r.
// Styling is dropped entirely when r has no color profile.
func (m *Module) Render(r *lipgloss.Renderer) string {
	style := r.NewStyle().Bold(m.Style.Bold)
	if m.Style.Color != "" {
		style = style.Foreground(lipgloss.Color(m.Style.Color))
	}
	return style.Render(m.String())
}

// MarshalYAML serializes the module into a YAML document.
func (m *Module) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(*m)
}
