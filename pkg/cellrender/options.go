// Package cellrender renders stored table cells as HTML through an explicit
// registry of cell renderers.
package cellrender

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/cellrender-go/pkg/cellrender/fixlinks"
	"github.com/ukaji3/cellrender-go/pkg/cellrender/links"
)

// Options configures rendering.
type Options struct {
	// Sheets restricts rendering to the named sheets. Empty means all sheets.
	Sheets []string `yaml:"sheets"`
	// BaseURL, when set, moves local-origin link hrefs onto this URL.
	BaseURL string `yaml:"base_url"`
	// IncludePrintAreas clips each sheet to its print areas.
	// If nil, defaults to false.
	IncludePrintAreas *bool `yaml:"print_areas"`
	// Renderers lists enabled renderer names in the order they are tried.
	// If empty, defaults to the link renderer.
	Renderers []string `yaml:"renderers"`
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Renderers: []string{links.Name},
	}
}

// LoadOptions reads options from a YAML file on top of DefaultOptions.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return opts, opts.Validate()
}

// ShouldIncludePrintAreas returns whether to clip sheets to print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return false
}

// EnabledRenderers returns the renderer names to register, in order.
func (o Options) EnabledRenderers() []string {
	if len(o.Renderers) == 0 {
		return []string{links.Name}
	}
	return o.Renderers
}

// Validate checks the options for values rendering cannot use.
func (o Options) Validate() error {
	if o.BaseURL != "" {
		if _, err := fixlinks.New(o.BaseURL); err != nil {
			return err
		}
	}
	for _, name := range o.EnabledRenderers() {
		if _, ok := builtinRenderers[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownRenderer, name)
		}
	}
	return nil
}
