package cellrender

import (
	"fmt"
	"html"
	"html/template"
	"sync"

	"k8s.io/klog/v2"

	"github.com/ukaji3/cellrender-go/pkg/cellrender/fixlinks"
	"github.com/ukaji3/cellrender-go/pkg/cellrender/links"
	"github.com/ukaji3/cellrender-go/pkg/cellrender/models"
)

// builtinRenderers registers the renderers Options can enable by name.
var builtinRenderers = map[string]func(r *Registry, opts Options) error{
	links.Name: func(r *Registry, opts Options) error {
		var linkOpts []links.Option
		if opts.BaseURL != "" {
			rw, err := fixlinks.New(opts.BaseURL)
			if err != nil {
				return err
			}
			linkOpts = append(linkOpts, links.WithRewrite(rw.Rewrite))
		}
		return links.Register(r, linkOpts...)
	},
}

// Registry holds cell renderers in registration order. It is owned by the
// host, populated once at startup and safe for concurrent Render calls.
type Registry struct {
	mu    sync.RWMutex
	names []string
	fns   map[string]models.RenderFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]models.RenderFunc)}
}

// NewDefaultRegistry returns a registry with the renderers enabled by opts.
func NewDefaultRegistry(opts Options) (*Registry, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	r := NewRegistry()
	for _, name := range opts.EnabledRenderers() {
		if err := builtinRenderers[name](r, opts); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", name, err)
		}
	}
	return r, nil
}

// Register adds fn under name.
func (r *Registry) Register(name string, fn models.RenderFunc) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNilRenderer, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fns[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRenderer, name)
	}
	r.names = append(r.names, name)
	r.fns[name] = fn
	return nil
}

// Names returns the registered renderer names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Lookup returns the renderer registered under name.
func (r *Registry) Lookup(name string) (models.RenderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.fns[name]
	return fn, ok
}

// Render returns the output of the first renderer that applies to v, or the
// default rendering when none does.
func (r *Registry) Render(v models.CellValue) template.HTML {
	r.mu.RLock()
	names := append([]string(nil), r.names...)
	fns := make([]models.RenderFunc, len(names))
	for i, name := range names {
		fns[i] = r.fns[name]
	}
	r.mu.RUnlock()

	// renderers run unlocked so they may use the registry themselves
	for i, name := range names {
		if out, ok := tryRender(name, fns[i], v); ok {
			return out
		}
	}
	return DefaultRender(v)
}

// DefaultRender renders v as escaped plain text.
func DefaultRender(v models.CellValue) template.HTML {
	return template.HTML(html.EscapeString(v.String()))
}

// tryRender treats a panicking renderer as not applicable.
func tryRender(name string, fn models.RenderFunc, v models.CellValue) (out template.HTML, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			klog.Warningf("renderer %s panicked on %s value: %v", name, v.Kind(), p)
			out, ok = "", false
		}
	}()
	return fn(v)
}
