// Package links renders {"href": ..., "label": ...} text cells as hyperlinks.
//
// A cell activates the renderer when its stored text is a JSON object with
// exactly the keys href and label, for example
//
//	{"href": "/items/42", "label": "Item 42"}
//
// and href starts with "/", "http://" or "https://". Every other value is
// declined so that the host falls back to its default rendering.
package links

import (
	"encoding/json"
	"html"
	"html/template"
	"strings"

	"github.com/ukaji3/cellrender-go/pkg/cellrender/models"
)

// Name is the registry name of the link renderer.
const Name = "html_links"

// emptyLabel keeps a link with an empty label clickable.
const emptyLabel = "&nbsp;"

var allowedPrefixes = []string{"/", "http://", "https://"}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRewrite applies fn to every accepted href before it is escaped.
func WithRewrite(fn func(string) string) Option {
	return func(r *Renderer) {
		r.rewrite = fn
	}
}

// Renderer renders link descriptors. The zero value is ready to use.
type Renderer struct {
	rewrite func(string) string
}

// New returns a Renderer configured with opts.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the anchor for v, or false when v is not a link descriptor.
func (r *Renderer) Render(v models.CellValue) (template.HTML, bool) {
	s, ok := v.AsText()
	if !ok {
		return "", false
	}
	link, ok := Parse(s)
	if !ok {
		return "", false
	}
	href := link.Href
	if r != nil && r.rewrite != nil {
		href = r.rewrite(href)
	}
	return anchor(href, link.Label), true
}

// Render renders v with a default Renderer.
func Render(v models.CellValue) (template.HTML, bool) {
	return (*Renderer)(nil).Render(v)
}

// Parse decodes s as a link descriptor.
func Parse(s string) (models.LinkDescriptor, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return models.LinkDescriptor{}, false
	}

	var data interface{}
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return models.LinkDescriptor{}, false
	}
	obj, ok := data.(map[string]interface{})
	if !ok || len(obj) != 2 {
		return models.LinkDescriptor{}, false
	}

	rawHref, ok := obj["href"]
	if !ok {
		return models.LinkDescriptor{}, false
	}
	rawLabel, ok := obj["label"]
	if !ok {
		return models.LinkDescriptor{}, false
	}

	href, ok := rawHref.(string)
	if !ok || !hasAllowedPrefix(href) {
		return models.LinkDescriptor{}, false
	}

	var label string
	switch l := rawLabel.(type) {
	case nil:
	case string:
		label = l
	default:
		return models.LinkDescriptor{}, false
	}

	return models.LinkDescriptor{Href: href, Label: label}, true
}

// Register adds the link renderer to r under Name.
func Register(r Registrar, opts ...Option) error {
	return r.Register(Name, New(opts...).Render)
}

// Registrar is the part of a renderer registry Register needs.
type Registrar interface {
	Register(name string, fn models.RenderFunc) error
}

func hasAllowedPrefix(href string) bool {
	for _, p := range allowedPrefixes {
		if strings.HasPrefix(href, p) {
			return true
		}
	}
	return false
}

func anchor(href, label string) template.HTML {
	text := html.EscapeString(label)
	if text == "" {
		text = emptyLabel
	}
	return template.HTML(`<a href="` + html.EscapeString(href) + `">` + text + `</a>`)
}
