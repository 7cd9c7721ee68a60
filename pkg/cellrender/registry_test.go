package cellrender

import (
	"html/template"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/cellrender-go/pkg/cellrender/links"
	"github.com/ukaji3/cellrender-go/pkg/cellrender/models"
)

func upper(v models.CellValue) (template.HTML, bool) {
	s, ok := v.AsText()
	if !ok || s != "shout" {
		return "", false
	}
	return "<b>SHOUT</b>", true
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("upper", upper))
	require.NoError(t, links.Register(r))

	assert.ErrorIs(t, r.Register("", upper), ErrEmptyName)
	assert.ErrorIs(t, r.Register("nil", nil), ErrNilRenderer)
	assert.ErrorIs(t, r.Register("upper", upper), ErrDuplicateRenderer)

	assert.Equal(t, []string{"upper", links.Name}, r.Names())
	_, ok := r.Lookup(links.Name)
	assert.True(t, ok)
	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistryRender(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("upper", upper))
	require.NoError(t, links.Register(r))

	tests := []struct {
		name     string
		value    models.CellValue
		expected template.HTML
	}{
		{"first renderer", models.Text("shout"), "<b>SHOUT</b>"},
		{"link renderer", models.Text(`{"href": "/a", "label": "b"}`), `<a href="/a">b</a>`},
		{"default text escaped", models.Text("<i>x</i> & y"), "&lt;i&gt;x&lt;/i&gt; &amp; y"},
		{"bad link falls back", models.Text(`{"href": "javascript:x", "label": "b"}`), `{&#34;href&#34;: &#34;javascript:x&#34;, &#34;label&#34;: &#34;b&#34;}`},
		{"integer", models.Integer(42), "42"},
		{"float", models.Float(2.5), "2.5"},
		{"null", models.Null(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Render(tt.value))
		})
	}
}

func TestRegistryRenderRecoversPanics(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("boom", func(models.CellValue) (template.HTML, bool) {
		panic("boom")
	}))
	require.NoError(t, links.Register(r))

	assert.Equal(t, template.HTML(`<a href="/a">b</a>`), r.Render(models.Text(`{"href": "/a", "label": "b"}`)))
	assert.Equal(t, template.HTML("plain"), r.Render(models.Text("plain")))
}

func TestRegistryRenderReentrant(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("reentrant", func(v models.CellValue) (template.HTML, bool) {
		s, ok := v.AsText()
		if !ok || s != "register" {
			return "", false
		}
		if err := r.Register("late", upper); err != nil {
			return "", false
		}
		return template.HTML("registered " + r.Render(models.Text("shout"))), true
	}))

	done := make(chan template.HTML, 1)
	go func() {
		done <- r.Render(models.Text("register"))
	}()

	select {
	case out := <-done:
		assert.Equal(t, template.HTML("registered <b>SHOUT</b>"), out)
	case <-time.After(5 * time.Second):
		t.Fatal("Render blocked while a renderer used the registry")
	}
	assert.Equal(t, []string{"reentrant", "late"}, r.Names())
}

func TestRegistryConcurrentRender(t *testing.T) {
	r, err := NewDefaultRegistry(DefaultOptions())
	require.NoError(t, err)

	v := models.Text(`{"href": "/items/42", "label": "Item 42"}`)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := r.Render(v); got != `<a href="/items/42">Item 42</a>` {
					t.Errorf("unexpected render %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry(Options{BaseURL: "https://example.org/app"})
	require.NoError(t, err)
	assert.Equal(t, []string{links.Name}, r.Names())

	assert.Equal(t,
		template.HTML(`<a href="https://example.org/app/db?x=1&amp;y=2">db</a>`),
		r.Render(models.Text(`{"href": "http://localhost:8001/db?x=1&y=2", "label": "db"}`)))
	assert.Equal(t,
		template.HTML(`<a href="/db">db</a>`),
		r.Render(models.Text(`{"href": "/db", "label": "db"}`)))

	_, err = NewDefaultRegistry(Options{Renderers: []string{"nope"}})
	assert.ErrorIs(t, err, ErrUnknownRenderer)

	_, err = NewDefaultRegistry(Options{BaseURL: "not a url"})
	assert.Error(t, err)
}
