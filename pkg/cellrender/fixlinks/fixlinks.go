// Package fixlinks moves links that point at a local development origin onto
// the origin and path prefix of a deployed site.
package fixlinks

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var localOrigin = regexp.MustCompile(`localhost|127[.]0[.]0[.]1`)

// Rewriter rewrites hrefs onto a base URL. It is immutable and safe for
// concurrent use.
type Rewriter struct {
	base *url.URL
}

// New returns a Rewriter for baseURL, which must be an absolute http or https URL.
func New(baseURL string) (*Rewriter, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be an absolute http or https URL", baseURL)
	}
	base := *u
	base.Path = strings.TrimSuffix(base.Path, "/")
	base.RawPath = ""
	return &Rewriter{base: &base}, nil
}

// Base returns the base URL as a string.
func (r *Rewriter) Base() string {
	return r.base.String()
}

// IsBroken reports whether u points at a local origin other than the base.
func (r *Rewriter) IsBroken(u *url.URL) bool {
	if u == nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	return origin(u) != origin(r.base) && localOrigin.MatchString(origin(u))
}

// Rewrite returns href moved onto the base URL when it is broken, and href
// unchanged otherwise.
func (r *Rewriter) Rewrite(href string) string {
	u, err := url.Parse(href)
	if err != nil || !r.IsBroken(u) {
		return href
	}

	fixed := *u
	fixed.Scheme = r.base.Scheme
	fixed.Host = r.base.Host
	fixed.User = nil
	if fixed.Path == "" {
		fixed.Path = "/"
	}
	if !strings.HasPrefix(fixed.Path, r.base.Path) {
		fixed.Path = r.base.Path + fixed.Path
		fixed.RawPath = ""
	}
	return fixed.String()
}

func origin(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}
