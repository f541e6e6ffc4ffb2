package oauth

import (
	"net/http"
	"strings"
)

// SafePath returns target when it is a local absolute path, "/" otherwise.
// Protocol-relative ("//host") and backslash forms are refused.
func SafePath(target string) string {
	target = strings.TrimSpace(target)
	if target == "" || !strings.HasPrefix(target, "/") {
		return "/"
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}

// Origin resolves the public origin for redirects: the configured site URL,
// then forwarded headers from a proxy, then the request itself.
func Origin(r *http.Request, publicSiteURL string) string {
	if publicSiteURL != "" {
		return strings.TrimRight(publicSiteURL, "/")
	}

	if host := r.Header.Get("X-Forwarded-Host"); host != "" {
		proto := r.Header.Get("X-Forwarded-Proto")
		if proto == "" {
			proto = "https"
		}
		return proto + "://" + firstValue(host)
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// RedirectURL joins the resolved origin with a sanitized target path.
func RedirectURL(r *http.Request, publicSiteURL, target string) string {
	return Origin(r, publicSiteURL) + SafePath(target)
}

func firstValue(header string) string {
	if i := strings.Index(header, ","); i >= 0 {
		return strings.TrimSpace(header[:i])
	}
	return strings.TrimSpace(header)
}
