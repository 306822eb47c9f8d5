package logview

import (
	"net/url"
	"strings"
)

const (
	// IndexPath is the sentinel reference for the top-level list of logs.
	// It is requested as-is, without query parameters.
	IndexPath = "log_index"

	// ProxyPath is the dashboard endpoint that relays a node log URL.
	ProxyPath = "log_proxy"
)

// ResolveRequestPath returns the path the dashboard should be asked for to
// read raw. pathname is the path of the page raw was taken from and decides
// whether raw is re-anchored under a worker-scoped prefix.
func ResolveRequestPath(pathname, raw string) string {
	return requestPath(rescope(pathname, raw))
}

// DownloadURL resolves raw like ResolveRequestPath but reports false for the
// index, which has no single downloadable file.
func DownloadURL(pathname, raw string) (string, bool) {
	scoped := rescope(pathname, raw)
	if scoped == IndexPath {
		return "", false
	}
	return requestPath(scoped), true
}

func requestPath(raw string) string {
	if raw == IndexPath {
		return raw
	}
	return ProxyPath + "?url=" + EncodeURIComponent(raw)
}

// rescope re-anchors raw under the part of pathname that precedes the first
// colon-bearing segment. raw is returned unchanged from the root page, for
// the index, or when no such segment exists.
func rescope(pathname, raw string) string {
	if pathname == "/" || raw == IndexPath {
		return raw
	}
	segments := strings.Split(pathname, "/")
	if len(segments) < 2 {
		return raw
	}
	for i, seg := range segments {
		if !strings.Contains(seg, ":") {
			continue
		}
		scoped := make([]string, 0, i+1)
		scoped = append(scoped, segments[:i]...)
		scoped = append(scoped, stripScheme(raw))
		return strings.Join(scoped, "/")
	}
	return raw
}

func stripScheme(raw string) string {
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(raw, scheme) {
			return raw[len(scheme):]
		}
	}
	return raw
}

func hasScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s leaving only letters, digits and
// -_.!~*'() unescaped, so the proxy receives the same query a browser
// would send.
func EncodeURIComponent(s string) string {
	// QueryEscape only emits '+' for spaces; a literal '+' is already %2B.
	return componentUnescaper.Replace(url.QueryEscape(s))
}
