package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/augray/ray/internal/config"
	"github.com/augray/ray/internal/logutil"
	"github.com/augray/ray/internal/nodes"
)

// ProxyClient fetches node logs for LogProxy. main replaces it with one
// that honours the configured timeout.
var ProxyClient = &http.Client{Timeout: 30 * time.Second}

var (
	errBadLogURL   = errors.New("invalid log url")
	errUnknownHost = errors.New("log url does not belong to a registered node")
)

var logIndexTmpl = template.Must(template.New("log_index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Logs</title></head>
<body>
<h1>Logs</h1>
<ul>
{{- range .}}
<li><a href="{{.LogURL}}">{{.LogURL}}</a></li>
{{- end}}
</ul>
</body>
</html>
`))

// LogIndex renders the list of registered log roots as an HTML listing.
func LogIndex(w http.ResponseWriter, r *http.Request) {
	list, err := nodes.List()
	if err != nil {
		log.Printf("[logs] list nodes: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list nodes")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := logIndexTmpl.Execute(w, list); err != nil {
		log.Printf("[logs] render index: %v", err)
	}
}

// LogProxy fetches the node log named by the url query parameter and relays
// it with the upstream content type and status.
func LogProxy(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "url parameter required")
		return
	}

	upstream, err := upstreamURL(raw)
	switch {
	case errors.Is(err, errUnknownHost):
		writeError(w, http.StatusForbidden, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, upstream, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid upstream URL: %v", err))
		return
	}

	start := time.Now()
	resp, err := ProxyClient.Do(req)
	if err != nil {
		log.Printf("[logs] proxy %s failed: %v", logutil.SanitizeForLog(upstream), err)
		writeError(w, http.StatusBadGateway, "Failed to reach node")
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)

	var body io.Reader = resp.Body
	if config.Cfg.ProxyMaxBytes > 0 {
		body = io.LimitReader(resp.Body, config.Cfg.ProxyMaxBytes)
	}
	n, err := io.Copy(w, body)
	if err != nil {
		log.Printf("[logs] relay %s interrupted after %d bytes: %v", logutil.SanitizeForLog(upstream), n, err)
		return
	}
	if limit := config.Cfg.ProxyMaxBytes; limit > 0 && n == limit {
		log.Printf("[logs] proxy %s truncated at %d bytes", logutil.SanitizeForLog(upstream), limit)
	}
	log.Printf("[logs] proxy url=%s status=%d bytes=%d duration=%s",
		logutil.SanitizeForLog(upstream), resp.StatusCode, n, time.Since(start))
}

// upstreamURL maps the url parameter to the node URL to fetch. Absolute URLs
// must point at a registered node. Worker-scoped references have had their
// scheme removed and sit below a dashboard prefix; the first segment naming a
// registered node host marks where the node URL starts.
func upstreamURL(raw string) (string, error) {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return "", errBadLogURL
		}
		_, ok, err := nodes.MatchHost(u.Host)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errUnknownHost
		}
		return u.String(), nil
	}

	segments := strings.Split(raw, "/")
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		node, ok, err := nodes.MatchHost(seg)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}
		u, err := url.Parse(node.Scheme() + "://" + strings.Join(segments[i:], "/"))
		if err != nil {
			return "", errBadLogURL
		}
		return u.String(), nil
	}
	return "", errUnknownHost
}
