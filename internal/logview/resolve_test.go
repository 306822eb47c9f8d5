package logview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRequestPath_IndexPassthrough(t *testing.T) {
	for _, pathname := range []string{"/", "", "/node/10.0.0.1:52365/logs", "/a/b"} {
		t.Run(pathname, func(t *testing.T) {
			assert.Equal(t, IndexPath, ResolveRequestPath(pathname, IndexPath))
		})
	}
}

func TestResolveRequestPath_FromRoot(t *testing.T) {
	tests := []string{
		"http://10.0.0.1:52365/logs/",
		"https://logs.example.com/raylet.out?x=1&y=a b",
		"http://host/path with spaces/ünïcode.log",
	}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, "log_proxy?url="+EncodeURIComponent(raw), ResolveRequestPath("/", raw))
		})
	}
}

func TestResolveRequestPath_WorkerScoped(t *testing.T) {
	tests := []struct {
		name     string
		pathname string
		raw      string
		want     string
	}{
		{
			name:     "segments before colon segment",
			pathname: "/a/worker:123/b",
			raw:      "http://host/x/y.log",
			want:     "/a/host/x/y.log",
		},
		{
			name:     "https is stripped too",
			pathname: "/node/10.0.0.1:52365/logs",
			raw:      "https://10.0.0.7:52365/logs/raylet.out",
			want:     "/node/10.0.0.7:52365/logs/raylet.out",
		},
		{
			name:     "colon in first real segment",
			pathname: "/10.0.0.1:52365",
			raw:      "http://10.0.0.2:52365/logs/",
			want:     "/10.0.0.2:52365/logs/",
		},
		{
			name:     "relative pathname",
			pathname: "a/w:1",
			raw:      "http://h/f",
			want:     "a/h/f",
		},
		{
			name:     "no colon segment",
			pathname: "/a/b/c",
			raw:      "http://host/x/y.log",
			want:     "http://host/x/y.log",
		},
		{
			name:     "empty pathname",
			pathname: "",
			raw:      "http://host/x/y.log",
			want:     "http://host/x/y.log",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rescope(tt.pathname, tt.raw))
			assert.Equal(t, "log_proxy?url="+EncodeURIComponent(tt.want), ResolveRequestPath(tt.pathname, tt.raw))
		})
	}
}

func TestResolveRequestPath_EmptyReference(t *testing.T) {
	assert.Equal(t, "log_proxy?url=", ResolveRequestPath("/", ""))
}

func TestDownloadURL(t *testing.T) {
	_, ok := DownloadURL("/", IndexPath)
	assert.False(t, ok)
	_, ok = DownloadURL("/node/h:1/logs", IndexPath)
	assert.False(t, ok)

	for _, pathname := range []string{"/", "/a/worker:123/b", "/a/b"} {
		got, ok := DownloadURL(pathname, "http://host/x/y.log")
		assert.True(t, ok)
		assert.Equal(t, ResolveRequestPath(pathname, "http://host/x/y.log"), got)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"":                       "",
		"abcXYZ019":              "abcXYZ019",
		"-_.!~*'()":              "-_.!~*'()",
		"a b":                    "a%20b",
		"a+b":                    "a%2Bb",
		"http://h:1/p?q=1&r=#f":  "http%3A%2F%2Fh%3A1%2Fp%3Fq%3D1%26r%3D%23f",
		"ü":                      "%C3%BC",
		"$,;@":                   "%24%2C%3B%40",
		"/node/10.0.0.1:1/x.log": "%2Fnode%2F10.0.0.1%3A1%2Fx.log",
	}
	for in, want := range tests {
		assert.Equal(t, want, EncodeURIComponent(in), "input %q", in)
	}
}
