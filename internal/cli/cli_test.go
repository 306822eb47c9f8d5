package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augray/ray/internal/logview"
)

// runCLI executes rootCmd with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		dashboardURL, pagePath, token, verbose, download = "", "", "", false, false
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func newDashboard(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/log_index" {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, `<ul><li><a href="http://10.0.0.1:52365/logs/">http://10.0.0.1:52365/logs/</a></li></ul>`)
			return
		}
		if r.URL.Path != "/log_proxy" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "" && r.Header.Get("Authorization") != "Bearer secret" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		switch r.URL.Query().Get("url") {
		case "http://10.0.0.1:52365/logs/", "/node/10.0.0.1:52365/logs/":
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, `<ul><li><a href="http://10.0.0.1:52365/logs/raylet.out">raylet.out</a></li><li><a href="http://10.0.0.1:52365/logs/old/">old/</a></li></ul>`)
		case "http://10.0.0.1:52365/logs/raylet.out":
			w.Header().Set("Content-Type", "text/plain")
			fmt.Fprint(w, "raylet started\n")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "ls")
	assert.Contains(t, names, "cat")
	assert.Contains(t, names, "url")
}

func TestLs_Index(t *testing.T) {
	ts := newDashboard(t)

	out, err := runCLI(t, "ls", "--dashboard", ts.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "http://10.0.0.1:52365/logs/  http://10.0.0.1:52365/logs/")
}

func TestLs_Directory(t *testing.T) {
	ts := newDashboard(t)

	out, err := runCLI(t, "ls", "http://10.0.0.1:52365/logs/", "--dashboard", ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "raylet.out  /logs/raylet.out\nold/        /logs/old/\n", out)
}

func TestLs_WorkerScopedPage(t *testing.T) {
	ts := newDashboard(t)

	out, err := runCLI(t, "ls", "http://10.0.0.1:52365/logs/", "--dashboard", ts.URL, "--page", "/node/10.0.0.9:52365")
	require.NoError(t, err)
	assert.Contains(t, out, "raylet.out")
}

func TestLs_FilePrintsText(t *testing.T) {
	ts := newDashboard(t)

	out, err := runCLI(t, "ls", "http://10.0.0.1:52365/logs/raylet.out", "--dashboard", ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "raylet started\n", out)
}

func TestCat(t *testing.T) {
	ts := newDashboard(t)

	out, err := runCLI(t, "cat", "http://10.0.0.1:52365/logs/raylet.out", "--dashboard", ts.URL, "--token", "secret")
	require.NoError(t, err)
	assert.Equal(t, "raylet started\n", out)
}

func TestCat_Listing(t *testing.T) {
	ts := newDashboard(t)

	_, err := runCLI(t, "cat", "http://10.0.0.1:52365/logs/", "--dashboard", ts.URL)
	assert.ErrorIs(t, err, ErrNotListing)
}

func TestCat_RequiresExactlyOneArg(t *testing.T) {
	_, err := runCLI(t, "cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestCat_TransportError(t *testing.T) {
	ts := newDashboard(t)

	_, err := runCLI(t, "cat", "http://10.0.0.1:52365/logs/missing.log", "--dashboard", ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestURL(t *testing.T) {
	out, err := runCLI(t, "url", "http://host/x/y.log")
	require.NoError(t, err)
	assert.Equal(t, "log_proxy?url="+logview.EncodeURIComponent("http://host/x/y.log")+"\n", out)

	out, err = runCLI(t, "url", "http://host/x/y.log", "--page", "/a/worker:123/b")
	require.NoError(t, err)
	assert.Equal(t, "log_proxy?url="+logview.EncodeURIComponent("/a/host/x/y.log")+"\n", out)

	out, err = runCLI(t, "url", logview.IndexPath)
	require.NoError(t, err)
	assert.Equal(t, "log_index\n", out)
}

func TestURL_Download(t *testing.T) {
	out, err := runCLI(t, "url", "--download", "http://host/x/y.log")
	require.NoError(t, err)
	assert.Equal(t, "log_proxy?url="+logview.EncodeURIComponent("http://host/x/y.log")+"\n", out)

	_, err = runCLI(t, "url", "-d", logview.IndexPath)
	assert.ErrorIs(t, err, ErrIndexNotDownloadable)
}

func TestInvalidDashboardURL(t *testing.T) {
	_, err := runCLI(t, "ls", "--dashboard", "not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dashboard url must be absolute")
}
