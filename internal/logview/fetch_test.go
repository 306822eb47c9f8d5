package logview

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGetter struct {
	responses map[string]*Response
	err       error
	requested []string
}

func (m *mockGetter) Get(_ context.Context, path string) (*Response, error) {
	m.requested = append(m.requested, path)
	if m.err != nil {
		return nil, m.err
	}
	resp, ok := m.responses[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return resp, nil
}

func TestFetcher_IndexScenario(t *testing.T) {
	getter := &mockGetter{responses: map[string]*Response{
		"log_index": {
			ContentType: "text/html; charset=utf-8",
			Body:        []byte(`<ul><li><a href="http://host/log_proxy?url=x">alpha</a></li></ul>`),
		},
	}}
	content, err := NewFetcher(getter).Fetch(context.Background(), "/", IndexPath)
	require.NoError(t, err)
	assert.True(t, content.IsListing())
	assert.Equal(t, []Entry{{Name: "alpha", Href: "http://host/log_proxy?url=x"}}, content.Entries)
	assert.Equal(t, []string{"log_index"}, getter.requested)
}

func TestFetcher_ListingStripsHost(t *testing.T) {
	raw := "http://logserver/"
	getter := &mockGetter{responses: map[string]*Response{
		"log_proxy?url=" + EncodeURIComponent(raw): {
			ContentType: "text/html",
			Body:        []byte(`<li><a href="http://logserver/subdir/">subdir/</a></li><li><a href="http://external/file">http://external/file</a></li>`),
		},
	}}
	content, err := NewFetcher(getter).Fetch(context.Background(), "/", raw)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "subdir/", Href: "/subdir/"},
		{Name: "http://external/file", Href: "http://external/file"},
	}, content.Entries)
}

func TestFetcher_NonHTMLPassthrough(t *testing.T) {
	raw := "http://logserver/raylet.out"
	body := `{"<li>": "not parsed"}`
	getter := &mockGetter{responses: map[string]*Response{
		"log_proxy?url=" + EncodeURIComponent(raw): {ContentType: "application/json", Body: []byte(body)},
	}}
	content, err := NewFetcher(getter).Fetch(context.Background(), "/", raw)
	require.NoError(t, err)
	assert.False(t, content.IsListing())
	assert.Equal(t, body, content.Text)
	assert.Nil(t, content.Entries)
}

func TestFetcher_MissingContentTypeIsText(t *testing.T) {
	raw := "http://logserver/raylet.out"
	getter := &mockGetter{responses: map[string]*Response{
		"log_proxy?url=" + EncodeURIComponent(raw): {Body: []byte("<li>x</li>")},
	}}
	content, err := NewFetcher(getter).Fetch(context.Background(), "/", raw)
	require.NoError(t, err)
	assert.Equal(t, "<li>x</li>", content.Text)
}

func TestFetcher_WorkerScopedRequest(t *testing.T) {
	getter := &mockGetter{responses: map[string]*Response{
		"log_proxy?url=" + EncodeURIComponent("/node/10.0.0.7:52365/logs/"): {
			ContentType: "text/html",
			Body:        []byte(`<li><a href="raylet.out">raylet.out</a></li>`),
		},
	}}
	base, _ := url.Parse("http://dashboard:8265/")
	fetcher := NewFetcher(getter, WithBaseURL(base))

	content, err := fetcher.Fetch(context.Background(), "/node/10.0.0.1:52365/logs/", "http://10.0.0.7:52365/logs/")
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "raylet.out", Href: "/node/10.0.0.1:52365/logs/raylet.out"}}, content.Entries)
}

func TestFetcher_TransportErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	getter := &mockGetter{err: boom}
	_, err := NewFetcher(getter).Fetch(context.Background(), "/", "http://h/x")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, getter.requested, 1)
}
