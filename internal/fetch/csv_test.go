package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetary-society/missions/internal/fetch"
)

const sampleCSV = "Short Title,Full Name\nHST,Hubble Space Telescope\n"

func TestDatasetDownloadsAndCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	dir := t.TempDir()
	client := fetch.NewClient(dir)

	data := client.Dataset(context.Background(), "test", srv.URL, "test.csv")
	assert.Equal(t, 1, data.Len())
	assert.Equal(t, 1, hits)

	cached, err := os.ReadFile(filepath.Join(dir, "test.csv"))
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(cached))
}

func TestDatasetFallsBackToCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.csv"), []byte(sampleCSV), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := fetch.NewClient(dir)
	data := client.Dataset(context.Background(), "test", srv.URL, "test.csv")
	assert.Equal(t, 1, data.Len(), "cached copy served when the download fails")
}

func TestDatasetFailedDownloadKeepsCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.csv"), []byte(sampleCSV), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := fetch.NewClient(dir)
	data := client.Dataset(context.Background(), "test", srv.URL, "test.csv")
	assert.Equal(t, 1, data.Len())

	cached, err := os.ReadFile(filepath.Join(dir, "test.csv"))
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(cached), "failed download never clobbers the cache")
}

func TestDatasetEmptyWhenUnavailable(t *testing.T) {
	client := fetch.NewClient(t.TempDir())

	data := client.Dataset(context.Background(), "test", "http://127.0.0.1:1/nope", "missing.csv")
	assert.True(t, data.Empty(), "an unreachable source degrades to an empty dataset")
}

func TestDatasetUnparsableFeedIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Short Title,Full Name\n\"bad\"quote\",HST\n"))
	}))
	defer srv.Close()

	client := fetch.NewClient(t.TempDir())
	data := client.Dataset(context.Background(), "test", srv.URL, "bad.csv")
	assert.True(t, data.Empty(), "an unparsable feed degrades to an empty dataset")
}
