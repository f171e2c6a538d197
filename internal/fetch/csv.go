// Package fetch downloads source CSV exports and keeps a local copy so
// repeated ingest runs work offline and a flaky network never aborts a run.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/planetary-society/missions/pkg/errors"
	"github.com/planetary-society/missions/pkg/logging"
	"github.com/planetary-society/missions/pkg/sources"
)

// DefaultTimeout bounds a single CSV download.
const DefaultTimeout = 30 * time.Second

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Client downloads CSV datasets into a cache directory.
type Client struct {
	CacheDir string
	HTTP     *http.Client
}

// NewClient creates a Client caching downloads under cacheDir.
func NewClient(cacheDir string) *Client {
	return &Client{
		CacheDir: cacheDir,
		HTTP:     &http.Client{Timeout: DefaultTimeout},
	}
}

// Dataset returns the parsed CSV for url. Loading is best effort all the way
// down: a failed download falls back to a previously cached copy, and a
// missing or unparsable file yields an empty dataset, so a broken feed only
// ever skips that source's enrichment rather than aborting the run.
func (c *Client) Dataset(ctx context.Context, name, url, filename string) *sources.Dataset {
	log := logging.FromContext(ctx)
	path := filepath.Join(c.CacheDir, filename)

	if err := c.download(ctx, url, path); err != nil {
		log.Warn().Err(err).Str("source", name).Str("url", url).Msg("download failed, falling back to cached copy")
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn().Err(err).Str("source", name).Str("path", path).Msg("no cached copy available, source will be empty")
		return sources.EmptyDataset()
	}
	defer func() { _ = f.Close() }()

	data, err := sources.ReadCSV(f, name)
	if err != nil {
		log.Warn().Err(err).Str("source", name).Str("path", path).Msg("feed is unparsable, source will be empty")
		return sources.EmptyDataset()
	}

	log.Debug().Str("source", name).Str("path", path).Int("rows", data.Len()).Msg("dataset loaded")
	return data
}

// download fetches url to path, replacing the file atomically so a failed
// transfer never clobbers a good cached copy.
func (c *Client) download(ctx context.Context, url, path string) error {
	if err := os.MkdirAll(c.CacheDir, dirPermissions); err != nil {
		return errors.WrapIO("create", c.CacheDir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WrapSource("fetch", url, err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.WrapSource("fetch", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.NewSourceError("fetch", url, errors.ErrSourceUnavailable)
	}

	tmp, err := os.CreateTemp(c.CacheDir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, filePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}
