// Package download implements the download_chart path: normalizing a
// caller-supplied config, resolving an output location, fetching the
// rendered image from the remote service, and writing it to disk.
package download

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/chartsmith/chart-tools-mcp/internal/chart"
	"github.com/chartsmith/chart-tools-mcp/internal/config"
	"github.com/chartsmith/chart-tools-mcp/internal/mcperr"
)

// Fetcher retrieves the bytes behind a rendering URL. It is the one external
// collaborator of this package besides the filesystem.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher is the default Fetcher over net/http.
type HTTPFetcher struct {
	Client *http.Client
}

// Fetch downloads the URL and returns its body. Non-2xx responses are
// internal errors: the URL was produced by the encoder, so a rejection is a
// collaborator failure, not a caller mistake.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, mcperr.Wrap(mcperr.KindInternal, err, "cannot build fetch request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, mcperr.Wrap(mcperr.KindInternal, err, "fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, mcperr.Internalf("rendering service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, mcperr.Wrap(mcperr.KindInternal, err, "cannot read fetch response")
	}
	return body, nil
}

// Result describes a completed download.
type Result struct {
	// Path is where the image was written.
	Path string

	// URL is the rendering URL that was fetched.
	URL string

	// Width and Height are the decoded pixel dimensions of the saved
	// image, or zero when the payload could not be decoded as an image.
	Width  int
	Height int
}

// Downloader orchestrates the core pipeline plus fetch and write.
type Downloader struct {
	encoder *chart.Encoder
	fetcher Fetcher

	// Overridable for tests.
	now     func() time.Time
	homeDir func() (string, error)
}

// New creates a Downloader. A nil fetcher gets the default HTTPFetcher.
func New(cfg config.Config, fetcher Fetcher) *Downloader {
	if fetcher == nil {
		fetcher = &HTTPFetcher{}
	}
	return &Downloader{
		encoder: chart.NewEncoder(cfg),
		fetcher: fetcher,
		now:     time.Now,
		homeDir: os.UserHomeDir,
	}
}

// Download normalizes rawConfig, resolves outputPath (empty means the
// default location), fetches the rendered image and writes it to disk.
func (d *Downloader) Download(ctx context.Context, rawConfig map[string]any, outputPath string) (*Result, error) {
	if rawConfig == nil {
		return nil, mcperr.InvalidParamsf("missing required field: config")
	}

	normalized := Normalize(rawConfig)

	typ, _ := normalized["type"].(string)
	if typ == "" {
		return nil, mcperr.InvalidParamsf("config is missing required field: type")
	}
	if _, ok := normalized["datasets"]; !ok {
		return nil, mcperr.InvalidParamsf("config is missing required field: datasets")
	}

	if outputPath == "" {
		dir, err := d.defaultDir()
		if err != nil {
			return nil, err
		}
		outputPath = filepath.Join(dir, defaultFilename(typ, d.now()))
	}

	if err := checkWritable(filepath.Dir(outputPath)); err != nil {
		return nil, err
	}

	req, err := toRequest(normalized)
	if err != nil {
		return nil, err
	}
	url, err := d.encoder.URL(req)
	if err != nil {
		return nil, err
	}

	data, err := d.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return nil, classifyWriteError(err, outputPath)
	}

	res := &Result{Path: outputPath, URL: url}
	if img, err := imaging.Decode(bytes.NewReader(data)); err == nil {
		bounds := img.Bounds()
		res.Width = bounds.Dx()
		res.Height = bounds.Dy()
	}
	return res, nil
}

// Normalize lifts type, datasets and labels nested under a data member up to
// the top level. A top-level field always wins over its nested counterpart.
// The input map is not modified.
func Normalize(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}

	nested, _ := raw["data"].(map[string]any)
	if nested == nil {
		return out
	}
	for _, field := range []string{"type", "datasets", "labels"} {
		if _, present := out[field]; !present {
			if v, ok := nested[field]; ok {
				out[field] = v
			}
		}
	}
	return out
}

// toRequest converts the normalized open map into the typed chart request by
// round-tripping through JSON, so the same decoding rules apply as on the
// tool-call path.
func toRequest(normalized map[string]any) (*chart.Request, error) {
	b, err := json.Marshal(normalized)
	if err != nil {
		return nil, mcperr.Wrap(mcperr.KindInternal, err, "cannot serialize config")
	}
	var req chart.Request
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, mcperr.Wrap(mcperr.KindInvalidParams, err, "config has malformed fields")
	}
	return &req, nil
}

// defaultDir prefers a writable Desktop directory under the home directory,
// falling back to the home directory itself. The fallback is logged, never
// an error; only a missing home directory fails.
func (d *Downloader) defaultDir() (string, error) {
	home, err := d.homeDir()
	if err != nil {
		return "", mcperr.Wrap(mcperr.KindInternal, err, "cannot resolve home directory")
	}

	desktop := filepath.Join(home, "Desktop")
	if info, err := os.Stat(desktop); err == nil && info.IsDir() {
		if err := checkWritable(desktop); err == nil {
			return desktop, nil
		}
		log.Printf("Desktop directory %s is not writable, falling back to %s", desktop, home)
	}
	return home, nil
}

// defaultFilename is <type>_<ISO-8601 UTC timestamp with colons and
// fractional seconds stripped>.png.
func defaultFilename(typ string, now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05Z")
	stamp = strings.ReplaceAll(stamp, ":", "")
	return fmt.Sprintf("%s_%s.png", typ, stamp)
}

// checkWritable probes dir by creating and removing a temp file. Failure is
// an InvalidParams error: the caller picked (or defaulted into) the
// location, and can fix it.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".chart-mcp-probe-*")
	if err != nil {
		return mcperr.InvalidParamsf("output directory %s is not writable: %v", dir, err)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}

// classifyWriteError reclassifies caller-fixable write failures as
// InvalidParams; everything else propagates as an internal error.
func classifyWriteError(err error, path string) error {
	switch {
	case os.IsPermission(err):
		return mcperr.Wrap(mcperr.KindInvalidParams, err, "permission denied writing %s", path)
	case os.IsNotExist(err):
		return mcperr.Wrap(mcperr.KindInvalidParams, err, "output directory for %s does not exist", path)
	default:
		return mcperr.Wrap(mcperr.KindInternal, err, "cannot write %s", path)
	}
}
