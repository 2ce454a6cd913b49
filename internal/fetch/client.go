// Package fetch retrieves docket JSON and attached documents from the
// court's public endpoints and mirrors them into the local data layout.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/docketwatch/docket-api/internal/models"
)

// DefaultBaseURL is the public docket JSON endpoint.
const DefaultBaseURL = "https://www.supremecourt.gov/rss/cases/JSON/"

// ErrNotFound reports a docket the endpoint does not know.
var ErrNotFound = fmt.Errorf("docket not found")

// Client fetches docket documents over HTTP.
type Client struct {
	base   string
	http   *http.Client
	logger *zap.Logger
}

// NewClient builds a fetch client. An empty base falls back to the public
// endpoint.
func NewClient(base string, timeout time.Duration, logger *zap.Logger) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// DocketURL returns the JSON endpoint for one docket identifier.
func (c *Client) DocketURL(docketStr string) string {
	return c.base + docketStr + ".json"
}

// FetchDocket downloads and decodes one docket. The raw payload is returned
// alongside the decoded form so callers can persist it verbatim.
func (c *Client) FetchDocket(ctx context.Context, docketStr string) (*models.Docket, []byte, error) {
	payload, err := c.get(ctx, c.DocketURL(docketStr))
	if err != nil {
		return nil, nil, err
	}
	doc := &models.Docket{}
	if err := json.Unmarshal(payload, doc); err != nil {
		return nil, nil, fmt.Errorf("decode docket %s: %w", docketStr, err)
	}
	return doc, payload, nil
}

// FetchDocument downloads an attached document (petition, brief, order).
func (c *Client) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return payload, nil
}

// LocalDir returns the on-disk directory for one docket. Applications live
// in a separate subtree so their numbers do not collide with petitions.
func LocalDir(root string, term, number int, application bool) string {
	dir := filepath.Join(root, fmt.Sprintf("OT-%d", term), "dockets")
	if application {
		dir = filepath.Join(dir, "A")
	}
	return filepath.Join(dir, strconv.Itoa(number))
}

// Save mirrors a raw docket payload into the local layout and returns the
// docket directory.
func Save(root string, term, number int, application bool, payload []byte) (string, error) {
	dir := LocalDir(root, term, number, application)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create docket dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "docket.json"), payload, 0o644); err != nil {
		return "", fmt.Errorf("write docket.json: %w", err)
	}
	return dir, nil
}
