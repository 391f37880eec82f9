package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/yourlabxyz/pipkit/pkg/httputil"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package doesn't exist on the registry.
	ErrNotFound = errors.New("package not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// unexpected status codes).
	ErrNetwork = errors.New("network error")
)

// PackageInfo holds the metadata subset pipkit needs from the registry.
type PackageInfo struct {
	Name    string // normalized package name
	Version string // latest released version
	Summary string // short package description (may be empty)
}

// Client provides access to the PyPI JSON API with response caching.
// All methods are safe for sequential use; the cache may be nil to disable
// caching entirely.
type Client struct {
	http    *http.Client
	cache   *httputil.Cache
	baseURL string
}

// NewClient creates a PyPI client backed by the given response cache.
// Pass nil to disable caching.
func NewClient(cache *httputil.Cache) *Client {
	if cache != nil {
		cache = cache.Namespace("pypi:")
	}
	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		cache:   cache,
		baseURL: "https://pypi.org/pypi",
	}
}

// NormalizeName converts a package name to its canonical form following
// PEP 503: lowercase with underscores replaced by hyphens.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}

// FetchPackage retrieves metadata for a package. The name is normalized
// before the lookup. If refresh is true, the cache is bypassed and a fresh
// API call is made; the result still lands in the cache for later calls.
//
// Returns ErrNotFound if the package doesn't exist and ErrNetwork for HTTP
// failures after retries are exhausted.
func (c *Client) FetchPackage(ctx context.Context, pkg string, refresh bool) (*PackageInfo, error) {
	pkg = NormalizeName(pkg)

	var info PackageInfo
	if !refresh && c.cache != nil {
		if ok, _ := c.cache.Get(pkg, &info); ok {
			return &info, nil
		}
	}

	err := httputil.RetryWithBackoff(ctx, func() error {
		return c.fetch(ctx, pkg, &info)
	})
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		_ = c.cache.Set(pkg, &info)
	}
	return &info, nil
}

func (c *Client) fetch(ctx context.Context, pkg string, info *PackageInfo) error {
	url := fmt.Sprintf("%s/%s/json", c.baseURL, pkg)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, pkg)
	case resp.StatusCode >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return err
	}

	*info = PackageInfo{
		Name:    NormalizeName(data.Info.Name),
		Version: data.Info.Version,
		Summary: data.Info.Summary,
	}
	return nil
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Summary string `json:"summary"`
}
