// Package updater keeps an installed ado-instructions binary current.
// Releases are published on GitHub; each one carries a tar.gz archive
// per platform named ado-instructions_<version>_<os>_<arch>.tar.gz with
// the binary at its root. The updater resolves the latest release,
// compares versions, and can swap the running executable in place.
//
// Development builds (version "dev" or empty) never report an update.
package updater

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

const (
	binaryName      = "ado-instructions"
	defaultEndpoint = "https://api.github.com/repos/arroz4/ado-instruction-mcp-server/releases/latest"
)

// Client resolves and applies releases. The zero value is not usable;
// construct with NewClient.
type Client struct {
	// Endpoint is the latest-release API URL.
	Endpoint string
	// HTTP performs all requests.
	HTTP *http.Client

	version  string
	execPath func() (string, error)
}

// NewClient returns a Client identifying itself as the given running
// version.
func NewClient(currentVersion string) *Client {
	return &Client{
		Endpoint: defaultEndpoint,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
		version:  currentVersion,
		execPath: os.Executable,
	}
}

// Release is one published version and its downloadable assets.
type Release struct {
	// Version is the release version without a leading "v".
	Version string
	// PageURL is the human-facing release page.
	PageURL string

	assets map[string]string
}

// Latest fetches the newest published release.
func (c *Client) Latest() (*Release, error) {
	req, err := http.NewRequest(http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", binaryName+"/"+c.version)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching latest release: GitHub returned %s", resp.Status)
	}

	var payload struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
		Assets  []struct {
			Name        string `json:"name"`
			DownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding release: %w", err)
	}

	rel := &Release{
		Version: strings.TrimPrefix(payload.TagName, "v"),
		PageURL: payload.HTMLURL,
		assets:  make(map[string]string, len(payload.Assets)),
	}
	for _, a := range payload.Assets {
		rel.assets[a.Name] = a.DownloadURL
	}
	return rel, nil
}

// NewerThan reports whether the release supersedes the given running
// version. Comparison is numeric per dotted segment; missing segments
// count as zero and trailing pre-release suffixes are ignored.
func (r *Release) NewerThan(current string) bool {
	current = strings.TrimPrefix(current, "v")
	if current == "" || current == "dev" || r.Version == "" {
		return false
	}

	have, latest := versionParts(current), versionParts(r.Version)
	for i := range have {
		if latest[i] != have[i] {
			return latest[i] > have[i]
		}
	}
	return false
}

func versionParts(v string) [3]int {
	var out [3]int
	for i, piece := range strings.SplitN(v, ".", 3) {
		if cut := strings.IndexFunc(piece, func(r rune) bool { return r < '0' || r > '9' }); cut >= 0 {
			piece = piece[:cut]
		}
		n, err := strconv.Atoi(piece)
		if err != nil {
			break
		}
		out[i] = n
	}
	return out
}

// assetName is the archive filename published for this platform.
func (r *Release) assetName() string {
	return fmt.Sprintf("%s_%s_%s_%s.tar.gz", binaryName, r.Version, runtime.GOOS, runtime.GOARCH)
}

// Apply downloads the release archive for this platform and swaps the
// running executable. A running binary cannot be overwritten on
// Windows, so Apply refuses there and points at the release page.
func (c *Client) Apply(r *Release) error {
	if runtime.GOOS == "windows" {
		return fmt.Errorf("in-place update is not supported on Windows; download the release from %s", r.PageURL)
	}

	name := r.assetName()
	url, ok := r.assets[name]
	if !ok {
		return fmt.Errorf("release %s has no asset %s for %s/%s", r.Version, name, runtime.GOOS, runtime.GOARCH)
	}

	resp, err := c.HTTP.Get(url)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: got %s", name, resp.Status)
	}

	bin, err := binaryFromArchive(resp.Body)
	if err != nil {
		return err
	}
	return c.swap(bin)
}

// binaryFromArchive streams a tar.gz archive and returns the bytes of
// the ado-instructions entry.
func binaryFromArchive(r io.Reader) ([]byte, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("archive does not contain the %s binary", binaryName)
		}
		if err != nil {
			return nil, fmt.Errorf("reading archive: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == binaryName {
			data, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("extracting %s: %w", binaryName, err)
			}
			return data, nil
		}
	}
}

// swap stages the new binary next to the current executable and renames
// it into place. Same-directory rename keeps the replacement atomic on
// a single filesystem.
func (c *Client) swap(bin []byte) error {
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}
	target, err = filepath.EvalSymlinks(target)
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}

	staged := target + ".next"
	if err := os.WriteFile(staged, bin, 0o755); err != nil {
		return fmt.Errorf("staging new binary: %w", err)
	}
	if err := os.Rename(staged, target); err != nil {
		_ = os.Remove(staged)
		return fmt.Errorf("installing new binary: %w", err)
	}
	return nil
}
