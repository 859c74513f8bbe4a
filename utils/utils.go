package utils

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"os"
	"strings"
)

// Fl is the numeric type used for device independent lengths.
type Fl = float32

// Hash64 creates a cache key from a binary encoded value.
func Hash64(data []byte) uint64 {
	h := fnv.New64()
	h.Write(data)
	return h.Sum64()
}

// RemoteRessource is the result of fetching an url.
type RemoteRessource struct {
	Content io.Reader
}

// UrlFetcher resolves an url to its binary content.
// The url is either an http(s) url or a local file path.
type UrlFetcher = func(url string) (RemoteRessource, error)

// DefaultUrlFetcher fetches http and https urls with net/http,
// and treats other urls as local file paths.
func DefaultUrlFetcher(url string) (RemoteRessource, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return RemoteRessource{}, err
		}
		req.Header.Set("User-Agent", VersionString)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return RemoteRessource{}, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return RemoteRessource{}, fmt.Errorf("failed to fetch %s: %s", url, resp.Status)
		}
		content, err := io.ReadAll(resp.Body)
		if err != nil {
			return RemoteRessource{}, err
		}
		return RemoteRessource{Content: bytes.NewReader(content)}, nil
	}

	content, err := os.ReadFile(url)
	if err != nil {
		return RemoteRessource{}, err
	}
	return RemoteRessource{Content: bytes.NewReader(content)}, nil
}
