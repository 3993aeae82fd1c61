package gen

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// Fetcher retrieves the full text of a property listing. The returned reader
// holds the complete body; the pipeline buffers it before parsing starts.
type Fetcher interface {
	Fetch(url string) (io.ReadCloser, error)
}

var (
	_ Fetcher = &httpFetcher{}
	_ Fetcher = &fileFetcher{}
)

type httpFetcher struct {
}

func NewHTTPFetcher() *httpFetcher {
	return &httpFetcher{}
}

func (f *httpFetcher) Fetch(url string) (io.ReadCloser, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %v: %v", url, resp.Status)
	}
	return resp.Body, nil
}

// fileFetcher reads a local copy of a listing instead of fetching it over the
// network. It serves the CLI's --local option.
type fileFetcher struct {
	path string
}

func NewFileFetcher(path string) *fileFetcher {
	return &fileFetcher{
		path: path,
	}
}

func (f *fileFetcher) Fetch(url string) (io.ReadCloser, error) {
	return os.Open(f.path)
}
