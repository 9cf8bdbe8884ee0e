package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"showcase/internal/domain"
)

// Source produces the product list
type Source interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
	// Key identifies the source in the cache
	Key() string
}

// ErrNoArray is returned when a response holds no JSON array
var ErrNoArray = errors.New("no JSON array in response")

// NewSource picks a Source implementation for the location:
// http(s):// URLs, s3://bucket/key objects or local .json/.yaml files.
func NewSource(location string, timeout time.Duration) (Source, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return nil, fmt.Errorf("no product source configured")
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location, &http.Client{Timeout: timeout}), nil
	case strings.HasPrefix(location, "s3://"):
		return NewS3Source(location)
	default:
		return NewFileSource(location)
	}
}

// HTTPSource fetches the product list from an HTTP endpoint
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTP source using client
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{url: url, client: client}
}

// Key returns the endpoint URL
func (s *HTTPSource) Key() string {
	return s.url
}

// Fetch performs a GET and decodes the JSON array in the body. The endpoint
// may wrap the array in an HTML page.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch products: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return DecodeEmbeddedJSON(body)
}

// DecodeEmbeddedJSON decodes the text between the first '[' and the last
// ']' of body as a JSON product array
func DecodeEmbeddedJSON(body []byte) ([]domain.Product, error) {
	start := bytes.IndexByte(body, '[')
	end := bytes.LastIndexByte(body, ']')
	if start < 0 || end < start {
		return nil, ErrNoArray
	}

	var products []domain.Product
	if err := json.Unmarshal(body[start:end+1], &products); err != nil {
		return nil, fmt.Errorf("failed to parse products: %w", err)
	}
	return products, nil
}

// FileSource reads the product list from a local JSON or YAML file
type FileSource struct {
	path string
}

// NewFileSource creates a file source; the extension selects the format
func NewFileSource(path string) (*FileSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return &FileSource{path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported product file %q: want .json, .yaml or .yml", path)
	}
}

// Key returns the absolute file path
func (s *FileSource) Key() string {
	if abs, err := filepath.Abs(s.path); err == nil {
		return "file://" + abs
	}
	return "file://" + s.path
}

// Fetch reads and decodes the file
func (s *FileSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	var products []domain.Product
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("failed to parse products: %w", err)
		}
	default:
		return DecodeEmbeddedJSON(data)
	}
	return products, nil
}
