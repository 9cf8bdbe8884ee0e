package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showcase/internal/domain"
)

const productsJSON = `[
  {"id": 1, "name": "Engagement Ring 1", "popularity_score": 4.5, "weight": 2.1,
   "image_yellow": "https://img/y1.jpg", "image_rose": "https://img/r1.jpg", "image_white": "https://img/w1.jpg",
   "price": 299.99},
  {"id": 2, "name": "Engagement Ring 2", "popularity_score": 3.8, "weight": 3.4,
   "image_yellow": "https://img/y2.jpg", "image_rose": "https://img/r2.jpg", "image_white": "https://img/w2.jpg",
   "price": 512}
]`

var wantProducts = []domain.Product{
	{
		ID: 1, Name: "Engagement Ring 1", PopularityScore: 4.5, Weight: 2.1,
		ImageYellow: "https://img/y1.jpg", ImageRose: "https://img/r1.jpg", ImageWhite: "https://img/w1.jpg",
		Price: 299.99,
	},
	{
		ID: 2, Name: "Engagement Ring 2", PopularityScore: 3.8, Weight: 3.4,
		ImageYellow: "https://img/y2.jpg", ImageRose: "https://img/r2.jpg", ImageWhite: "https://img/w2.jpg",
		Price: 512,
	},
}

func TestDecodeEmbeddedJSON(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		got, err := DecodeEmbeddedJSON([]byte(productsJSON))
		require.NoError(t, err)
		if diff := cmp.Diff(wantProducts, got); diff != "" {
			t.Errorf("products mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("wrapped in html", func(t *testing.T) {
		body := "<html><body><pre>" + productsJSON + "</pre></body></html>"
		got, err := DecodeEmbeddedJSON([]byte(body))
		require.NoError(t, err)
		if diff := cmp.Diff(wantProducts, got); diff != "" {
			t.Errorf("products mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no array", func(t *testing.T) {
		_, err := DecodeEmbeddedJSON([]byte("<html>maintenance</html>"))
		assert.ErrorIs(t, err, ErrNoArray)
	})

	t.Run("broken array", func(t *testing.T) {
		_, err := DecodeEmbeddedJSON([]byte(`[{"id": "x"}]`))
		assert.Error(t, err)
	})
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<pre>" + productsJSON + "</pre>"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	t.Run("ok", func(t *testing.T) {
		src := NewHTTPSource(srv.URL+"/products", srv.Client())
		got, err := src.Fetch(context.Background())
		require.NoError(t, err)
		if diff := cmp.Diff(wantProducts, got); diff != "" {
			t.Errorf("products mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, srv.URL+"/products", src.Key())
	})

	t.Run("server error", func(t *testing.T) {
		src := NewHTTPSource(srv.URL+"/broken", srv.Client())
		_, err := src.Fetch(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewHTTPSource(srv.URL+"/products", srv.Client()).Fetch(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "products.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(productsJSON), 0o644))

	yamlPath := filepath.Join(dir, "products.yaml")
	yamlBody := `- id: 1
  name: Engagement Ring 1
  popularity_score: 4.5
  weight: 2.1
  image_yellow: https://img/y1.jpg
  image_rose: https://img/r1.jpg
  image_white: https://img/w1.jpg
  price: 299.99
- id: 2
  name: Engagement Ring 2
  popularity_score: 3.8
  weight: 3.4
  image_yellow: https://img/y2.jpg
  image_rose: https://img/r2.jpg
  image_white: https://img/w2.jpg
  price: 512
`
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlBody), 0o644))

	for _, path := range []string{jsonPath, yamlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			src, err := NewFileSource(path)
			require.NoError(t, err)
			got, err := src.Fetch(context.Background())
			require.NoError(t, err)
			if diff := cmp.Diff(wantProducts, got); diff != "" {
				t.Errorf("products mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, "file://"+path, src.Key())
		})
	}

	t.Run("missing file", func(t *testing.T) {
		src, err := NewFileSource(filepath.Join(dir, "gone.json"))
		require.NoError(t, err)
		_, err = src.Fetch(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(dir, "products.csv"))
		assert.Error(t, err)
	})
}

func TestNewSource(t *testing.T) {
	src, err := NewSource("https://example.com/products", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, src)

	src, err = NewSource("s3://bucket/path/products.json", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &S3Source{}, src)
	assert.Equal(t, "s3://bucket/path/products.json", src.Key())

	src, err = NewSource("./products.yml", time.Second)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	_, err = NewSource("  ", time.Second)
	assert.Error(t, err)

	_, err = NewSource("s3://bucket-only", time.Second)
	assert.Error(t, err)
}
