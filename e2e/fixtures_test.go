//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type product struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	PopularityScore float64 `json:"popularity_score"`
	Weight          float64 `json:"weight"`
	ImageYellow     string  `json:"image_yellow"`
	ImageRose       string  `json:"image_rose"`
	ImageWhite      string  `json:"image_white"`
	Price           float64 `json:"price"`
}

// CreateTestWorkspace creates a temporary directory acting as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "showcase-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = dir
	return dir, nil
}

// WriteCatalog writes n products named Ring01..RingNN to a JSON file in
// the workspace and returns its path
func (tf *TUITestFramework) WriteCatalog(n int) (string, error) {
	products := make([]product, n)
	for i := range products {
		products[i] = product{
			ID:              i + 1,
			Name:            fmt.Sprintf("Ring%02d", i+1),
			PopularityScore: 0.5 + float64(i%5)/10,
			Weight:          2.1,
			ImageYellow:     fmt.Sprintf("https://img.example/%d-y.png", i+1),
			ImageRose:       fmt.Sprintf("https://img.example/%d-r.png", i+1),
			ImageWhite:      fmt.Sprintf("https://img.example/%d-w.png", i+1),
			Price:           float64(100 * (i + 1)),
		}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return "", err
	}
	path := filepath.Join(tf.workspace, "products.json")
	return path, os.WriteFile(path, data, 0o644)
}

// ConfigPath returns where the app keeps its config inside the workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "cfg", "showcase", "config.toml")
}
