// internal/infra/catalog/loader.go
package cataloginfra

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	catdom "shoplist/internal/domain/catalog"
)

// LoadFile reads the static product catalog (a JSON array of products) from
// path. The catalog is immutable for the process lifetime; rows without a
// name are dropped.
func LoadFile(path string) ([]catdom.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var raw []catdom.Product
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	out := make([]catdom.Product, 0, len(raw))
	for _, p := range raw {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		out = append(out, catdom.Product{
			Name:     name,
			ImageURL: strings.TrimSpace(p.ImageURL),
		})
	}

	log.Printf("[catalog] loaded %d products from %s", len(out), path)
	return out, nil
}
