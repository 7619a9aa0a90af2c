// Package seed imports an initial producto catalogue at startup.
//
// Catalogue files hold a JSON array of productos. Files whose name ends in
// ".gz" are gzip-compressed. They are read from the local file system or
// from S3, with S3 falling back to the local copy when it cannot be read.
package seed

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"moviles/internal/model"
)

// Loader defines the interface for loading catalogue files.
type Loader interface {
	// Load reads a catalogue file and returns its productos.
	Load(ctx context.Context, path string) ([]model.Producto, error)
}

// decode reads a JSON array of productos from r, decompressing first when
// name carries a .gz suffix.
func decode(r io.Reader, name string) ([]model.Producto, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var productos []model.Producto
	if err := json.NewDecoder(r).Decode(&productos); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue %s: %w", name, err)
	}

	return productos, nil
}
