// Package manifest writes one build manifest per tree directory.
package manifest

import (
	"bytes"
	"os"
	"path/filepath"

	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/autodeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const indent = 2

var _ ports.ManifestWriter = (*Writer)(nil)

// Writer implements ports.ManifestWriter with YAML files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders every node of the tree, children first, and overwrites
// filename in the matching directory below outputRoot.
func (w *Writer) Write(outputRoot string, tree *domain.Tree, filename string) ([]string, error) {
	var written []string

	for node := range tree.Walk() {
		m, err := node.Manifest()
		if err != nil {
			return written, err
		}

		data, err := Encode(m)
		if err != nil {
			return written, zerr.With(zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error()), "node", node.Path)
		}

		path := filepath.Join(outputRoot, filepath.FromSlash(node.Path), filename)
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return written, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
		}
		//nolint:gosec // output location is chosen by the user
		if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
			return written, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
		}
		written = append(written, path)
	}

	return written, nil
}

// Encode renders a manifest as YAML.
func Encode(m domain.Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
