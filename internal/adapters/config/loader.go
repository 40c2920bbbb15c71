// Package config provides the loader for the overrides document.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/autodeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.OverridesLoader = (*Loader)(nil)

// Loader implements ports.OverridesLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the overrides document at path.
// Sections are decoded in document order so later merging is deterministic.
func (l *Loader) Load(path string) (*domain.Overrides, error) {
	// #nosec G304 -- path is provided by user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOverridesReadFailed.Error()), "path", path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOverridesParseFailed.Error()), "path", path)
	}

	overrides := &domain.Overrides{}
	// An empty document decodes to a zero node.
	if len(doc.Content) == 0 {
		return overrides, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, parseError(path, root, "document must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if err := l.decodeSection(overrides, key.Value, value); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}

	return overrides, nil
}

func (l *Loader) decodeSection(o *domain.Overrides, section string, node *yaml.Node) error {
	var err error
	switch section {
	case keyModulePaths:
		o.ModulePaths, err = decodeScalars(section, node)
	case keyDependencies:
		o.Dependencies, err = decodeLists(section, node, shapeList)
	case keyLibtbxRefresh:
		o.LibtbxRefresh, err = decodeLists(section, node, shapeList)
	case keyForcedLocations:
		o.ForcedLocations, err = decodeScalars(section, node)
	case keyTargetIncludes:
		o.TargetIncludes, err = decodeLists(section, node, shapeScalarOrList)
	default:
		l.Logger.Warn("ignoring unknown overrides section: " + section)
	}
	return err
}

func decodeScalars(section string, node *yaml.Node) ([]domain.Entry[string], error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, sectionError(section, node, "section must be a mapping")
	}

	entries := make([]domain.Entry[string], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, zerr.With(sectionError(section, value, "value must be a string"), "name", key.Value)
		}
		entries = append(entries, domain.Entry[string]{Name: key.Value, Value: value.Value})
	}
	return entries, nil
}

func decodeLists(section string, node *yaml.Node, shape valueShape) ([]domain.Entry[[]string], error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, sectionError(section, node, "section must be a mapping")
	}

	entries := make([]domain.Entry[[]string], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		list, err := decodeList(value, shape)
		if err != nil {
			return nil, zerr.With(sectionError(section, value, err.Error()), "name", key.Value)
		}
		entries = append(entries, domain.Entry[[]string]{Name: key.Value, Value: list})
	}
	return entries, nil
}

func decodeList(node *yaml.Node, shape valueShape) ([]string, error) {
	switch {
	case isNull(node):
		return nil, nil
	case node.Kind == yaml.ScalarNode && shape == shapeScalarOrList:
		return []string{node.Value}, nil
	case node.Kind == yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, errors.New("value must be a list of strings")
	}
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func sectionError(section string, node *yaml.Node, reason string) error {
	err := zerr.With(domain.ErrOverridesParseFailed, "section", section)
	err = zerr.With(err, "reason", reason)
	return zerr.With(err, "line", node.Line)
}

func parseError(path string, node *yaml.Node, reason string) error {
	err := zerr.With(domain.ErrOverridesParseFailed, "reason", reason)
	err = zerr.With(err, "line", node.Line)
	return zerr.With(err, "path", path)
}
