// Package inference reconstructs the build tree from parsed compiler invocations.
package inference

import (
	"fmt"
	"strings"

	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/autodeps/internal/core/ports"
)

// Options control one inference run.
type Options struct {
	// Root replaces the computed module root when set.
	Root string
	// Container is the path segment that groups modules without being one.
	Container string
}

// Result is everything inferred from one build log.
type Result struct {
	Root     string
	Data     *domain.LogData
	Targets  []*domain.Target
	Modules  *domain.ModuleMap
	Tree     *domain.Tree
	External []string
}

// Engine runs the inference pipeline. It holds no state between runs.
type Engine struct {
	logger ports.Logger
}

// NewEngine creates a new Engine.
func NewEngine(logger ports.Logger) *Engine {
	return &Engine{logger: logger}
}

// Run resolves the module root, classifies invocations, resolves targets,
// builds the tree and merges the overrides, in that order.
// overrides may be nil.
func (e *Engine) Run(invocations []domain.Invocation, overrides *domain.Overrides, opts Options) (*Result, error) {
	var root string
	var err error
	if opts.Root != "" {
		root, err = NormalizeRoot(opts.Root)
	} else {
		root, err = ResolveRoot(invocations)
	}
	if err != nil {
		return nil, err
	}
	e.logger.Info("common root is " + root)

	data, err := Classify(invocations, root)
	if err != nil {
		return nil, err
	}
	e.logger.Info(fmt.Sprintf("found %d compile and %d link records", len(data.Compiles), len(data.Links)))

	targets, modules := e.resolveTargets(data, opts.Container)
	e.applyModulePaths(overrides, modules)

	external := ExternalDependencies(targets)
	if len(external) > 0 {
		e.logger.Info("external dependencies: " + strings.Join(external, ", "))
	}

	e.relocateModuleNamed(targets, modules)

	s := &state{
		tree:    BuildTree(targets, opts.Container),
		targets: targets,
		modules: modules,
	}
	if err := e.mergeOverrides(s, overrides); err != nil {
		return nil, err
	}

	return &Result{
		Root:     root,
		Data:     data,
		Targets:  targets,
		Modules:  modules,
		Tree:     s.tree,
		External: external,
	}, nil
}
