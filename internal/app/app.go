// Package app implements the application layer for autodeps.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/autodeps/internal/core/ports"
	"go.trai.ch/autodeps/internal/engine/inference"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	reader ports.BuildLogReader
	cache  ports.ParseCache
	loader ports.OverridesLoader
	writer ports.ManifestWriter
	engine *inference.Engine
	logger ports.Logger
}

// New creates a new App instance.
func New(
	reader ports.BuildLogReader,
	cache ports.ParseCache,
	loader ports.OverridesLoader,
	writer ports.ManifestWriter,
	engine *inference.Engine,
	log ports.Logger,
) *App {
	return &App{
		reader: reader,
		cache:  cache,
		loader: loader,
		writer: writer,
		engine: engine,
		logger: log,
	}
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	// BuildLog is the gcc/g++ log to read.
	BuildLog string
	// Overrides is the optional overrides document.
	Overrides string
	// Target is the output root. Nothing is written when empty.
	Target string
	// Root replaces the computed module root when set.
	Root string
	// ManifestName is the file written into every tree directory.
	ManifestName string
	// Container is the segment that groups modules without being one.
	Container string
	// CacheDir holds parse cache artifacts.
	CacheDir string
	// NoCache disables the parse cache for reads and writes.
	NoCache bool
}

// Result is the outcome of one Resolve call.
type Result struct {
	*inference.Result
	// Written lists the manifest files written, children before parents.
	Written []string
}

// Resolve reads the build log, infers the build tree, merges the overrides and,
// when a target is given, writes one manifest per tree directory.
func (a *App) Resolve(_ context.Context, opts ResolveOptions) (*Result, error) {
	if opts.ManifestName == "" {
		opts.ManifestName = domain.DefaultManifestName
	}
	if opts.CacheDir == "" {
		opts.CacheDir = domain.DefaultCachePath()
	}

	a.logger.Info("parsing build log " + opts.BuildLog)
	invocations, err := a.loadInvocations(opts)
	if err != nil {
		return nil, err
	}

	overrides, err := a.loader.Load(opts.Overrides)
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		a.logger.Info("no overrides file at " + opts.Overrides)
	}

	target, err := a.checkTarget(opts.Target)
	if err != nil {
		return nil, err
	}

	inferred, err := a.engine.Run(invocations, overrides, inference.Options{
		Root:      opts.Root,
		Container: opts.Container,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{Result: inferred}
	if target == "" {
		a.logger.Info(fmt.Sprintf("dry run: %d targets in %d modules, nothing written",
			len(inferred.Targets), inferred.Modules.Len()))
		return res, nil
	}

	res.Written, err = a.writer.Write(target, inferred.Tree, opts.ManifestName)
	if err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("wrote %d manifests to %s", len(res.Written), target))

	return res, nil
}

// loadInvocations returns the parsed build log, from the parse cache when it is
// still valid. Cache failures are reported and otherwise ignored.
func (a *App) loadInvocations(opts ResolveOptions) ([]domain.Invocation, error) {
	if !opts.NoCache {
		invocations, ok, err := a.cache.Get(opts.CacheDir, opts.BuildLog)
		switch {
		case err != nil:
			a.logger.Warn("ignoring parse cache: " + err.Error())
		case ok:
			a.logger.Info(fmt.Sprintf("using cached parse of %s (%d invocations)", opts.BuildLog, len(invocations)))
			return invocations, nil
		}
	}

	invocations, err := a.reader.Read(opts.BuildLog)
	if err != nil {
		return nil, err
	}

	if !opts.NoCache {
		if err := a.cache.Put(opts.CacheDir, opts.BuildLog, invocations); err != nil {
			a.logger.Warn("failed to update parse cache: " + err.Error())
		}
	}
	return invocations, nil
}

// checkTarget makes the output root absolute. A target that is not an existing
// directory is reported and the run continues.
func (a *App) checkTarget(target string) (string, error) {
	if target == "" {
		return "", nil
	}

	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		a.logger.Error(zerr.With(domain.ErrInvalidOutputDir, "path", target))
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidOutputDir.Error()), "path", target)
	}
	return abs, nil
}

// Clean removes the parse cache directory.
func (a *App) Clean(_ context.Context, cacheDir string) error {
	if cacheDir == "" {
		cacheDir = domain.DefaultCachePath()
	}

	a.logger.Info("removing parse cache...")
	if err := os.RemoveAll(cacheDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove parse cache"), "path", cacheDir)
	}
	a.logger.Info("removed parse cache")
	return nil
}
