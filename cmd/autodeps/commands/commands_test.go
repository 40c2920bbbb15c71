package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autodeps/cmd/autodeps/commands"
	"go.trai.ch/autodeps/internal/app"
	"go.trai.ch/autodeps/internal/build"
	"go.trai.ch/autodeps/internal/core/domain"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, opts app.ResolveOptions) (*app.Result, error)
	cleanFunc   func(ctx context.Context, cacheDir string) error
}

func (m *mockApp) Resolve(ctx context.Context, opts app.ResolveOptions) (*app.Result, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, opts)
	}
	return &app.Result{}, nil
}

func (m *mockApp) Clean(ctx context.Context, cacheDir string) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, cacheDir)
	}
	return nil
}

type jsonSwitch struct{ enabled bool }

func (j *jsonSwitch) SetJSON(enable bool) { j.enabled = enable }

func captureResolve(t *testing.T, args []string) app.ResolveOptions {
	t.Helper()

	var captured app.ResolveOptions
	called := false
	mock := &mockApp{
		resolveFunc: func(_ context.Context, opts app.ResolveOptions) (*app.Result, error) {
			captured = opts
			called = true
			return &app.Result{}, nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs(args)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	require.NoError(t, cli.Execute(context.Background()))
	require.True(t, called)
	return captured
}

func TestCommands_Resolve_Defaults(t *testing.T) {
	opts := captureResolve(t, nil)

	assert.Equal(t, app.ResolveOptions{
		BuildLog:     domain.DefaultBuildLog,
		Overrides:    domain.DefaultOverridesFile,
		ManifestName: domain.DefaultManifestName,
		Container:    domain.DefaultContainer,
		CacheDir:     domain.DefaultCachePath(),
	}, opts)
}

func TestCommands_Resolve_ArgsAndFlags(t *testing.T) {
	opts := captureResolve(t, []string{
		"make.log", "fixes.yaml",
		"-t", "out",
		"--root", "/src",
		"--name", "Deps.yaml",
		"--container", "modules",
		"--cache-dir", "/tmp/cache",
		"--no-cache",
	})

	assert.Equal(t, app.ResolveOptions{
		BuildLog:     "make.log",
		Overrides:    "fixes.yaml",
		Target:       "out",
		Root:         "/src",
		ManifestName: "Deps.yaml",
		Container:    "modules",
		CacheDir:     "/tmp/cache",
		NoCache:      true,
	}, opts)
}

func TestCommands_Resolve_Environment(t *testing.T) {
	t.Setenv("AUTODEPS_TARGET", "env-out")
	t.Setenv("AUTODEPS_CACHE_DIR", "env-cache")
	t.Setenv("AUTODEPS_NO_CACHE", "true")

	opts := captureResolve(t, []string{"--cache-dir", "flag-cache"})

	assert.Equal(t, "env-out", opts.Target)
	assert.Equal(t, "flag-cache", opts.CacheDir, "flags win over the environment")
	assert.True(t, opts.NoCache)
}

func TestCommands_Resolve_TooManyArgs(t *testing.T) {
	cli := commands.New(&mockApp{
		resolveFunc: func(context.Context, app.ResolveOptions) (*app.Result, error) {
			panic("should not be called")
		},
	})
	cli.SetArgs([]string{"a", "b", "c"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Resolve_ReturnsAppError(t *testing.T) {
	cli := commands.New(&mockApp{
		resolveFunc: func(context.Context, app.ResolveOptions) (*app.Result, error) {
			return nil, errors.New("simulated error")
		},
	})
	cli.SetArgs(nil)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_JSONLog(t *testing.T) {
	logger := &jsonSwitch{}
	cli := commands.New(&mockApp{}).WithLogger(logger)
	cli.SetArgs([]string{"--json-log"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, logger.enabled)
}

func TestCommands_Clean(t *testing.T) {
	var cleaned string
	cli := commands.New(&mockApp{
		cleanFunc: func(_ context.Context, cacheDir string) error {
			cleaned = cacheDir
			return nil
		},
	})
	cli.SetArgs([]string{"clean", "--cache-dir", "/tmp/c"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/tmp/c", cleaned)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetArgs([]string{"version"})
	cli.SetOutput(buf, buf)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "autodeps version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}
