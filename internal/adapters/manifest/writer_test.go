package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autodeps/internal/adapters/manifest"
	"go.trai.ch/autodeps/internal/core/domain"
)

const root = "/src/"

func sampleTree() *domain.Tree {
	tree := domain.NewTree(domain.DefaultContainer)
	tree.Insert(domain.NewTarget("lib/libfoo.so", "modA", "modA", root,
		[]string{"/src/modA/a.cpp", "gen/b.cpp"}, []string{"bar"}))
	tree.Insert(domain.NewTarget("tst_foo", "modA", "modA/tests", root,
		[]string{"/src/modA/tests/tst_foo.cpp"}, []string{"foo"}))
	tree.Insert(domain.NewTarget("tool", "modA", "modA/tests", root,
		[]string{"/src/modA/tests/tool.cpp"}, nil))
	return tree
}

func TestWriter_Write(t *testing.T) {
	out := t.TempDir()

	written, err := manifest.NewWriter().Write(out, sampleTree(), domain.DefaultManifestName)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(out, "modA", "tests", domain.DefaultManifestName),
		filepath.Join(out, "modA", domain.DefaultManifestName),
		filepath.Join(out, domain.DefaultManifestName),
	}, written)

	g := goldie.New(t)
	for name, path := range map[string]string{
		"root":       written[2],
		"module":     written[1],
		"module_sub": written[0],
	} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		g.Assert(t, name, data)
	}
}

func TestWriter_WriteIsIdempotent(t *testing.T) {
	out := t.TempDir()
	w := manifest.NewWriter()

	first, err := w.Write(out, sampleTree(), domain.DefaultManifestName)
	require.NoError(t, err)
	before := make(map[string][]byte, len(first))
	for _, p := range first {
		data, readErr := os.ReadFile(p)
		require.NoError(t, readErr)
		before[p] = data
	}

	second, err := w.Write(out, sampleTree(), domain.DefaultManifestName)
	require.NoError(t, err)
	require.Equal(t, first, second)

	for _, p := range second {
		data, readErr := os.ReadFile(p)
		require.NoError(t, readErr)
		assert.Equal(t, before[p], data, "manifest %s changed between runs", p)
	}
}

func TestWriter_WriteFailsOnUnwritableRoot(t *testing.T) {
	out := t.TempDir()
	blocker := filepath.Join(out, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), domain.PrivateFilePerm))

	_, err := manifest.NewWriter().Write(blocker, sampleTree(), domain.DefaultManifestName)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestWriteFailed.Error())
}

func TestEncode_EmptyManifestOmitsEverything(t *testing.T) {
	data, err := manifest.Encode(domain.Manifest{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}
