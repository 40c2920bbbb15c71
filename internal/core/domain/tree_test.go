package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autodeps/internal/core/domain"
)

func TestSplitPath(t *testing.T) {
	assert.Nil(t, domain.SplitPath(""))
	assert.Nil(t, domain.SplitPath("."))
	assert.Equal(t, []string{"a", "b"}, domain.SplitPath("a/./b/"))
	assert.Equal(t, []string{"b"}, domain.SplitPath("a/../b"))
}

func TestTree_NodeModuleAssignment(t *testing.T) {
	tree := domain.NewTree("cctbx_project")

	sub := tree.Node("modA/sub/deeper")
	assert.Equal(t, "modA", sub.Module)
	assert.Equal(t, "modA/sub/deeper", sub.Path)

	container := tree.Node("cctbx_project")
	assert.Empty(t, container.Module)

	libtbx := tree.Node("cctbx_project/libtbx/inner")
	assert.Equal(t, "libtbx", libtbx.Module)

	assert.Empty(t, tree.Root.Module)
	assert.False(t, tree.Root.Generate)
	assert.True(t, sub.Generate)
}

func TestTree_NodeIsUnique(t *testing.T) {
	tree := domain.NewTree(domain.DefaultContainer)

	a := tree.Node("modA/sub")
	b := tree.Node("modA/./sub/")
	assert.Same(t, a, b)
	assert.Same(t, tree.Root, tree.Node("."))
	assert.Same(t, tree.Root, tree.Node(""))

	_, ok := tree.Lookup("modA/missing")
	assert.False(t, ok)
}

func TestTree_Move(t *testing.T) {
	tree := domain.NewTree(domain.DefaultContainer)
	target := domain.NewTarget("libfoo.so", "modA", "modA/sub", "/src/", nil, nil)
	tree.Insert(target)

	tree.Move(target, "modB")

	old, ok := tree.Lookup("modA/sub")
	require.True(t, ok)
	assert.Empty(t, old.Targets)

	moved, ok := tree.Lookup("modB")
	require.True(t, ok)
	assert.Equal(t, []*domain.Target{target}, moved.Targets)
	assert.Equal(t, "modB", target.Path)
}

func TestTree_WalkChildrenFirst(t *testing.T) {
	tree := domain.NewTree(domain.DefaultContainer)
	tree.Node("b/c")
	tree.Node("a")

	var paths []string
	for n := range tree.Walk() {
		paths = append(paths, n.Path)
	}

	assert.Equal(t, []string{"b/c", "b", "a", ""}, paths)
	assert.True(t, slices.Equal([]string{"b", "a"}, tree.Root.Subdirectories()))
}
