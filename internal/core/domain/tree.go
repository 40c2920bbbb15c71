package domain

import (
	"iter"
	"path"
	"slices"
	"strings"
)

// Node is one directory of the build tree.
type Node struct {
	// Module is inherited from the parent unless this node starts a new module.
	Module string
	// Path is the module-root-relative path of the directory.
	Path string
	// Parent is nil for the synthetic root.
	Parent *Node
	// Targets are the artifacts built in this directory.
	Targets []*Target
	// IncludePaths is set by overrides for module boundary nodes.
	IncludePaths []string
	// Refresh lists scripts that generate files for this module.
	Refresh []string
	// Generate is false only for the synthetic root.
	Generate bool

	children map[string]*Node
	order    []string
}

// Tree is the hierarchical build tree, one node per distinct path.
type Tree struct {
	Root *Node
	// Container is the segment that groups modules without being one itself.
	Container string
}

// NewTree creates a tree holding only the synthetic, non-generating root.
func NewTree(container string) *Tree {
	return &Tree{
		Root:      &Node{Path: "", children: make(map[string]*Node)},
		Container: container,
	}
}

// SplitPath normalises a relative path and splits it into segments.
// The root itself ("", ".") has no segments.
func SplitPath(p string) []string {
	clean := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if clean == "." || clean == "/" {
		return nil
	}
	return strings.Split(strings.Trim(clean, "/"), "/")
}

// Node returns the node for a relative path, creating any missing nodes on the way.
func (t *Tree) Node(p string) *Node {
	n := t.Root
	for _, seg := range SplitPath(p) {
		n = t.child(n, seg)
	}
	return n
}

// Lookup returns the node for a relative path without creating it.
func (t *Tree) Lookup(p string) (*Node, bool) {
	n := t.Root
	for _, seg := range SplitPath(p) {
		next, ok := n.children[seg]
		if !ok {
			return nil, false
		}
		n = next
	}
	return n, true
}

func (t *Tree) child(n *Node, seg string) *Node {
	if c, ok := n.children[seg]; ok {
		return c
	}

	module := n.Module
	if module == "" && seg != t.Container {
		module = seg
	}

	c := &Node{
		Module:   module,
		Path:     path.Join(n.Path, seg),
		Parent:   n,
		Generate: true,
		children: make(map[string]*Node),
	}
	n.children[seg] = c
	n.order = append(n.order, seg)
	return c
}

// Insert adds a target to the node at its path.
func (t *Tree) Insert(target *Target) *Node {
	n := t.Node(target.Path)
	n.Targets = append(n.Targets, target)
	return n
}

// Move detaches a target from its current node and attaches it at newPath.
func (t *Tree) Move(target *Target, newPath string) {
	if n, ok := t.Lookup(target.Path); ok {
		n.Remove(target)
	}
	target.Path = newPath
	t.Insert(target)
}

// Walk yields every node, children before their parent, in insertion order.
func (t *Tree) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		t.Root.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	for _, seg := range n.order {
		if !n.children[seg].walk(yield) {
			return false
		}
	}
	return yield(n)
}

// Remove detaches a target from this node. It reports whether it was present.
func (n *Node) Remove(target *Target) bool {
	i := slices.Index(n.Targets, target)
	if i < 0 {
		return false
	}
	n.Targets = slices.Delete(n.Targets, i, i+1)
	return true
}

// Subdirectories returns the child segment names in insertion order.
func (n *Node) Subdirectories() []string {
	return slices.Clone(n.order)
}

// IsModuleBoundary reports whether this node starts a module different from its parent's.
func (n *Node) IsModuleBoundary() bool {
	return n.Parent != nil && n.Module != n.Parent.Module
}
