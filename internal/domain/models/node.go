package models

import (
	"sort"
	"strings"
)

// Node is a position in a deployment manifest. Keyed maps and fixed-field
// records expose the same lookup so a path walk never needs to know which
// kind of node it is standing on.
type Node interface {
	// Child returns the node stored under key, or false when it is absent or null.
	Child(key string) (Node, bool)
	// Keys lists the keys whose children are present, in schema order.
	Keys() []string
}

// Scalar is a leaf value in the manifest
type Scalar struct {
	Value string
}

func (Scalar) Child(string) (Node, bool) { return nil, false }
func (Scalar) Keys() []string            { return nil }

func (s Scalar) String() string { return s.Value }

// Walk follows keys from root and returns the node at the end of the path.
// It returns false as soon as a step is missing.
func Walk(root Node, keys []string) (Node, bool) {
	if root == nil {
		return nil, false
	}
	current := root
	for _, key := range keys {
		next, ok := current.Child(key)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// ContractEntry is a recorded contract together with its manifest path
type ContractEntry struct {
	Path     []string
	Contract *Contract
}

// Key returns the dotted manifest path of the entry
func (e ContractEntry) Key() string {
	return strings.Join(e.Path, ".")
}

// Contracts enumerates every contract recorded under root, depth first in
// schema order. Paths are relative to the manifest root when root is the
// whole DeploymentConfig.
func Contracts(root Node) []ContractEntry {
	var entries []ContractEntry
	var visit func(n Node, path []string)
	visit = func(n Node, path []string) {
		switch v := n.(type) {
		case *Contract:
			entries = append(entries, ContractEntry{Path: clonePath(path), Contract: v})
			return
		case *MetaregistryContract:
			entries = append(entries, ContractEntry{Path: clonePath(path), Contract: &v.Contract})
			if v.RegistryHandlers != nil {
				visit(v.RegistryHandlers, append(path, "registry_handlers"))
			}
			return
		case Scalar, *ChainParameters:
			return
		}
		for _, key := range n.Keys() {
			child, ok := n.Child(key)
			if !ok {
				continue
			}
			visit(child, append(path, key))
		}
	}
	if root != nil {
		visit(root, nil)
	}
	return entries
}

// Paths lists the dotted paths of every structural node below root.
// Used to suggest corrections for mistyped lookups.
func Paths(root Node) []string {
	var out []string
	var visit func(n Node, path []string)
	visit = func(n Node, path []string) {
		if len(path) > 0 {
			out = append(out, strings.Join(path, "."))
		}
		if _, ok := n.(Scalar); ok {
			return
		}
		for _, key := range n.Keys() {
			if child, ok := n.Child(key); ok {
				visit(child, append(path, key))
			}
		}
	}
	if root != nil {
		visit(root, nil)
	}
	sort.Strings(out)
	return out
}

func clonePath(path []string) []string {
	out := make([]string, len(path))
	copy(out, path)
	return out
}

// optional turns a possibly-nil record pointer into a lookup result
func optional[T any, PT interface {
	*T
	Node
}](p PT) (Node, bool) {
	if p == nil {
		return nil, false
	}
	return p, true
}

func scalar(v string) (Node, bool) {
	if v == "" {
		return nil, false
	}
	return Scalar{Value: v}, true
}

func optionalScalar(v *string) (Node, bool) {
	if v == nil {
		return nil, false
	}
	return Scalar{Value: *v}, true
}

func presentKeys(n Node, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := n.Child(key); ok {
			out = append(out, key)
		}
	}
	return out
}
