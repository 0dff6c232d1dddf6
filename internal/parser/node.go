// # internal/parser/node.go
package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"
)

// node is the materialized syntax.Node implementation produced by the
// language adapters. The tree-sitter tree is released after adaptation, so
// every capability is captured eagerly.
type node struct {
	kind      syntax.Kind
	name      string
	modifiers []string
	typeText  string
	valueText string
	literal   bool
	children  []syntax.Node
}

func (n *node) Kind() syntax.Kind     { return n.kind }
func (n *node) Name() string          { return n.name }
func (n *node) Modifiers() []string   { return n.modifiers }
func (n *node) TypeText() string      { return n.typeText }
func (n *node) ValueText() string     { return n.valueText }
func (n *node) HasLiteralValue() bool { return n.literal }
func (n *node) Children() []syntax.Node {
	return n.children
}

func nodeText(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return string(source[n.StartByte():n.EndByte()])
}

func findChildByKind(n *sitter.Node, kind string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// identifierText resolves a declaration's name: the "name" field when the
// grammar exposes one, otherwise the first identifier-like child.
func identifierText(n *sitter.Node, source []byte, fallbackKinds ...string) string {
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		return nodeText(nameNode, source)
	}
	for _, kind := range fallbackKinds {
		if child := findChildByKind(n, kind); child != nil {
			return nodeText(child, source)
		}
	}
	return ""
}

// convertFn turns one grammar node into zero or more normalized nodes.
type convertFn func(n *sitter.Node, source []byte) []syntax.Node

// convertChildren flattens a grammar node's children through convert, so
// structural wrappers (namespaces, declaration lists, bodies) disappear and
// declaration order is preserved.
func convertChildren(n *sitter.Node, source []byte, convert convertFn) []syntax.Node {
	var out []syntax.Node
	for i := uint(0); i < n.ChildCount(); i++ {
		out = append(out, convert(n.Child(i), source)...)
	}
	return out
}

// sourceRoot wraps the converted top-level declarations of one file.
func sourceRoot(root *sitter.Node, source []byte, convert convertFn) syntax.Node {
	return &node{
		kind:     syntax.KindSource,
		children: convertChildren(root, source, convert),
	}
}
