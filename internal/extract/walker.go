// # internal/extract/walker.go
package extract

import "github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"

// Collect returns every descendant of root with the given kind, in
// depth-first pre-order, which matches the order declarations appear in
// source text. Nested declarations are returned flat, not attached to their
// container. Pure function of the tree.
func Collect(root syntax.Node, kind syntax.Kind) []syntax.Node {
	var nodes []syntax.Node
	walk(root, func(n syntax.Node) bool {
		if n != root && n.Kind() == kind {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// CollectScoped returns descendants of container with the given kind,
// depth-first pre-order, without crossing into nested type declarations.
// Member extraction uses this so a nested class's members stay with the
// nested class.
func CollectScoped(container syntax.Node, kind syntax.Kind) []syntax.Node {
	var nodes []syntax.Node
	walk(container, func(n syntax.Node) bool {
		if n != container && isTypeDeclaration(n.Kind()) {
			return false
		}
		if n != container && n.Kind() == kind {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

func isTypeDeclaration(k syntax.Kind) bool {
	return k == syntax.KindClass || k == syntax.KindInterface || k == syntax.KindEnum
}

func walk(node syntax.Node, visitor func(syntax.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for _, child := range node.Children() {
		walk(child, visitor)
	}
}
