// # internal/extract/visibility.go
package extract

import "github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"

// Inclusion predicates per member kind. Type declarations themselves are
// always extracted regardless of accessibility; members must carry an
// explicit accessibility keyword. Implicit/default visibility is never
// promoted, so an unmarked method or property is excluded.

func includeProperty(n syntax.Node) bool {
	mods := n.Modifiers()
	return hasToken(mods, "public") || hasToken(mods, "internal") || hasToken(mods, "protected")
}

func includeMethod(n syntax.Node) bool {
	return hasToken(n.Modifiers(), "public")
}

func includeConstructor(n syntax.Node) bool {
	return hasToken(n.Modifiers(), "public")
}

// filterVisible returns the nodes satisfying the predicate, preserving order.
func filterVisible(nodes []syntax.Node, include func(syntax.Node) bool) []syntax.Node {
	var visible []syntax.Node
	for _, n := range nodes {
		if include(n) {
			visible = append(visible, n)
		}
	}
	return visible
}
