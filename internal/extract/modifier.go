// # internal/extract/modifier.go
package extract

// modifierRules is the ranked rule list for collapsing a declaration's raw
// modifier token set into one ModifierKind. Evaluated top to bottom, first
// match wins; a declaration carrying "public static" therefore resolves to
// ModifierStatic. Unmatched token sets fall through to ModifierPrivate.
var modifierRules = []struct {
	token  string
	result ModifierKind
}{
	{"static", ModifierStatic},
	{"public", ModifierPublic},
	{"internal", ModifierInternal},
	{"protected", ModifierProtected},
}

// ResolveModifier maps a raw modifier token set to exactly one ModifierKind.
func ResolveModifier(tokens []string) ModifierKind {
	for _, rule := range modifierRules {
		if hasToken(tokens, rule.token) {
			return rule.result
		}
	}
	return ModifierPrivate
}

func hasToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
