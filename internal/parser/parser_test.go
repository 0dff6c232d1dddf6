// # internal/parser/parser_test.go
package parser

import (
	"testing"

	derr "github.com/cordeiro-rubens/SkeletonGenerator/internal/errors"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"
)

func TestDetectLanguage(t *testing.T) {
	cases := []struct {
		path     string
		expected string
	}{
		{"model.cs", "csharp"},
		{"src/index.ts", "typescript"},
		{"Main.java", "java"},
		{"README.md", ""},
		{"script.py", ""},
	}

	for _, tc := range cases {
		if got := DetectLanguage(tc.path); got != tc.expected {
			t.Errorf("DetectLanguage(%q) = %q, expected %q", tc.path, got, tc.expected)
		}
	}
}

func TestSupported(t *testing.T) {
	p := NewDefaultParser()

	if !p.Supported("service.cs") {
		t.Error("expected .cs to be supported")
	}
	if !p.Supported("app.ts") {
		t.Error("expected .ts to be supported")
	}
	if !p.Supported("App.java") {
		t.Error("expected .java to be supported")
	}
	if p.Supported("notes.txt") {
		t.Error("expected .txt to be unsupported")
	}
}

func TestParseFileUnsupportedExtension(t *testing.T) {
	p := NewDefaultParser()

	_, _, err := p.ParseFile("notes.txt", []byte("hello"))
	if err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
	if !derr.IsCode(err, derr.CodeNotSupported) {
		t.Errorf("expected CodeNotSupported, got %v", err)
	}
}

func TestParseFileReturnsLanguage(t *testing.T) {
	p := NewDefaultParser()

	root, lang, err := p.ParseFile("a.cs", []byte("public class A {}"))
	if err != nil {
		t.Fatal(err)
	}
	if lang != "csharp" {
		t.Errorf("expected language csharp, got %q", lang)
	}
	if root.Kind() != syntax.KindSource {
		t.Errorf("expected a source root, got %s", root.Kind())
	}
}

// findAll walks the adapted tree and returns every node of the given kind.
func findAll(root syntax.Node, kind syntax.Kind) []syntax.Node {
	var out []syntax.Node
	var walk func(n syntax.Node)
	walk = func(n syntax.Node) {
		if n.Kind() == kind {
			out = append(out, n)
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	return out
}

func parseWith(t *testing.T, path, source string) syntax.Node {
	t.Helper()
	root, _, err := NewDefaultParser().ParseFile(path, []byte(source))
	if err != nil {
		t.Fatal(err)
	}
	return root
}
