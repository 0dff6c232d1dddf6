// # internal/parser/parser.go
//
// Package parser is the tree-sitter front end. It parses raw source text
// and adapts the grammar-specific tree onto the normalized node surface in
// internal/syntax; the extraction engine never touches tree-sitter types.
package parser

import (
	"path/filepath"
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"

	derr "github.com/cordeiro-rubens/SkeletonGenerator/internal/errors"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/shared/observability"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/syntax"
)

// Adapter maps one grammar's concrete node kinds onto syntax.Node trees.
type Adapter interface {
	Language() string
	Adapt(root *sitter.Node, source []byte) syntax.Node
}

type Parser struct {
	loader   *GrammarLoader
	adapters map[string]Adapter
}

func NewParser(loader *GrammarLoader) *Parser {
	return &Parser{
		loader:   loader,
		adapters: make(map[string]Adapter),
	}
}

// NewDefaultParser returns a parser with every supported language wired.
func NewDefaultParser() *Parser {
	p := NewParser(NewGrammarLoader())
	p.RegisterAdapter(&CSharpAdapter{})
	p.RegisterAdapter(&TypeScriptAdapter{})
	p.RegisterAdapter(&JavaAdapter{})
	return p
}

func (p *Parser) RegisterAdapter(a Adapter) {
	p.adapters[a.Language()] = a
}

// Supported reports whether the file's extension maps to a wired language.
func (p *Parser) Supported(path string) bool {
	lang := DetectLanguage(path)
	if lang == "" {
		return false
	}
	_, ok := p.adapters[lang]
	return ok
}

// ParseFile parses one file's content and returns the normalized tree root
// plus the detected language.
func (p *Parser) ParseFile(path string, content []byte) (syntax.Node, string, error) {
	lang := DetectLanguage(path)
	if lang == "" {
		return nil, "", derr.New(derr.CodeNotSupported, "unsupported language").
			WithContext(derr.CtxPath, path)
	}

	grammar := p.loader.Language(lang)
	if grammar == nil {
		return nil, "", derr.New(derr.CodeNotSupported, "grammar not loaded").
			WithContext(derr.CtxLanguage, lang)
	}

	adapter := p.adapters[lang]
	if adapter == nil {
		return nil, "", derr.New(derr.CodeNotSupported, "no adapter for language").
			WithContext(derr.CtxLanguage, lang)
	}

	start := time.Now()

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, "", derr.New(derr.CodeParseError, "parse failed").
			WithContext(derr.CtxPath, path).
			WithContext(derr.CtxLanguage, lang)
	}
	defer tree.Close()

	root := adapter.Adapt(tree.RootNode(), content)
	observability.ParsingDuration.WithLabelValues(lang).Observe(time.Since(start).Seconds())

	return root, lang, nil
}

// DetectLanguage maps a file extension to a language name, empty when the
// extension is not recognized.
func DetectLanguage(path string) string {
	switch filepath.Ext(path) {
	case ".cs":
		return "csharp"
	case ".ts":
		return "typescript"
	case ".java":
		return "java"
	default:
		return ""
	}
}
