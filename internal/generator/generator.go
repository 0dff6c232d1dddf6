// # internal/generator/generator.go
//
// Package generator renders an extracted declaration model into skeleton
// output. Generators are pure: they consume the model and return text.
package generator

import (
	derr "github.com/cordeiro-rubens/SkeletonGenerator/internal/errors"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/extract"
)

type Generator interface {
	// Format is the name the generator registers under.
	Format() string
	// Extension is the file extension for written skeletons, dot included.
	Extension() string
	Generate(model extract.SourceModel) (string, error)
}

// ForFormat returns the generator registered under the given name.
func ForFormat(format string) (Generator, error) {
	for _, g := range All() {
		if g.Format() == format {
			return g, nil
		}
	}
	return nil, derr.New(derr.CodeNotSupported, "unknown output format").
		WithContext(derr.CtxFormat, format)
}

// All returns every wired generator.
func All() []Generator {
	return []Generator{
		&TypeScriptGenerator{},
		&CSharpGenerator{},
		&PlantUMLGenerator{},
	}
}
