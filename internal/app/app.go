package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gobwas/glob"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/config"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/extract"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/generator"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/history"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/parser"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/shared/observability"
)

// Summary describes one scan across all configured source roots.
type Summary struct {
	Files      int
	Classes    int
	Interfaces int
	Enums      int
	Errors     int
	Duration   time.Duration
}

type App struct {
	Config    *config.Config
	Parser    *parser.Parser
	Generator generator.Generator
	History   *history.Store
}

func New(cfg *config.Config) (*App, error) {
	gen, err := generator.ForFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:    cfg,
		Parser:    parser.NewDefaultParser(),
		Generator: gen,
	}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, err
		}
		a.History = store
	}

	return a, nil
}

func (a *App) Close() error {
	return a.History.Close()
}

// Scan discovers all supported source files under the configured roots and
// regenerates their skeletons. Files are processed concurrently; each
// file's extraction is independent and holds no shared state.
func (a *App) Scan() (Summary, error) {
	start := time.Now()

	files, err := a.ScanDirectories(a.Config.SourcePaths, a.Config.Exclude.Dirs, a.Config.Exclude.Files)
	if err != nil {
		return Summary{}, err
	}

	summary := a.processFiles(files)
	summary.Duration = time.Since(start)

	observability.ScanDuration.Observe(summary.Duration.Seconds())

	if a.History != nil {
		_, err := a.History.SaveRun(history.Run{
			FileCount:      summary.Files,
			ClassCount:     summary.Classes,
			InterfaceCount: summary.Interfaces,
			EnumCount:      summary.Enums,
			ErrorCount:     summary.Errors,
			Duration:       summary.Duration,
		})
		if err != nil {
			slog.Warn("failed to record scan run", "error", err)
		}
	}

	return summary, nil
}

func (a *App) processFiles(files []string) Summary {
	var (
		summary Summary
		mu      sync.Mutex
		wg      sync.WaitGroup
	)

	jobs := make(chan string)
	workers := runtime.NumCPU()
	if workers > len(files) {
		workers = len(files)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				model, err := a.ProcessFile(path)

				mu.Lock()
				summary.Files++
				if err != nil {
					summary.Errors++
					slog.Warn("failed to process file", "path", path, "error", err)
				} else {
					summary.Classes += len(model.Classes)
					summary.Interfaces += len(model.Interfaces)
					summary.Enums += len(model.Enums)
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range files {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	return summary
}

// ProcessFile parses one source file, extracts its declaration model and
// writes the rendered skeleton.
func (a *App) ProcessFile(path string) (extract.SourceModel, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		observability.FilesProcessed.WithLabelValues("read_error").Inc()
		return extract.SourceModel{}, err
	}

	root, _, err := a.Parser.ParseFile(path, content)
	if err != nil {
		observability.FilesProcessed.WithLabelValues("parse_error").Inc()
		return extract.SourceModel{}, err
	}

	model := extract.Extract(root, path)
	observability.DeclarationsExtracted.WithLabelValues("class").Add(float64(len(model.Classes)))
	observability.DeclarationsExtracted.WithLabelValues("interface").Add(float64(len(model.Interfaces)))
	observability.DeclarationsExtracted.WithLabelValues("enum").Add(float64(len(model.Enums)))

	if err := a.writeSkeleton(path, model); err != nil {
		observability.FilesProcessed.WithLabelValues("write_error").Inc()
		return model, err
	}

	observability.FilesProcessed.WithLabelValues("ok").Inc()
	return model, nil
}

func (a *App) writeSkeleton(sourcePath string, model extract.SourceModel) error {
	genStart := time.Now()
	content, err := a.Generator.Generate(model)
	if err != nil {
		return err
	}
	observability.GenerationDuration.WithLabelValues(a.Generator.Format()).Observe(time.Since(genStart).Seconds())

	outPath, err := a.skeletonPath(sourcePath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return err
	}

	observability.SkeletonsWritten.Inc()
	slog.Debug("skeleton written", "source", sourcePath, "output", outPath)
	return nil
}

// skeletonPath mirrors the source file's location under the output dir,
// relative to the source root that contains it, with the generator's
// extension replacing the original one.
func (a *App) skeletonPath(sourcePath string) (string, error) {
	root, err := findContainingRoot(sourcePath, a.Config.SourcePaths)
	if err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(sourcePath)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(root, absPath)
	if err != nil {
		return "", err
	}

	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + a.Generator.Extension()
	return filepath.Join(a.Config.Output.Dir, rel), nil
}

func findContainingRoot(path string, roots []string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve file path %q: %w", path, err)
	}

	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("resolve source path %q: %w", root, err)
		}

		rel, err := filepath.Rel(absRoot, absPath)
		if err != nil {
			continue
		}
		if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))) {
			return absRoot, nil
		}
	}

	return "", fmt.Errorf("file %q is not under any configured source path", path)
}

// ScanDirectories walks the roots and returns every supported source file,
// honoring the exclude glob patterns.
func (a *App) ScanDirectories(paths []string, excludeDirs, excludeFiles []string) ([]string, error) {
	var files []string

	dirGlobs := make([]glob.Glob, 0, len(excludeDirs))
	for _, p := range excludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		dirGlobs = append(dirGlobs, g)
	}

	fileGlobs := make([]glob.Glob, 0, len(excludeFiles))
	for _, p := range excludeFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}
		fileGlobs = append(fileGlobs, g)
	}

	// Generated skeletons must never feed back into a scan.
	outDir := filepath.Clean(a.Config.Output.Dir)

	enabled := make(map[string]bool, len(a.Config.Languages))
	for _, lang := range a.Config.Languages {
		enabled[lang] = true
	}

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)
			if d.IsDir() {
				if filepath.Clean(path) == outDir {
					return filepath.SkipDir
				}
				for _, g := range dirGlobs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				return nil
			}

			if !a.Parser.Supported(path) {
				return nil
			}
			if len(enabled) > 0 && !enabled[parser.DetectLanguage(path)] {
				return nil
			}

			for _, g := range fileGlobs {
				if g.Match(base) {
					return nil
				}
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// HandleChanges regenerates skeletons for changed files and removes
// skeletons whose source disappeared. Used by watch mode.
func (a *App) HandleChanges(paths []string) {
	slog.Info("detected changes", "count", len(paths))
	start := time.Now()

	processed := 0
	for _, path := range paths {
		if !a.Parser.Supported(path) {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if outPath, err := a.skeletonPath(path); err == nil {
				if err := os.Remove(outPath); err != nil && !os.IsNotExist(err) {
					slog.Warn("failed to remove stale skeleton", "path", outPath, "error", err)
				}
			}
			continue
		}

		if _, err := a.ProcessFile(path); err != nil {
			slog.Warn("failed to re-process file", "path", path, "error", err)
			continue
		}
		processed++
	}

	slog.Info("regeneration complete", "files", processed, "duration", time.Since(start))
}
