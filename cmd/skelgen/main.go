// # cmd/skelgen/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cordeiro-rubens/SkeletonGenerator/internal/app"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/config"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/history"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/shared/util"
	"github.com/cordeiro-rubens/SkeletonGenerator/internal/watcher"
)

var (
	configPath  = flag.String("config", "./skelgen.toml", "Path to config file")
	outDir      = flag.String("out", "", "Output directory (overrides config)")
	format      = flag.String("format", "", "Output format: typescript, csharp, plantuml (overrides config)")
	watch       = flag.Bool("watch", false, "Watch source paths and regenerate on change")
	trends      = flag.Bool("trends", false, "Print recent scan runs and exit")
	metricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("skelgen v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) || *configPath != "./skelgen.toml" {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}
	if flag.NArg() > 0 {
		cfg.SourcePaths = flag.Args()
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *format != "" {
		cfg.Output.Format = *format
	}

	if *trends {
		printTrends(cfg)
		return
	}

	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr)
	}

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	summary, err := a.Scan()
	if err != nil {
		slog.Error("scan failed", "error", err)
		os.Exit(1)
	}
	slog.Info("scan complete",
		"files", summary.Files,
		"classes", summary.Classes,
		"interfaces", summary.Interfaces,
		"enums", summary.Enums,
		"errors", summary.Errors,
		"duration", summary.Duration,
	)

	if !*watch {
		return
	}

	limiter := util.NewLimiter(cfg.Watch.RatePerSecond, cfg.Watch.Burst)
	w, err := watcher.NewWatcher(cfg.Watch.Debounce, cfg.Exclude.Dirs, cfg.Exclude.Files, func(paths []string) {
		if err := limiter.Wait(context.Background(), 1); err != nil {
			return
		}
		a.HandleChanges(paths)
	})
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := w.Watch(cfg.SourcePaths); err != nil {
		slog.Error("failed to watch source paths", "error", err)
		os.Exit(1)
	}
	slog.Info("watching for changes", "paths", cfg.SourcePaths)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}

func printTrends(cfg *config.Config) {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		slog.Error("failed to open history", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(20)
	if err != nil {
		slog.Error("failed to load runs", "error", err)
		os.Exit(1)
	}

	for _, run := range runs {
		fmt.Printf("%s  files=%d classes=%d interfaces=%d enums=%d errors=%d duration=%s\n",
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.FileCount, run.ClassCount, run.InterfaceCount, run.EnumCount, run.ErrorCount, run.Duration)
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics server stopped", "error", err)
	}
}
