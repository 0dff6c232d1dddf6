package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParsingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skelgen_parsing_seconds",
		Help:    "Time spent parsing a source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	FilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skelgen_files_processed_total",
		Help: "Total number of source files processed, by outcome.",
	}, []string{"outcome"})

	DeclarationsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skelgen_declarations_extracted_total",
		Help: "Total number of declarations extracted, by kind.",
	}, []string{"kind"})

	SkeletonsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skelgen_skeletons_written_total",
		Help: "Total number of skeleton files written.",
	})

	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skelgen_generation_seconds",
		Help:    "Time spent rendering skeleton output.",
		Buckets: prometheus.DefBuckets,
	}, []string{"format"})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skelgen_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skelgen_scan_seconds",
		Help:    "Wall time for a full scan across all source roots.",
		Buckets: prometheus.DefBuckets,
	})
)
