package main

import (
	"context"
	"os"

	"depdm/internal/timing"
	"depdm/internal/util"
	"depdm/pkg/corpus"
	"depdm/pkg/loader"
	ioloader "depdm/pkg/loader/io"
	"depdm/pkg/logger"
	"depdm/pkg/logger/console"
)

// depdm runs extraction over local corpus files and writes the DISSECT
// export: depdm <corpus-file>...
func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	if len(os.Args) < 2 {
		logger.Fatal("No corpus files given", "usage", "depdm <corpus-file>...")
	}

	model, err := corpus.NewModel()
	if err != nil {
		logger.Fatal("Invalid template catalog", "err", err)
	}

	ctx := context.Background()
	shardLoader := ioloader.NewIOShardLoader()
	sw := timing.Start()

	for _, path := range os.Args[1:] {
		shard := loader.NewShard(loader.NewShardParams{
			ID:     path,
			Path:   path,
			Loader: shardLoader,
		})
		r, err := shard.Open(ctx)
		if err != nil {
			logger.Fatal("Failed to open corpus file", "file", path, "err", err)
		}
		if err := model.ProcessReader(r); err != nil {
			logger.Fatal("Failed to read corpus file", "file", path, "err", err)
		}
		logger.Info("Corpus file processed", "file", path)
	}

	stats := model.Stats()
	logger.Info("Extraction finished",
		"lines", stats.Lines,
		"skipped", stats.Skipped,
		"paths", stats.Paths,
		"words", model.Tensor().Words(),
		"links", model.Tensor().Links(),
		"duration", timing.Format(sw.Elapsed()),
	)

	exportDir := util.GetEnvString("EXPORT_DIR", ".")
	files, err := model.Export(exportDir)
	if err != nil {
		logger.Fatal("Failed to export tensor", "err", err)
	}
	logger.Info("Export written",
		"rows", files.Rows,
		"cols", files.Cols,
		"matrix", files.Matrix,
	)
}
