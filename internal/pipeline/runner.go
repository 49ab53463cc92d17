package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/cbzbinder/internal/config"
	"github.com/backmassage/cbzbinder/internal/display"
	"github.com/backmassage/cbzbinder/internal/logging"
	"github.com/backmassage/cbzbinder/internal/planner"
	"github.com/backmassage/cbzbinder/internal/worklist"
)

// Run is the top-level entry point. It loads the configuration table and
// processes each row strictly in file order. An unreadable table is the only
// fatal error; every other problem is logged against its row or file and
// the run continues.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	tablePath := filepath.Join(cfg.RootDir, cfg.TableFile)
	rows, err := worklist.Load(tablePath, worklist.Defaults{
		NoExtra:         cfg.DefaultNoExtra,
		AvoidVolumes:    cfg.DefaultAvoidVolumes,
		DeleteOriginals: cfg.DefaultDeleteOriginals,
	})
	if err != nil {
		return stats, err
	}

	log.Info("Read %d configuration rows from %s", len(rows), cfg.TableFile)
	if cfg.DryRun {
		log.Warn("DRY RUN — nothing will be written, moved, or deleted")
	}

	for _, row := range rows {
		stats.Rows++

		if row.BoolErr != nil {
			log.Error("Row %d: %v, using defaults", row.Line, row.BoolErr)
		}
		if row.Ignore {
			log.Info("Row %d: '%s' marked as ignored, skipping", row.Line, row.Folder)
			stats.SkippedRows++
			continue
		}
		if row.Folder == "" {
			log.Error("Row %d: missing folder name, skipping", row.Line)
			stats.SkippedRows++
			continue
		}
		if row.Spec == "" {
			log.Info("Row %d: no batch size specified for '%s', skipping", row.Line, row.Folder)
			stats.SkippedRows++
			continue
		}

		spec, err := planner.ParseBatchSpec(row.Spec)
		if err != nil {
			log.Error("Row %d: invalid batch configuration for '%s': %v", row.Line, row.Folder, err)
			stats.SkippedRows++
			continue
		}

		folder := filepath.Join(cfg.RootDir, row.Folder)
		if fi, err := os.Stat(folder); err != nil || !fi.IsDir() {
			log.Warn("Folder '%s' does not exist, skipping", row.Folder)
			stats.SkippedRows++
			continue
		}

		log.Info("Processing '%s' (batch: %s, no-extra: %v, avoid-volumes: %v, delete: %v)",
			row.Folder, spec, row.NoExtra, row.AvoidVolumes, row.DeleteOriginals)
		processDirectory(cfg, log, row, spec, &stats)
		stats.Processed++
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d folders processed, %d rows skipped", stats.Processed, stats.SkippedRows)
	log.Info("  Volumes created: %d (%d sources merged, %d empty batches)",
		stats.VolumesMade, stats.Merged, stats.EmptyBatches)
	log.Info("  Specials moved: %d", stats.SpecialsMoved)
	log.Info("  Sources deleted: %d, left in place: %d", stats.Deleted, stats.Remaining)
	if stats.Failed > 0 {
		log.Warn("  Failures: %d (see log for details)", stats.Failed)
	}
	if cfg.DryRun {
		log.Info("  Bytes written: n/a (dry run)")
		return
	}
	log.Info("  Bytes written: %s", display.FormatBytes(stats.BytesWritten))
}
