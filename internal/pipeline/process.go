package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/cbzbinder/internal/archive"
	"github.com/backmassage/cbzbinder/internal/config"
	"github.com/backmassage/cbzbinder/internal/display"
	"github.com/backmassage/cbzbinder/internal/logging"
	"github.com/backmassage/cbzbinder/internal/naming"
	"github.com/backmassage/cbzbinder/internal/planner"
	"github.com/backmassage/cbzbinder/internal/worklist"
)

// processDirectory handles one table row whose folder is known to exist:
// classify → move specials → plan → merge batches → report leftovers.
func processDirectory(
	cfg *config.Config,
	log *logging.Logger,
	row worklist.Row,
	spec planner.BatchSpec,
	stats *RunStats,
) {
	folder := filepath.Join(cfg.RootDir, row.Folder)

	names, err := ListArchives(folder)
	if err != nil {
		log.Error("Cannot list '%s': %v", row.Folder, err)
		stats.Failed++
		return
	}
	if len(names) == 0 {
		log.Info("No comic archives found in '%s'", row.Folder)
		return
	}

	part := naming.Classify(names, row.AvoidVolumes)

	moveSpecials(cfg, log, folder, part.Special, stats)

	if len(part.Volumes) > 0 {
		log.Info("Skipping %d files with volume pattern: %s",
			len(part.Volumes), display.FormatFileList(part.Volumes, 5))
	}

	// New volumes continue after the highest existing volume number.
	volume := 1
	if max := naming.HighestVolume(part.Volumes); max > 0 {
		volume = max + 1
		log.Info("Found existing volumes up to V%03d, starting new volumes from V%03d", max, volume)
	}

	if len(part.Regular) == 0 {
		log.Info("No regular archives to merge in '%s'", row.Folder)
		return
	}

	plan := planner.Plan(len(part.Regular), spec, row.NoExtra)
	log.Info("Will create %d volumes with sizes %v", len(plan), plan)

	cursor := 0
	for _, size := range plan {
		batch := part.Regular[cursor : cursor+size]
		cursor += size
		mergeBatch(cfg, log, row, folder, batch, volume, stats)
		volume++
	}

	if cursor < len(part.Regular) {
		left := part.Regular[cursor:]
		stats.Remaining += len(left)
		log.Info("Left %d files as individual archives: %s",
			len(left), display.FormatFileList(left, 5))
	}
}

// moveSpecials relocates special files into the specials subdirectory,
// creating it on demand. Failures are logged per file; the remaining
// specials are still attempted.
func moveSpecials(cfg *config.Config, log *logging.Logger, folder string, specials []string, stats *RunStats) {
	if len(specials) == 0 {
		return
	}

	dest := filepath.Join(folder, cfg.SpecialsDir)
	if cfg.DryRun {
		for _, name := range specials {
			log.Info("[DRY] Would move to %s: %s", cfg.SpecialsDir, name)
		}
		stats.SpecialsMoved += len(specials)
		return
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		log.Error("Cannot create %s directory: %v", cfg.SpecialsDir, err)
		stats.Failed += len(specials)
		return
	}
	for _, name := range specials {
		if err := os.Rename(filepath.Join(folder, name), filepath.Join(dest, name)); err != nil {
			log.Error("Failed to move %s to %s: %v", name, cfg.SpecialsDir, err)
			stats.Failed++
			continue
		}
		log.Info("Moved to %s: %s", cfg.SpecialsDir, name)
		stats.SpecialsMoved++
	}
}

// mergeBatch extracts every page from the batch's source archives (in batch
// order, pages sorted within each archive) and writes them as one output
// volume with consecutively renumbered pages. Sources that fail to read are
// excluded from the volume and never deleted.
func mergeBatch(
	cfg *config.Config,
	log *logging.Logger,
	row worklist.Row,
	folder string,
	batch []string,
	volume int,
	stats *RunStats,
) {
	outName := naming.VolumeName(row.Folder, volume)
	log.Info("Building %s from %d source files", outName, len(batch))

	var images []archive.PageImage
	var consumed []string
	for _, name := range batch {
		imgs, err := archive.ReadImages(filepath.Join(folder, name), cfg.ImageExtensionSet())
		if err != nil {
			log.Error("Cannot extract %s: %v", name, err)
			stats.Failed++
			continue
		}
		log.Debug("Extracted %s (%d images)", name, len(imgs))
		images = append(images, imgs...)
		consumed = append(consumed, name)
	}

	if len(images) == 0 {
		log.Warn("No images found for %s, skipping batch", outName)
		stats.EmptyBatches++
		return
	}

	if cfg.DryRun {
		log.Info("[DRY] Would create %s (%d pages from %d sources)", outName, len(images), len(consumed))
		stats.VolumesMade++
		stats.Merged += len(consumed)
		return
	}

	written, err := archive.WriteVolume(filepath.Join(folder, outName), images)
	if err != nil {
		log.Error("Failed to create %s: %v", outName, err)
		stats.Failed++
		return
	}
	log.Info("Created %s (%d pages, %s)", outName, len(images), display.FormatBytes(written))
	stats.VolumesMade++
	stats.Merged += len(consumed)
	stats.BytesWritten += written

	if row.DeleteOriginals {
		for _, name := range consumed {
			if err := os.Remove(filepath.Join(folder, name)); err != nil {
				log.Error("Failed to delete %s: %v", name, err)
				stats.Failed++
				continue
			}
			log.Debug("Deleted %s", name)
			stats.Deleted++
		}
	}
}
