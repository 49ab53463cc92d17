package pipeline

// RunStats tracks aggregate counters across one run.
type RunStats struct {
	Rows        int // table rows seen
	Processed   int // rows whose folder was processed
	SkippedRows int // ignored, blank-spec, invalid, or missing-folder rows

	SpecialsMoved int
	VolumesMade   int
	EmptyBatches  int // planned batches that yielded no images
	Merged        int // source archives consumed into volumes
	Deleted       int // source archives removed after merging
	Remaining     int // regular files left unconsumed by the plan
	Failed        int // file-level failures (corrupt source, write, move, delete)

	BytesWritten int64
}
