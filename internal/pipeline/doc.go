// Package pipeline orchestrates a run: it reads the configuration table,
// processes each row's folder in file order, and reports aggregate stats.
//
// Per folder the processing order is fixed so output is deterministic:
// list archives sorted by name, classify (specials take precedence over
// volume-tagged files), relocate specials, derive the starting volume
// number from existing volume tags, plan batches, then merge each batch
// into one renumbered output volume, optionally deleting the consumed
// sources. Files the plan leaves uncovered stay in place and are reported.
//
// Everything runs sequentially: one row, one batch, one source archive at a
// time. A batch's extracted images are held in memory only until its volume
// is written.
package pipeline
