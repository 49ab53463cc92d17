// Package planner computes how many source archives go into each output
// volume. It is the decision core of the tool: given a file count and a
// batch-size specification, it produces the ordered list of batch sizes the
// pipeline consumes.
//
// A specification is either repeating (a single size applied until the files
// run out) or an explicit ordered list of sizes. In either mode the returned
// plan is fully clamped: every entry is the exact number of files the batch
// consumes, the entries sum to the number of files covered, and no entry is
// zero or negative. Files not covered by the plan (suppress-remainder mode)
// are the caller's to report.
package planner
