// Package worklist reads the CSV configuration table that drives a run.
//
// Each row names one folder to process:
//
//	folder, batch-spec [, no-extra [, avoid-volumes [, delete-originals [, ignore]]]]
//
// The batch-spec column uses the planner grammar ("5" or "3,4,5"). The four
// boolean columns accept true/false, yes/no, 1/0, t/f and y/n in any case;
// a missing or blank cell takes the column default (true for the first
// three, false for ignore). A row with any malformed boolean falls back to
// the full default set rather than aborting the run.
package worklist
