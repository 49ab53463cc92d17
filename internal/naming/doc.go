// Package naming classifies comic archive filenames and builds output names.
//
// Classification is purely pattern-based (no word-boundary anchoring),
// matching the conventions found in scanlation releases:
//
//   - "SP" followed by exactly two digits marks a special/bonus issue
//     (e.g. "Series SP01.cbz").
//   - "V" followed by one or more digits marks an already-bound volume
//     (e.g. "Series V003.cbz").
//
// Because matching is substring-based, names containing coincidental
// "V<digits>" or "SP<digits><digits>" sequences are classified too. That is
// intentional parity with how existing libraries are organized; see the
// classify tests for the documented edge cases.
package naming
