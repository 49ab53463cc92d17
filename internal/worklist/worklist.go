package worklist

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Row is one parsed configuration table row.
type Row struct {
	Line   int    // 1-based row number in the table, for log messages
	Folder string // folder name relative to the root directory
	Spec   string // raw batch-spec string; empty means "skip this row"

	NoExtra         bool // suppress the remainder batch
	AvoidVolumes    bool // set aside files that already carry a volume tag
	DeleteOriginals bool // remove consumed sources after a successful merge
	Ignore          bool // skip the row entirely

	// BoolErr records a malformed boolean cell. When set, all four flags
	// hold their defaults; the caller decides how loudly to report it.
	BoolErr error
}

// Defaults holds the fallback values for the optional boolean columns.
// Ignore always defaults to false.
type Defaults struct {
	NoExtra         bool
	AvoidVolumes    bool
	DeleteOriginals bool
}

// Load reads the configuration table at path. Rows whose cells are all
// blank are dropped; everything else is returned in file order, including
// rows the pipeline will skip (blank spec, ignore flag), so skips can be
// logged with their row numbers.
func Load(path string, def Defaults) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open configuration table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // optional boolean columns
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read configuration table: %w", err)
	}

	var rows []Row
	for i, record := range records {
		if blankRecord(record) {
			continue
		}
		rows = append(rows, parseRow(i+1, record, def))
	}
	return rows, nil
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow fills a Row from one CSV record, applying column defaults. Any
// malformed boolean cell resets all four flags to their defaults and records
// the error on the row.
func parseRow(line int, record []string, def Defaults) Row {
	row := Row{
		Line:            line,
		Folder:          strings.TrimSpace(cell(record, 0)),
		Spec:            strings.TrimSpace(cell(record, 1)),
		NoExtra:         def.NoExtra,
		AvoidVolumes:    def.AvoidVolumes,
		DeleteOriginals: def.DeleteOriginals,
	}

	var err error
	if row.NoExtra, err = parseCell(record, 2, def.NoExtra); err == nil {
		if row.AvoidVolumes, err = parseCell(record, 3, def.AvoidVolumes); err == nil {
			if row.DeleteOriginals, err = parseCell(record, 4, def.DeleteOriginals); err == nil {
				row.Ignore, err = parseCell(record, 5, false)
			}
		}
	}
	if err != nil {
		row.NoExtra = def.NoExtra
		row.AvoidVolumes = def.AvoidVolumes
		row.DeleteOriginals = def.DeleteOriginals
		row.Ignore = false
		row.BoolErr = err
	}
	return row
}

func cell(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseCell(record []string, idx int, def bool) (bool, error) {
	return ParseBool(cell(record, idx), def)
}

// ParseBool parses a boolean table cell. A blank value returns def.
// Accepted tokens (case-insensitive): true/false, yes/no, 1/0, t/f, y/n.
func ParseBool(value string, def bool) (bool, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "":
		return def, nil
	case "true", "yes", "1", "t", "y":
		return true, nil
	case "false", "no", "0", "f", "n":
		return false, nil
	default:
		return def, fmt.Errorf("invalid boolean value %q", value)
	}
}
