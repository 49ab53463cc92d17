package naming

import (
	"regexp"
	"strconv"
)

// --- Compiled classification patterns ---

var (
	reSpecial   = regexp.MustCompile(`(?i)SP\d{2}`)
	reVolume    = regexp.MustCompile(`(?i)V\d+`)
	reVolumeNum = regexp.MustCompile(`(?i)V(\d+)`)
)

// IsSpecial reports whether name carries a special-issue tag: "SP" followed
// by exactly two digits, case-insensitive, anywhere in the name.
func IsSpecial(name string) bool {
	return reSpecial.MatchString(name)
}

// IsVolumeTagged reports whether name carries a volume tag: "V" followed by
// one or more digits, case-insensitive, anywhere in the name.
func IsVolumeTagged(name string) bool {
	return reVolume.MatchString(name)
}

// VolumeNumber extracts the integer value of the first volume tag in name.
// The second return is false when no tag is present.
func VolumeNumber(name string) (int, bool) {
	m := reVolumeNum.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Partition is the result of classifying a directory's archive files.
// The three slices preserve the input order and are disjoint.
type Partition struct {
	Regular []string // candidates for batch merging
	Special []string // routed to the specials subdirectory
	Volumes []string // existing volume files, excluded from batching
}

// Classify splits names into special, volume-tagged, and regular files.
// A special tag takes precedence over a volume tag. Volume-tagged files are
// only set aside when skipVolumes is true; otherwise they batch as regular
// files.
func Classify(names []string, skipVolumes bool) Partition {
	var p Partition
	for _, name := range names {
		switch {
		case IsSpecial(name):
			p.Special = append(p.Special, name)
		case skipVolumes && IsVolumeTagged(name):
			p.Volumes = append(p.Volumes, name)
		default:
			p.Regular = append(p.Regular, name)
		}
	}
	return p
}

// HighestVolume returns the largest volume number among names, or 0 when no
// name carries a volume tag.
func HighestVolume(names []string) int {
	max := 0
	for _, name := range names {
		if n, ok := VolumeNumber(name); ok && n > max {
			max = n
		}
	}
	return max
}
