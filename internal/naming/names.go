package naming

import "fmt"

// VolumeName builds the output archive filename for a bound volume:
// "<folder> V<NNN>.cbz" with the volume number zero-padded to 3 digits.
func VolumeName(folder string, volume int) string {
	return fmt.Sprintf("%s V%03d.cbz", folder, volume)
}

// PageName builds the archive entry name for a renumbered page. idx starts
// at 1 and is zero-padded to 3 digits; ext is the original extension
// including the leading dot.
func PageName(idx int, ext string) string {
	return fmt.Sprintf("page_%03d%s", idx, ext)
}
