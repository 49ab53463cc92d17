package archive

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// decodeEntryName recovers a readable entry name from archives built with
// legacy tooling. ZIP has no mandatory name encoding; manga archives are
// commonly packed with Shift-JIS names and Chinese releases with GB18030.
// Valid UTF-8 names pass through untouched, and when every decode attempt
// fails the raw name is kept so sorting stays deterministic.
func decodeEntryName(name string) string {
	if utf8.ValidString(name) {
		return name
	}

	if decoded, err := japanese.ShiftJIS.NewDecoder().String(name); err == nil && utf8.ValidString(decoded) {
		return decoded
	}
	if decoded, err := simplifiedchinese.GB18030.NewDecoder().String(name); err == nil && utf8.ValidString(decoded) {
		return decoded
	}
	return name
}
