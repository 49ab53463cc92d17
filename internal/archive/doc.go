// Package archive reads page images out of comic archives and writes merged
// volume archives.
//
// Sources may be ZIP (.cbz/.zip) or RAR (.cbr/.rar) containers. Only image
// entries are read: metadata files like ComicInfo.xml (and any .xml entry)
// are dropped. Entry names that are not valid UTF-8 are decoded with a
// Shift-JIS then GB18030 fallback before sorting, since scanlation archives
// frequently carry legacy-encoded names.
//
// Output is always a deflate-compressed ZIP whose entries are renamed to a
// consecutive page_NNN sequence. Image bytes are copied verbatim; only the
// entry name changes.
package archive
