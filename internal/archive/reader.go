package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nwaples/rardecode"
)

// PageImage is one page held in memory between extraction and volume
// assembly: the (decoded) entry name it had in its source archive and its
// raw bytes.
type PageImage struct {
	Name string
	Data []byte
}

// Ext returns the page's lowercased filename extension, including the dot.
func (p PageImage) Ext() string {
	return strings.ToLower(filepath.Ext(p.Name))
}

// imageExtensions is the default set of entry extensions treated as pages.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
}

// SourceExtensions lists the archive extensions accepted as merge sources.
var SourceExtensions = map[string]bool{
	".cbz": true,
	".zip": true,
	".cbr": true,
	".rar": true,
}

// ReadImages extracts every page image from the archive at path into
// memory, sorted by entry name. ZIP and RAR containers are supported, keyed
// on the file extension. ComicInfo.xml and any other .xml entries are
// skipped, as are entries without an image extension.
//
// allow overrides the accepted image extensions; nil means the default set.
func ReadImages(path string, allow map[string]bool) ([]PageImage, error) {
	if allow == nil {
		allow = imageExtensions
	}

	var images []PageImage
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".cbz", ".zip":
		images, err = readZip(path, allow)
	case ".cbr", ".rar":
		images, err = readRar(path, allow)
	default:
		return nil, fmt.Errorf("unsupported archive type %q", ext)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Name < images[j].Name })
	return images, nil
}

// wantEntry reports whether an archive entry holds a page image.
func wantEntry(name string, allow map[string]bool) bool {
	lower := strings.ToLower(name)
	if filepath.Base(lower) == "comicinfo.xml" || strings.HasSuffix(lower, ".xml") {
		return false
	}
	return allow[strings.ToLower(filepath.Ext(name))]
}

func readZip(path string, allow map[string]bool) ([]PageImage, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer r.Close()

	var images []PageImage
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := decodeEntryName(f.Name)
		if !wantEntry(name, allow) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s in %s: %w", f.Name, filepath.Base(path), err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read entry %s in %s: %w", f.Name, filepath.Base(path), err)
		}
		images = append(images, PageImage{Name: name, Data: data})
	}
	return images, nil
}

func readRar(path string, allow map[string]bool) ([]PageImage, error) {
	r, err := rardecode.OpenReader(path, "")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer r.Close()

	var images []PageImage
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		if header.IsDir {
			continue
		}
		name := decodeEntryName(header.Name)
		if !wantEntry(name, allow) {
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read entry %s in %s: %w", header.Name, filepath.Base(path), err)
		}
		images = append(images, PageImage{Name: name, Data: data})
	}
	return images, nil
}
