package archive

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/cbzbinder/internal/naming"
)

// WriteVolume creates a CBZ at path containing images in order, renamed to
// the consecutive page_NNN sequence starting at 1 and keeping each image's
// original extension. Entries are deflate-compressed.
//
// On any failure the partially written file is removed before returning, so
// a volume either exists complete or not at all.
func WriteVolume(path string, images []PageImage) (written int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	zw := zip.NewWriter(f)
	for idx, img := range images {
		w, werr := zw.Create(naming.PageName(idx+1, img.Ext()))
		if werr != nil {
			zw.Close()
			f.Close()
			return 0, fmt.Errorf("write %s: %w", filepath.Base(path), werr)
		}
		if _, werr := w.Write(img.Data); werr != nil {
			zw.Close()
			f.Close()
			return 0, fmt.Errorf("write %s: %w", filepath.Base(path), werr)
		}
	}
	if err = zw.Close(); err != nil {
		f.Close()
		return 0, fmt.Errorf("finalize %s: %w", filepath.Base(path), err)
	}
	if err = f.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}

	fi, serr := os.Stat(path)
	if serr != nil {
		return 0, nil
	}
	return fi.Size(), nil
}
