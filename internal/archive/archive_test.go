package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTestCBZ builds a zip archive at path with the given entries.
func writeTestCBZ(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestReadImages_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "chapter.cbz")
	writeTestCBZ(t, src, map[string][]byte{
		"02.png":        []byte("second"),
		"01.jpg":        []byte("first"),
		"ComicInfo.xml": []byte("<ComicInfo/>"),
		"extra.XML":     []byte("<meta/>"),
		"notes.txt":     []byte("ignore me"),
		"10.webp":       []byte("tenth"),
	})

	images, err := ReadImages(src, nil)
	if err != nil {
		t.Fatalf("ReadImages: %v", err)
	}

	var names []string
	for _, img := range images {
		names = append(names, img.Name)
	}
	want := []string{"01.jpg", "02.png", "10.webp"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("entry names = %v, want %v", names, want)
	}
	if string(images[0].Data) != "first" {
		t.Errorf("image data = %q, want %q", images[0].Data, "first")
	}
}

func TestReadImages_CaseInsensitiveComicInfo(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "chapter.cbz")
	writeTestCBZ(t, src, map[string][]byte{
		"comicinfo.XML": []byte("<ComicInfo/>"),
		"001.JPG":       []byte("page"),
	})

	images, err := ReadImages(src, nil)
	if err != nil {
		t.Fatalf("ReadImages: %v", err)
	}
	if len(images) != 1 || images[0].Name != "001.JPG" {
		t.Errorf("images = %+v, want only 001.JPG", images)
	}
}

func TestReadImages_CorruptArchive(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.cbz")
	if err := os.WriteFile(src, []byte("this is not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadImages(src, nil); err == nil {
		t.Error("ReadImages on corrupt archive: want error, got nil")
	}
}

func TestReadImages_UnsupportedExtension(t *testing.T) {
	if _, err := ReadImages("whatever.tar", nil); err == nil {
		t.Error("ReadImages(.tar): want error, got nil")
	}
}

func TestReadImages_CustomExtensionSet(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "chapter.cbz")
	writeTestCBZ(t, src, map[string][]byte{
		"01.jpg": []byte("jpg"),
		"02.avif": []byte("avif"),
	})

	images, err := ReadImages(src, map[string]bool{".avif": true})
	if err != nil {
		t.Fatalf("ReadImages: %v", err)
	}
	if len(images) != 1 || images[0].Name != "02.avif" {
		t.Errorf("images = %+v, want only 02.avif", images)
	}
}

func TestWriteVolume_RenumbersAndRoundTrips(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "Series V001.cbz")
	pages := []PageImage{
		{Name: "a/05.jpg", Data: []byte("alpha")},
		{Name: "b/01.PNG", Data: []byte("beta")},
		{Name: "c/02.webp", Data: []byte("gamma")},
	}

	written, err := WriteVolume(out, pages)
	if err != nil {
		t.Fatalf("WriteVolume: %v", err)
	}
	if written <= 0 {
		t.Errorf("written = %d, want > 0", written)
	}

	r, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("reopen volume: %v", err)
	}
	defer r.Close()

	wantNames := []string{"page_001.jpg", "page_002.png", "page_003.webp"}
	wantData := []string{"alpha", "beta", "gamma"}
	if len(r.File) != len(wantNames) {
		t.Fatalf("entry count = %d, want %d", len(r.File), len(wantNames))
	}
	for i, f := range r.File {
		if f.Name != wantNames[i] {
			t.Errorf("entry[%d] = %q, want %q", i, f.Name, wantNames[i])
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		rc.Close()
		if buf.String() != wantData[i] {
			t.Errorf("entry[%d] bytes = %q, want %q", i, buf.String(), wantData[i])
		}
	}
}

func TestWriteVolume_CreateFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "missing", "Series V001.cbz")
	if _, err := WriteVolume(out, []PageImage{{Name: "01.jpg", Data: []byte("x")}}); err == nil {
		t.Fatal("WriteVolume into missing directory: want error, got nil")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("partial output left behind: stat err = %v", err)
	}
}

func TestDecodeEntryName(t *testing.T) {
	sjis := []byte{0x83, 0x79, 0x81, 0x5b, 0x83, 0x57} // Shift-JIS "ページ"
	got := decodeEntryName(string(sjis))
	if got != "ページ" {
		t.Errorf("decodeEntryName(shift-jis) = %q, want %q", got, "ページ")
	}

	if got := decodeEntryName("001.jpg"); got != "001.jpg" {
		t.Errorf("decodeEntryName(utf-8) = %q, want unchanged", got)
	}
}
