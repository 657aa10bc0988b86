package fileutil

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// implement io.ReadCloser over os.File wrapped with io.Reader.
// io.Closer goes to os.File, io.Reader goes to wrapping reader
type readerWrappedFile struct {
	f *os.File
	r io.Reader
}

func (rc *readerWrappedFile) Close() error {
	return rc.f.Close()
}

func (rc *readerWrappedFile) Read(p []byte) (int, error) {
	return rc.r.Read(p)
}

func wrapInReadCloser(f *os.File, r io.Reader, err error) (io.ReadCloser, error) {
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readerWrappedFile{
		f: f,
		r: r,
	}, nil
}

// OpenMaybeCompressed opens a file that might be compressed with gzip
// or bzip2 or zstd or brotli, picked by extension
func OpenMaybeCompressed(path string) (io.ReadCloser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch ext {
	case ".gz":
		r, err := gzip.NewReader(f)
		return wrapInReadCloser(f, r, err)
	case ".bz2":
		r := bzip2.NewReader(f)
		return wrapInReadCloser(f, r, nil)
	case ".zst", ".zstd":
		r, err := zstd.NewReader(f)
		return wrapInReadCloser(f, r, err)
	case ".br":
		r := brotli.NewReader(f)
		return wrapInReadCloser(f, r, nil)
	}
	return f, nil
}

// ReadFileMaybeCompressed reads a file, decompressing by extension
func ReadFileMaybeCompressed(path string) ([]byte, error) {
	r, err := OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// WriteFileBrotli writes data to path compressed with brotli at best
// compression. Removes the file on a partial write.
func WriteFileBrotli(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := brotli.NewWriterLevel(f, brotli.BestCompression)
	_, err = w.Write(data)
	if err == nil {
		err = w.Close()
	} else {
		w.Close()
	}
	if err == nil {
		err = f.Close()
	} else {
		f.Close()
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// WriteFileAtomic writes data to a temp file in the same directory and
// renames it over path, so readers never observe a partial file
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err = os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// BackupPath returns the name for a timestamped compressed backup of
// path, e.g. students.txt => students.txt.20260826-153000.br
func BackupPath(path string, t time.Time) string {
	return path + "." + t.Format("20060102-150405") + ".br"
}

// BackupFile writes a brotli-compressed copy of path next to it and
// returns the backup's name
func BackupFile(path string) (string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	dst := BackupPath(path, time.Now())
	if err = WriteFileBrotli(dst, d); err != nil {
		return "", err
	}
	return dst, nil
}
