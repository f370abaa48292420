package vbios

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Image is a raw ROM image held in memory, possibly as a read-only mapping.
// It must be closed after the pipeline has consumed it; Load copies the
// bytes into the hex view, so the ROM stays valid after Close.
type Image struct {
	Data    []byte
	mmapped bool
}

// OpenImage maps a ROM file read-only, falling back to plain reads where
// mmap is unavailable.
func OpenImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size64 := stat.Size()
	if size64 < 0 || size64 > int64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("cannot load %q: unindexable size %d", path, size64)
	}
	size := int(size64)

	if size > 0 {
		data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
		if err == nil {
			return &Image{Data: data, mmapped: true}, nil
		}
	}

	data, err := readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return &Image{Data: data}, nil
}

// Close releases the mapping, if any.
func (img *Image) Close() error {
	if !img.mmapped {
		return nil
	}
	data := img.Data
	img.Data = nil
	img.mmapped = false
	return unix.Munmap(data)
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}
