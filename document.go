package libsai

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Well-known entry names the document facade looks for. These are
// application-level conventions layered on top of the generic VFS (C4/C5),
// not part of the core container format itself.
const (
	thumbnailEntryName  = "thumbnail"
	canvasEntryName     = "canvas"
	layerTableEntryName = "laytbl"
)

// Document is a thin, read-only façade over a Vfs that knows how to decode
// the handful of well-known top-level streams a document container
// publishes, without attempting any layer-tree or pixel-format
// deserialization (out of scope - §1).
type Document struct {
	*Vfs
}

// OpenDocument opens path as a document container.
func OpenDocument(path string, opts ...Option) (*Document, error) {
	vfs, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{Vfs: vfs}, nil
}

// Subtype reports which of the four fixed key tables (C1) this container
// was opened with, letting callers distinguish regular document containers
// from the other container flavors the same cipher family protects.
func (d *Document) Subtype() KeyTableName {
	return d.KeyTable()
}

// Thumbnail decodes the thumbnail entry's payload: 8 header bytes
// ({u32 width, u32 height}) followed by width*height*4 bytes of BGRA pixel
// data, returned byte-order-as-stored. Reordering to RGBA, if desired, is a
// higher layer's concern.
func (d *Document) Thumbnail() (pixels []byte, width, height uint32, err error) {
	entry, err := d.Entry(thumbnailEntryName)
	if err != nil {
		return nil, 0, 0, err
	}

	header := make([]byte, 8)
	if _, err := io.ReadFull(entryReader{entry}, header); err != nil {
		return nil, 0, 0, err
	}
	width = binary.LittleEndian.Uint32(header[0:4])
	height = binary.LittleEndian.Uint32(header[4:8])

	want := int64(width) * int64(height) * 4
	if entry.Size()-8 < want {
		return nil, 0, 0, fmt.Errorf("libsai: thumbnail entry too short for %dx%d pixels", width, height)
	}

	pixels = make([]byte, want)
	if _, err := io.ReadFull(entryReader{entry}, pixels); err != nil {
		return nil, 0, 0, err
	}

	return pixels, width, height, nil
}

// Canvas returns the raw bytes of the "canvas" entry, if present.
func (d *Document) Canvas() ([]byte, error) {
	return d.RawStream(canvasEntryName)
}

// LayerTable returns the raw bytes of the "laytbl" entry, if present.
func (d *Document) LayerTable() ([]byte, error) {
	return d.RawStream(layerTableEntryName)
}

// RawStream returns the raw decoded bytes of a well-known top-level entry
// (e.g. "canvas", "laytbl") without attempting to parse its contents -
// layer/pixel decoding stays a higher layer's concern per §1.
func (d *Document) RawStream(name string) ([]byte, error) {
	entry, err := d.Entry(name)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, entry.Size())
	if _, err := io.ReadFull(entryReader{entry}, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// entryReader adapts *Entry's sequential Read to io.Reader for use with
// io.ReadFull without exposing Entry.Seek/Tell to these helpers.
type entryReader struct {
	e *Entry
}

func (r entryReader) Read(p []byte) (int, error) {
	return r.e.Read(p)
}
