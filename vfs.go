package libsai

import (
	"io"
	"os"
	"strings"

	"github.com/DINKIN/libsai/checkpoint"
)

// readerAt is the minimal capability Open needs from a container handle.
type readerAt interface {
	ReadAt(p []byte, off int64) (int, error)
}

// rootPage is the fixed data page holding the root directory block.
const rootPage = 2

// handle is the shared, non-owning reference entries hold onto a Vfs's
// underlying reader. Closing the Vfs marks it closed so that reads through
// outstanding entries fail instead of racing the closed file handle -
// the handle/generation pattern called for in SPEC_FULL.md §9.
type handle struct {
	reader *pagedReader
	file   io.Closer
	closed bool
}

// Vfs is a read-only view over one encrypted container: enumerate its tree
// and read arbitrary byte ranges from any contained file.
type Vfs struct {
	h       *handle
	keyName KeyTableName
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	keyName KeyTableName
}

// WithKeyTable selects which of the four fixed key tables (C1) to decrypt
// the container with. Regular document containers use the default, KeyUser.
func WithKeyTable(name KeyTableName) Option {
	return func(o *openOptions) { o.keyName = name }
}

// Open opens the container at path and validates its size and root
// directory block. The returned Vfs owns the file handle until Close.
func Open(path string, opts ...Option) (*Vfs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, checkpoint.Wrap(err, &IoError{Op: "open", Err: err})
	}

	vfs, err := OpenReader(osFile{f}, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	return vfs, nil
}

// osFile adapts *os.File to sizedReaderAt.
type osFile struct {
	*os.File
}

func (f osFile) Size() (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// sizedReaderAt is implemented by anything that can report its own size,
// e.g. *os.File (via Stat) or an in-memory container wrapper (via Size).
type sizedReaderAt interface {
	readerAt
	Size() (int64, error)
}

// OpenReader opens a container already available as a sizedReaderAt, for
// callers that manage the underlying handle's lifetime themselves. The
// returned Vfs does not close ra on Vfs.Close unless ra also implements
// io.Closer.
func OpenReader(ra sizedReaderAt, opts ...Option) (*Vfs, error) {
	size, err := ra.Size()
	if err != nil {
		return nil, checkpoint.Wrap(err, &IoError{Op: "stat", Err: err})
	}

	o := openOptions{keyName: KeyUser}
	for _, opt := range opts {
		opt(&o)
	}

	reader, err := newPagedReader(ra, size, o.keyName.table())
	if err != nil {
		return nil, err
	}

	vfs := &Vfs{
		h:       &handle{reader: reader},
		keyName: o.keyName,
	}

	if closer, ok := ra.(io.Closer); ok {
		vfs.h.file = closer
	}

	// Validate the root directory block is readable up front so Open fails
	// fast on a structurally broken container rather than on first use.
	if _, err := vfs.readDirBlock(rootPage); err != nil {
		return nil, err
	}

	return vfs, nil
}

// Close releases the underlying file handle and invalidates every Entry
// obtained from this Vfs. Reads through an invalidated Entry return
// ErrClosed instead of touching the closed handle.
func (v *Vfs) Close() error {
	v.h.closed = true
	if v.h.file != nil {
		return v.h.file.Close()
	}
	return nil
}

// KeyTable reports which of the four fixed key tables this container was
// opened with.
func (v *Vfs) KeyTable() KeyTableName {
	return v.keyName
}

// ReadAt reads len(buf) bytes starting at the given raw container offset
// (not a file-relative offset), for tooling that wants to inspect the
// container directly rather than through an Entry.
func (v *Vfs) ReadAt(offset uint64, buf []byte) (int, error) {
	if v.h.closed {
		return 0, ErrClosed
	}
	return v.h.reader.readAt(offset, buf)
}

// readDirBlock reads and parses the single data page holding the directory
// block starting at page. Directory blocks are always exactly one page
// (64 entries * 64 bytes == 4096 bytes), so no table-page skipping chain is
// ever needed to read one in full.
func (v *Vfs) readDirBlock(page uint32) ([]rawFATEntry, error) {
	if v.h.closed {
		return nil, ErrClosed
	}
	raw, err := v.h.reader.fetchPage(page)
	if err != nil {
		return nil, err
	}
	return parseFATBlock(raw), nil
}

// Exists reports whether path resolves to either a file or a folder.
func (v *Vfs) Exists(path string) bool {
	_, err := v.Entry(path)
	return err == nil
}

// Entry resolves path (components separated by '/', matched case-sensitively)
// to an Entry. It fails with *NotFoundError on the first missing component
// and *NotADirectoryError if a non-final component names a file.
func (v *Vfs) Entry(path string) (*Entry, error) {
	components := splitPath(path)
	if len(components) == 0 {
		return nil, checkpoint.Wrap(&NotFoundError{Path: path}, ErrNotFound)
	}

	page := uint32(rootPage)
	var found rawFATEntry
	var ok bool

	for i, name := range components {
		entries, err := v.readDirBlock(page)
		if err != nil {
			return nil, err
		}

		found, ok = lookup(entries, name)
		if !ok {
			return nil, checkpoint.Wrap(&NotFoundError{Path: path}, ErrNotFound)
		}

		last := i == len(components)-1
		if !last {
			if found.Type != EntryTypeFolder {
				return nil, checkpoint.Wrap(&NotADirectoryError{Path: path}, ErrNotADirectory)
			}
			page = found.PageIndex
		}
	}

	return &Entry{h: v.h, raw: found}, nil
}

// Visitor receives depth-first tree walk events. Returning false from any
// method aborts further traversal and propagates the abort upward.
type Visitor interface {
	VisitFolderBegin(entry *Entry) bool
	VisitFolderEnd(entry *Entry) bool
	VisitFile(entry *Entry) bool
}

// Walk performs a depth-first traversal of the tree rooted at the container's
// root directory, in source (on-disk) order within each block.
func (v *Vfs) Walk(visitor Visitor) error {
	_, err := v.walkBlock(rootPage, visitor)
	return err
}

// walkBlock walks one directory block, recursing into folders. It returns
// (false, nil) if the visitor requested early termination.
func (v *Vfs) walkBlock(page uint32, visitor Visitor) (bool, error) {
	entries, err := v.readDirBlock(page)
	if err != nil {
		return false, err
	}

	for _, raw := range entries {
		if !raw.used() {
			continue
		}
		entry := &Entry{h: v.h, raw: raw}

		switch raw.Type {
		case EntryTypeFolder:
			if !visitor.VisitFolderBegin(entry) {
				return false, nil
			}
			cont, err := v.walkBlock(raw.PageIndex, visitor)
			if err != nil {
				return false, err
			}
			if !visitor.VisitFolderEnd(entry) || !cont {
				return false, nil
			}
		case EntryTypeFile:
			if !visitor.VisitFile(entry) {
				return false, nil
			}
		}
	}

	return true, nil
}

// splitPath splits a '/'-separated path into its non-empty components.
func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// lookup finds the first used entry named name within entries.
func lookup(entries []rawFATEntry, name string) (rawFATEntry, bool) {
	for _, e := range entries {
		if e.used() && e.name() == name {
			return e, true
		}
	}
	return rawFATEntry{}, false
}
