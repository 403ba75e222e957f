package libsai

import (
	"io"
	"time"

	"github.com/DINKIN/libsai/checkpoint"
)

// Entry is a value snapshot of one directory record plus a non-owning
// handle back to the Vfs it came from, used to serve subsequent reads.
// Closing the originating Vfs invalidates every Entry obtained from it.
type Entry struct {
	h      *handle
	raw    rawFATEntry
	cursor int64
}

// Name returns the entry's NUL-trimmed name.
func (e *Entry) Name() string { return e.raw.name() }

// Type reports whether the entry is a folder or a file.
func (e *Entry) Type() EntryType { return e.raw.Type }

// Size returns the entry's byte length (files) or the size recorded for a
// folder's own directory-block payload.
func (e *Entry) Size() int64 { return int64(e.raw.Size) }

// ModTime converts the entry's Windows FILETIME into a UTC time.Time.
func (e *Entry) ModTime() time.Time { return parseFILETIME(e.raw.TimeStamp) }

// PageIndex returns the entry's starting data page (a file's payload start,
// or a folder's child directory block).
func (e *Entry) PageIndex() uint32 { return e.raw.PageIndex }

// Flags returns the entry's raw on-disk Flags word unmodified, since only
// bit 0 (entry present) has known semantics (SPEC_FULL.md §9).
func (e *Entry) Flags() uint32 { return e.raw.Flags }

// Tell returns the current read cursor.
func (e *Entry) Tell() int64 { return e.cursor }

// Seek moves the read cursor. Unlike Read, which clamps a short read at the
// end of the entry, Seek beyond the entry's size fails with *OutOfRangeError.
func (e *Entry) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = e.cursor + offset
	case io.SeekEnd:
		target = e.Size() + offset
	default:
		return 0, checkpoint.Wrap(&OutOfRangeError{Offset: offset, Size: e.Size()}, ErrOutOfRange)
	}

	if target < 0 || target > e.Size() {
		return 0, checkpoint.Wrap(&OutOfRangeError{Offset: target, Size: e.Size()}, ErrOutOfRange)
	}

	e.cursor = target
	return target, nil
}

// Read reads up to len(p) bytes starting at the current cursor, advancing
// it by the number of bytes read. A read that reaches the entry's end
// returns a short count and io.EOF rather than an error, per §7's clamp
// rule for reads (only Seek treats out-of-range as fatal).
func (e *Entry) Read(p []byte) (int, error) {
	n, err := e.ReadAt(p, e.cursor)
	e.cursor += int64(n)
	if err == nil && e.cursor >= e.Size() {
		err = io.EOF
	}
	return n, err
}

// ReadAt reads up to len(p) bytes of the entry's logical content starting at
// off, without moving the cursor used by Read/Seek.
func (e *Entry) ReadAt(p []byte, off int64) (int, error) {
	if e.h.closed {
		return 0, ErrClosed
	}
	if off >= e.Size() {
		return 0, io.EOF
	}

	n := int64(len(p))
	if off+n > e.Size() {
		n = e.Size() - off
	}

	read, err := readSkippingTables(e.h.reader, e.raw.PageIndex, off, p[:n])
	if err != nil {
		return read, err
	}
	if int64(read) < int64(len(p)) {
		return read, io.EOF
	}
	return read, nil
}

// readSkippingTables reads length bytes of logical file content starting at
// byte offset off within the file beginning at physical data page
// startPage, translating logical offsets to physical pages by skipping
// table pages as described in SPEC_FULL.md §4.5: a file occupies
// consecutive data pages only, and every 512 physical pages one table page
// is skipped over.
func readSkippingTables(r *pagedReader, startPage uint32, off int64, out []byte) (int, error) {
	total := 0
	for total < len(out) {
		logicalPos := off + int64(total)
		logicalPage := uint32(logicalPos / pageSize)
		inPage := int(logicalPos % pageSize)

		physPage := physicalPageFor(startPage, logicalPage)

		page, err := r.fetchPage(physPage)
		if err != nil {
			return total, err
		}

		n := copy(out[total:], page[inPage:])
		total += n
	}
	return total, nil
}

// physicalPageFor maps a file's logical page index (0-based, relative to
// startPage) to its physical container page index, stepping past every
// table-page boundary encountered along the way.
func physicalPageFor(startPage uint32, logicalPage uint32) uint32 {
	p := startPage
	for i := uint32(0); i < logicalPage; i++ {
		p++
		if isTablePage(p) {
			p++
		}
	}
	return p
}
