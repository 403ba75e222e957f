package libsai

import (
	"io"

	"github.com/DINKIN/libsai/checkpoint"
)

// pageCacheSlot is a single-slot "last accessed wins" cache entry. Two of
// these (table + data) back the paged reader; they are kept as separate
// named slots rather than one size-2 LRU because directory traversal
// alternates between table and data pages and would thrash a shared LRU.
type pageCacheSlot struct {
	valid bool
	index uint32
	words [wordsPerPage]uint32
}

// pagedReader resolves logical page indices to decrypted, checksum-validated
// 4096-byte buffers over a raw container, per SPEC_FULL.md §4.3.
type pagedReader struct {
	ra         io.ReaderAt
	totalPages uint32
	table      *KeyTable

	tableCache pageCacheSlot
	dataCache  pageCacheSlot
}

func newPagedReader(ra io.ReaderAt, size int64, table *KeyTable) (*pagedReader, error) {
	if size%pageSize != 0 {
		return nil, &BadSizeError{Size: size}
	}
	return &pagedReader{
		ra:         ra,
		totalPages: uint32(size / pageSize),
		table:      table,
	}, nil
}

// readRawPage reads the 4096 raw (still encrypted) bytes of page idx.
func (r *pagedReader) readRawPage(idx uint32) ([]byte, error) {
	if idx >= r.totalPages {
		return nil, checkpoint.Wrap(&OutOfRangeError{Offset: int64(idx) * pageSize, Size: int64(r.totalPages) * pageSize}, ErrOutOfRange)
	}

	buf := make([]byte, pageSize)
	_, err := r.ra.ReadAt(buf, int64(idx)*pageSize)
	if err != nil && err != io.EOF {
		return nil, checkpoint.Wrap(err, &IoError{Op: "read page", Err: err})
	}
	return buf, nil
}

// fetchTablePage returns the decrypted, self-checksum-validated words of the
// table page at idx, serving from tableCache when possible.
func (r *pagedReader) fetchTablePage(idx uint32) (*[wordsPerPage]uint32, error) {
	if r.tableCache.valid && r.tableCache.index == idx {
		return &r.tableCache.words, nil
	}

	raw, err := r.readRawPage(idx)
	if err != nil {
		return nil, err
	}

	words := decryptTablePage(raw, idx, r.table)
	storedChecksum := words[0]
	words[0] = 0
	actual := pageChecksum(words)

	if actual != storedChecksum {
		return nil, &ChecksumMismatchError{Page: idx, Expected: storedChecksum, Actual: actual}
	}

	r.tableCache = pageCacheSlot{valid: true, index: idx, words: words}
	return &r.tableCache.words, nil
}

// fetchDataPage returns the decrypted, checksum-validated words of the data
// page at idx, serving from dataCache when possible.
func (r *pagedReader) fetchDataPage(idx uint32) (*[wordsPerPage]uint32, error) {
	if isTablePage(idx) {
		return nil, checkpoint.Wrap(&OutOfRangeError{Offset: int64(idx) * pageSize, Size: int64(r.totalPages) * pageSize}, ErrOutOfRange)
	}

	if r.dataCache.valid && r.dataCache.index == idx {
		return &r.dataCache.words, nil
	}

	tableIdx := tableIndexFor(idx)
	tableWords, err := r.fetchTablePage(tableIdx)
	if err != nil {
		return nil, err
	}
	entry := tableEntryAt(tableWords, int(idx%tableEntries))
	if !entry.present() {
		return nil, checkpoint.Wrap(&OutOfRangeError{Offset: int64(idx) * pageSize, Size: int64(r.totalPages) * pageSize}, ErrOutOfRange)
	}

	raw, err := r.readRawPage(idx)
	if err != nil {
		return nil, err
	}

	words := decryptDataPage(raw, entry.Checksum, r.table)
	actual := pageChecksum(words)
	if actual != entry.Checksum {
		return nil, &ChecksumMismatchError{Page: idx, Expected: entry.Checksum, Actual: actual}
	}

	r.dataCache = pageCacheSlot{valid: true, index: idx, words: words}
	return &r.dataCache.words, nil
}

// fetchPage returns the decrypted bytes of page idx, dispatching to the
// table or data path as appropriate.
func (r *pagedReader) fetchPage(idx uint32) ([]byte, error) {
	var words *[wordsPerPage]uint32
	var err error
	if isTablePage(idx) {
		words, err = r.fetchTablePage(idx)
	} else {
		words, err = r.fetchDataPage(idx)
	}
	if err != nil {
		return nil, err
	}
	return storeWords(words), nil
}

// readAt splits a byte range into page-aligned pieces and copies each
// decrypted slice into out, returning the number of bytes copied. This
// is the tooling-facing Vfs.ReadAt primitive (offsets are absolute container
// offsets, not file-relative); entry reads use readSkippingTables instead.
func (r *pagedReader) readAt(offset uint64, out []byte) (int, error) {
	total := 0
	for total < len(out) {
		idx := uint32((offset + uint64(total)) / pageSize)
		inPage := int((offset + uint64(total)) % pageSize)

		page, err := r.fetchPage(idx)
		if err != nil {
			return total, err
		}

		n := copy(out[total:], page[inPage:])
		total += n
	}
	return total, nil
}
