package libsai

import (
	"encoding/binary"
)

// containerBuilder assembles a synthetic, well-formed encrypted container in
// memory so the reader/vfs/entry layers can be exercised without a real
// captured document file. It only needs to produce pages the paged reader
// considers self-consistent (checksums match, table entries point at the
// right pages); it does not need to resemble a real application's layout
// beyond that.
type containerBuilder struct {
	table   *KeyTable
	plain   map[uint32][wordsPerPage]uint32
	isTable map[uint32]bool
	entries map[uint32]*[tableEntries]pageTableEntry // keyed by owning table page index
	maxPage uint32
}

func newContainerBuilder() *containerBuilder {
	return &containerBuilder{
		table:   KeyUser.table(),
		plain:   map[uint32][wordsPerPage]uint32{},
		isTable: map[uint32]bool{},
		entries: map[uint32]*[tableEntries]pageTableEntry{},
	}
}

func (b *containerBuilder) bump(idx uint32) {
	if idx+1 > b.maxPage {
		b.maxPage = idx + 1
	}
}

func (b *containerBuilder) tableEntriesFor(tableIdx uint32) *[tableEntries]pageTableEntry {
	e, ok := b.entries[tableIdx]
	if !ok {
		e = &[tableEntries]pageTableEntry{}
		b.entries[tableIdx] = e
	}
	return e
}

// addDataPage stores content (padded with zeros to one page) as the data
// page at idx, registers its checksum in the owning table page's entry
// table, and marks it present.
func (b *containerBuilder) addDataPage(idx uint32, content []byte) {
	if isTablePage(idx) {
		panic("addDataPage: idx is a table page index")
	}
	if len(content) > pageSize {
		panic("addDataPage: content larger than one page")
	}

	var words [wordsPerPage]uint32
	padded := make([]byte, pageSize)
	copy(padded, content)
	words = loadWords(padded)

	checksum := pageChecksum(words)

	b.plain[idx] = words
	b.isTable[idx] = false
	b.bump(idx)

	tableIdx := tableIndexFor(idx)
	slots := b.tableEntriesFor(tableIdx)
	slots[idx%tableEntries] = pageTableEntry{Checksum: checksum, Flags: fatEntryUsed}
	b.bump(tableIdx)
}

// finalizeTablePages computes each referenced table page's own self-checksum
// from its accumulated entries and stores its plaintext words. Must run
// after every addDataPage call.
func (b *containerBuilder) finalizeTablePages() {
	for tableIdx, slots := range b.entries {
		var words [wordsPerPage]uint32
		for i, e := range slots {
			words[2*i] = e.Checksum
			words[2*i+1] = e.Flags
		}
		// Slot 0 describes the table page itself; its flags participate in
		// the checksum, so set them before computing, then overwrite word 0
		// with the resulting self-checksum (word 0's prior value never
		// affects pageChecksum, which always zeroes it internally).
		words[1] = fatEntryUsed
		checksum := pageChecksum(words)
		words[0] = checksum

		b.plain[tableIdx] = words
		b.isTable[tableIdx] = true
	}
}

// build encrypts every registered page and lays them out into one
// contiguous byte slice sized to a whole number of pages.
func (b *containerBuilder) build() []byte {
	b.finalizeTablePages()

	raw := make([]byte, int64(b.maxPage)*pageSize)
	for idx, words := range b.plain {
		w := words
		if b.isTable[idx] {
			encryptWords(&w, idx, b.table)
		} else {
			// The data page's cipher key is its own checksum, which lives at
			// word 0 only for table pages; for data pages it is the value
			// already registered in the owning table's entry.
			checksum := pageChecksum(words)
			encryptWords(&w, checksum, b.table)
		}
		copy(raw[int64(idx)*pageSize:], storeWords(&w))
	}
	return raw
}

// memReader adapts an in-memory byte slice to sizedReaderAt for OpenReader.
type memReader struct {
	data []byte
}

func (m *memReader) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.data)) {
		return 0, nil
	}
	n := copy(p, m.data[off:])
	return n, nil
}

func (m *memReader) Size() (int64, error) {
	return int64(len(m.data)), nil
}

// newRawFATEntryBytes builds one 64-byte directory record for embedding into
// a directory block under construction.
func newRawFATEntryBytes(name string, typ EntryType, pageIndex, size uint32) []byte {
	return buildRawEntry(fatEntryUsed, name, typ, pageIndex, size, 0)
}

// buildDirBlock assembles one page-sized directory block out of pre-built
// 64-byte entry records, leaving the remainder zeroed (an all-zero record
// terminates scanning, per parseFATBlock).
func buildDirBlock(records ...[]byte) []byte {
	block := make([]byte, pageSize)
	for i, r := range records {
		copy(block[i*fatEntrySize:], r)
	}
	return block
}

// littleEndianUint32 is a small helper for tests that build raw byte buffers
// by hand (e.g. the thumbnail header).
func littleEndianUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
