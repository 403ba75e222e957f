package libsai

import (
	"encoding/binary"
	"math/bits"
)

const (
	pageSize     = 4096
	wordsPerPage = pageSize / 4
	tableEntries = 512 // entries per table page
)

// loadWords decodes a 4096-byte page into its 1024 little-endian u32 words.
func loadWords(page []byte) [wordsPerPage]uint32 {
	var words [wordsPerPage]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(page[i*4:])
	}
	return words
}

// storeWords re-encodes 1024 words back into a 4096-byte little-endian page.
func storeWords(words *[wordsPerPage]uint32) []byte {
	page := make([]byte, pageSize)
	for i, w := range words {
		binary.LittleEndian.PutUint32(page[i*4:], w)
	}
	return page
}

// decryptWords runs the chained cipher over a page's words in place, given
// the page's initial key (page index for table pages, stored checksum for
// data pages) and the active key table. Each ciphertext word becomes the key
// for the next, so the transform must run strictly in stream order.
func decryptWords(words *[wordsPerPage]uint32, key uint32, table *KeyTable) {
	for i, w := range words {
		cur := cipherSum(key, table)
		shift := cur & 0x1F
		rotated := bits.RotateLeft32(w-cur, -int(shift))
		words[i] = rotated ^ cur
		key = w
	}
}

// encryptWords is the algebraic inverse of decryptWords. The production core
// is read-only (§1 Non-goals exclude any write/encryption path); this helper
// exists solely to synthesize round-trip fixtures in tests.
func encryptWords(words *[wordsPerPage]uint32, key uint32, table *KeyTable) {
	for i, p := range words {
		cur := cipherSum(key, table)
		shift := cur & 0x1F
		rotated := p ^ cur
		w := cur + bits.RotateLeft32(rotated, int(shift))
		words[i] = w
		key = w
	}
}

// cipherSum computes the per-step keystream word by summing four lookups
// from the active key table, one per byte of key, most significant first.
func cipherSum(key uint32, table *KeyTable) uint32 {
	return table[(key>>24)&0xFF] +
		table[(key>>16)&0xFF] +
		table[(key>>8)&0xFF] +
		table[key&0xFF]
}

// pageChecksum computes the rolling checksum of a fully-decrypted page with
// word 0 treated as zero, matching the verification value embedded alongside
// the page (entry 0 of the owning table page for table pages, the parent
// table's entry for data pages).
func pageChecksum(words [wordsPerPage]uint32) uint32 {
	words[0] = 0
	var acc uint32
	for _, w := range words {
		acc = bits.RotateLeft32(acc, 1) ^ w
	}
	return acc | 1
}

// decryptTablePage decrypts the 4096 raw bytes of the table page at index
// idx, keyed by the page's own index. Word 0 of the result holds the page's
// own stored checksum in the clear; the caller must save it and zero word 0
// before recomputing the checksum for comparison (see reader.go).
func decryptTablePage(raw []byte, idx uint32, table *KeyTable) [wordsPerPage]uint32 {
	words := loadWords(raw)
	decryptWords(&words, idx, table)
	return words
}

// decryptDataPage decrypts the 4096 raw bytes of a data page, keyed by the
// checksum recorded for it in the owning table page.
func decryptDataPage(raw []byte, expectedChecksum uint32, table *KeyTable) [wordsPerPage]uint32 {
	words := loadWords(raw)
	decryptWords(&words, expectedChecksum, table)
	return words
}

// tableEntryAt reads the {checksum, flags} pair stored at slot i (0..511) of
// a decrypted table page's words. Slot i occupies words[2*i] (checksum) and
// words[2*i+1] (flags).
func tableEntryAt(words *[wordsPerPage]uint32, i int) pageTableEntry {
	return pageTableEntry{
		Checksum: words[2*i],
		Flags:    words[2*i+1],
	}
}

// pageTableEntry is one of the 512 {checksum, flags} records held by a table
// page. Entry i describes data page T+i, where T is the table page's own
// index; entry 0 describes the table page itself.
type pageTableEntry struct {
	Checksum uint32
	Flags    uint32
}

// present reports whether the entry marks its described page as allocated.
// The core only relies on "nonzero checksum means present"; other bits of
// Flags are application-specific and are not interpreted here (see
// SPEC_FULL.md's open question on Flags semantics).
func (e pageTableEntry) present() bool {
	return e.Checksum != 0
}

// isTablePage reports whether page index idx is a table page (index is a
// multiple of 512).
func isTablePage(idx uint32) bool {
	return idx%tableEntries == 0
}

// tableIndexFor returns the index of the table page that owns data page idx.
func tableIndexFor(idx uint32) uint32 {
	return idx - idx%tableEntries
}
