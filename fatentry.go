package libsai

import "encoding/binary"

// fatEntrySize is the byte size of one on-disk directory entry record.
const fatEntrySize = 64

// fatEntriesPerBlock is the fixed number of 64-byte entries packed into one
// directory block. It is exactly one page (64*64 == pageSize), which is why
// directory blocks never need to span more than a single data page.
const fatEntriesPerBlock = pageSize / fatEntrySize

// EntryType distinguishes a folder entry from a file entry.
type EntryType uint8

const (
	// EntryTypeFolder marks a directory entry as a folder.
	EntryTypeFolder EntryType = 0x10
	// EntryTypeFile marks a directory entry as a file.
	EntryTypeFile EntryType = 0x80
)

func (t EntryType) String() string {
	switch t {
	case EntryTypeFolder:
		return "folder"
	case EntryTypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// fatEntryUsed is the low bit of the on-disk Flags field; when clear, the
// slot is free. Iteration within a block stops only at an entry whose whole
// Flags word is zero (see parseFATBlock).
const fatEntryUsed = 0x1

// rawFATEntry is the decoded form of one 64-byte on-disk directory entry.
// Field byte offsets (see DESIGN.md for how the 36-44 pad ambiguity was
// resolved): Flags 0-4, Name 4-36, pad 36-38, Type 38-39, pad 39-40,
// PageIndex 40-44, Size 44-48, TimeStamp 48-56, UnknownB 56-64. Do not rely
// on Go struct layout conventions - the on-disk record is hand-packed.
type rawFATEntry struct {
	Flags     uint32
	Name      [32]byte
	Type      EntryType
	PageIndex uint32
	Size      uint32
	TimeStamp uint64
	UnknownB  uint64
}

// used reports whether the entry's Flags low bit marks the slot occupied.
func (e rawFATEntry) used() bool {
	return e.Flags&fatEntryUsed != 0
}

// name returns the NUL-padded Name field trimmed to its printable prefix.
func (e rawFATEntry) name() string {
	n := 0
	for n < len(e.Name) && e.Name[n] != 0 {
		n++
	}
	return string(e.Name[:n])
}

// parseFATEntry decodes one 64-byte record at the byte offsets fixed by
// SPEC_FULL.md §3. buf must have length >= fatEntrySize.
func parseFATEntry(buf []byte) rawFATEntry {
	var e rawFATEntry
	e.Flags = binary.LittleEndian.Uint32(buf[0:4])
	copy(e.Name[:], buf[4:36])
	e.Type = EntryType(buf[38])
	e.PageIndex = binary.LittleEndian.Uint32(buf[40:44])
	e.Size = binary.LittleEndian.Uint32(buf[44:48])
	e.TimeStamp = binary.LittleEndian.Uint64(buf[48:56])
	e.UnknownB = binary.LittleEndian.Uint64(buf[56:64])
	return e
}

// parseFATBlock decodes every entry of a 4096-byte directory block. Decoding
// stops (without error) at the first entry whose Flags == 0, matching
// SPEC_FULL.md §4.4's "an entry whose Flags == 0 terminates iteration".
func parseFATBlock(block []byte) []rawFATEntry {
	entries := make([]rawFATEntry, 0, fatEntriesPerBlock)
	for i := 0; i < fatEntriesPerBlock; i++ {
		raw := block[i*fatEntrySize : (i+1)*fatEntrySize]
		if binary.LittleEndian.Uint32(raw[0:4]) == 0 {
			break
		}
		entries = append(entries, parseFATEntry(raw))
	}
	return entries
}
