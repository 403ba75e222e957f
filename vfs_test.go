package libsai

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// buildSmallContainer assembles a minimal tree:
//   readme.txt          (file, page 3)
//   docs/                (folder, page 4)
//     notes.txt          (file, page 5)
// rooted at the fixed root directory page (page 2).
func buildSmallContainer(t *testing.T) (raw []byte, readmeContent, notesContent []byte) {
	t.Helper()

	readmeContent = []byte("hello world")
	notesContent = []byte("some notes, more than a few bytes long")

	b := newContainerBuilder()
	b.addDataPage(3, readmeContent)
	b.addDataPage(5, notesContent)

	docsBlock := buildDirBlock(
		newRawFATEntryBytes("notes.txt", EntryTypeFile, 5, uint32(len(notesContent))),
	)
	b.addDataPage(4, docsBlock)

	rootBlock := buildDirBlock(
		newRawFATEntryBytes("readme.txt", EntryTypeFile, 3, uint32(len(readmeContent))),
		newRawFATEntryBytes("docs", EntryTypeFolder, 4, 0),
	)
	b.addDataPage(2, rootBlock)

	return b.build(), readmeContent, notesContent
}

func openTestVfs(t *testing.T, raw []byte) *Vfs {
	t.Helper()
	vfs, err := OpenReader(&memReader{data: raw})
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	t.Cleanup(func() { vfs.Close() })
	return vfs
}

func TestVfs_Entry_ResolvesNestedFile(t *testing.T) {
	raw, _, notesContent := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	entry, err := vfs.Entry("docs/notes.txt")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if entry.Name() != "notes.txt" {
		t.Errorf("Name() = %q, want %q", entry.Name(), "notes.txt")
	}
	if entry.Type() != EntryTypeFile {
		t.Errorf("Type() = %v, want file", entry.Type())
	}
	if entry.Size() != int64(len(notesContent)) {
		t.Errorf("Size() = %d, want %d", entry.Size(), len(notesContent))
	}

	got := make([]byte, entry.Size())
	n, err := io.ReadFull(entryReader{entry}, got)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if n != len(notesContent) || !bytes.Equal(got, notesContent) {
		t.Errorf("content = %q, want %q", got, notesContent)
	}
}

func TestVfs_Entry_FolderType(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	entry, err := vfs.Entry("docs")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if entry.Type() != EntryTypeFolder {
		t.Errorf("Type() = %v, want folder", entry.Type())
	}
}

func TestVfs_Entry_MissingPathReturnsNotFoundError(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	_, err := vfs.Entry("does/not/exist")
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want *NotFoundError", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false, want true")
	}
}

func TestVfs_Entry_NonFinalFileComponentIsNotADirectoryError(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	_, err := vfs.Entry("readme.txt/nope")
	var nde *NotADirectoryError
	if !errors.As(err, &nde) {
		t.Fatalf("err = %v, want *NotADirectoryError", err)
	}
	if !errors.Is(err, ErrNotADirectory) {
		t.Error("errors.Is(err, ErrNotADirectory) = false, want true")
	}
}

func TestVfs_Entry_EmptyPathIsNotFound(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	if _, err := vfs.Entry(""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Entry(\"\") err = %v, want ErrNotFound", err)
	}
}

func TestVfs_Exists(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	if !vfs.Exists("docs/notes.txt") {
		t.Error("expected docs/notes.txt to exist")
	}
	if vfs.Exists("docs/missing.txt") {
		t.Error("expected docs/missing.txt to not exist")
	}
}

// countingVisitor records visit order and keeps folder begin/end balanced.
type countingVisitor struct {
	events     []string
	beginCount int
	endCount   int
	abortAfter int
}

func (v *countingVisitor) VisitFolderBegin(e *Entry) bool {
	v.beginCount++
	v.events = append(v.events, "begin:"+e.Name())
	return v.continueOrAbort()
}

func (v *countingVisitor) VisitFolderEnd(e *Entry) bool {
	v.endCount++
	v.events = append(v.events, "end:"+e.Name())
	return v.continueOrAbort()
}

func (v *countingVisitor) VisitFile(e *Entry) bool {
	v.events = append(v.events, "file:"+e.Name())
	return v.continueOrAbort()
}

func (v *countingVisitor) continueOrAbort() bool {
	if v.abortAfter == 0 {
		return true
	}
	v.abortAfter--
	return v.abortAfter > 0
}

func TestVfs_Walk_VisitsInSourceOrderWithBalancedFolderEvents(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	visitor := &countingVisitor{}
	if err := vfs.Walk(visitor); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{"file:readme.txt", "begin:docs", "file:notes.txt", "end:docs"}
	if len(visitor.events) != len(want) {
		t.Fatalf("events = %v, want %v", visitor.events, want)
	}
	for i := range want {
		if visitor.events[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, visitor.events[i], want[i])
		}
	}
	if visitor.beginCount != visitor.endCount {
		t.Errorf("beginCount (%d) != endCount (%d)", visitor.beginCount, visitor.endCount)
	}
}

func TestVfs_Walk_AbortStopsTraversal(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	visitor := &countingVisitor{abortAfter: 1}
	if err := vfs.Walk(visitor); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(visitor.events) != 1 {
		t.Fatalf("events = %v, want exactly 1 event before abort", visitor.events)
	}
}

func TestVfs_Close_InvalidatesOutstandingEntries(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	vfs, err := OpenReader(&memReader{data: raw})
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}

	entry, err := vfs.Entry("readme.txt")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}

	if err := vfs.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	buf := make([]byte, 4)
	if _, err := entry.Read(buf); !errors.Is(err, ErrClosed) {
		t.Errorf("Read after Close err = %v, want ErrClosed", err)
	}
}

func TestEntry_Read_CorruptedPageReturnsChecksumMismatchError(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	// Flip a byte inside data page 3 (readme.txt's content), well past its
	// checksum's own word-0 slot so the corruption is in content, not cipher
	// keying.
	raw[3*pageSize+16] ^= 0xFF

	vfs := openTestVfs(t, raw)

	entry, err := vfs.Entry("readme.txt")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}

	buf := make([]byte, entry.Size())
	_, err = entry.Read(buf)

	var mismatch *ChecksumMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want *ChecksumMismatchError", err)
	}
	if !errors.Is(err, ErrChecksum) {
		t.Error("errors.Is(err, ErrChecksum) = false, want true")
	}
}

func TestEntry_SeekAndTell(t *testing.T) {
	raw, readmeContent, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	entry, err := vfs.Entry("readme.txt")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}

	pos, err := entry.Seek(6, io.SeekStart)
	if err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	if pos != 6 || entry.Tell() != 6 {
		t.Fatalf("pos = %d, Tell() = %d, want 6", pos, entry.Tell())
	}

	buf := make([]byte, 5)
	n, err := entry.Read(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("Read failed: %v", err)
	}
	if string(buf[:n]) != string(readmeContent[6:6+n]) {
		t.Errorf("Read after Seek = %q, want %q", buf[:n], readmeContent[6:6+n])
	}
}

func TestEntry_Seek_OutOfRangeIsFatal(t *testing.T) {
	raw, _, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	entry, err := vfs.Entry("readme.txt")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}

	_, err = entry.Seek(entry.Size()+1, io.SeekStart)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("err = %v, want *OutOfRangeError", err)
	}
}

func TestEntry_Read_ClampsShortAtEOF(t *testing.T) {
	raw, readmeContent, _ := buildSmallContainer(t)
	vfs := openTestVfs(t, raw)

	entry, err := vfs.Entry("readme.txt")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}

	buf := make([]byte, len(readmeContent)+10)
	n, err := entry.Read(buf)
	if err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}
	if n != len(readmeContent) {
		t.Fatalf("n = %d, want %d", n, len(readmeContent))
	}
}

// buildTableSkipContainer builds a file starting at page 511 (the last data
// page owned by table page 0) whose second logical page must be served from
// physical page 513, skipping over table page 512.
func buildTableSkipContainer(t *testing.T) (raw []byte, content []byte) {
	t.Helper()

	content = bytes.Repeat([]byte{0}, pageSize+100)
	for i := range content {
		content[i] = byte(i % 251)
	}

	b := newContainerBuilder()
	b.addDataPage(511, content[:pageSize])
	b.addDataPage(513, content[pageSize:])

	rootBlock := buildDirBlock(
		newRawFATEntryBytes("big.bin", EntryTypeFile, 511, uint32(len(content))),
	)
	b.addDataPage(2, rootBlock)

	return b.build(), content
}

func TestEntry_ReadSkipsTablePageBoundary(t *testing.T) {
	raw, content := buildTableSkipContainer(t)
	vfs := openTestVfs(t, raw)

	entry, err := vfs.Entry("big.bin")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if entry.Size() != int64(len(content)) {
		t.Fatalf("Size() = %d, want %d", entry.Size(), len(content))
	}

	got := make([]byte, len(content))
	n, err := io.ReadFull(entryReader{entry}, got)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if n != len(content) || !bytes.Equal(got, content) {
		t.Error("content read across the table-page boundary did not match")
	}
}

func TestPhysicalPageFor(t *testing.T) {
	tests := []struct {
		start, logical, want uint32
	}{
		{start: 511, logical: 0, want: 511},
		{start: 511, logical: 1, want: 513}, // skips table page 512
		{start: 3, logical: 0, want: 3},
		{start: 3, logical: 1, want: 4},
	}
	for _, tt := range tests {
		if got := physicalPageFor(tt.start, tt.logical); got != tt.want {
			t.Errorf("physicalPageFor(%d, %d) = %d, want %d", tt.start, tt.logical, got, tt.want)
		}
	}
}
