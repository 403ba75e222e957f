package libsai

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
)

// ErrReadOnly is returned by every mutating afero.Fs/afero.File method: a
// container is opened read-only and has no notion of a writable clone.
var ErrReadOnly = errors.New("libsai: filesystem is read-only")

// AferoFS adapts a Vfs to afero.Fs for callers already built against afero,
// the way the teacher's own Fs wraps its FAT filesystem for afero
// consumers. Only the read-only subset (Open, OpenFile for reading, Stat,
// Name) does real work; every mutating method returns ErrReadOnly.
type AferoFS struct {
	vfs *Vfs
}

// AsAferoFS wraps vfs as an afero.Fs.
func AsAferoFS(vfs *Vfs) afero.Fs {
	return &AferoFS{vfs: vfs}
}

func (a *AferoFS) Create(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "create", Path: name, Err: ErrReadOnly}
}

func (a *AferoFS) Mkdir(name string, perm os.FileMode) error {
	return &os.PathError{Op: "mkdir", Path: name, Err: ErrReadOnly}
}

func (a *AferoFS) MkdirAll(path string, perm os.FileMode) error {
	return &os.PathError{Op: "mkdir", Path: path, Err: ErrReadOnly}
}

func (a *AferoFS) Open(name string) (afero.File, error) {
	entry, err := a.vfs.Entry(name)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: translateFSErr(err)}
	}
	return &aferoFile{vfs: a.vfs, entry: entry, name: name}, nil
}

func (a *AferoFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_APPEND) != 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: ErrReadOnly}
	}
	return a.Open(name)
}

func (a *AferoFS) Remove(name string) error {
	return &os.PathError{Op: "remove", Path: name, Err: ErrReadOnly}
}

func (a *AferoFS) RemoveAll(path string) error {
	return &os.PathError{Op: "removeall", Path: path, Err: ErrReadOnly}
}

func (a *AferoFS) Rename(oldname, newname string) error {
	return &os.PathError{Op: "rename", Path: oldname, Err: ErrReadOnly}
}

func (a *AferoFS) Stat(name string) (os.FileInfo, error) {
	entry, err := a.vfs.Entry(name)
	if err != nil {
		return nil, &os.PathError{Op: "stat", Path: name, Err: translateFSErr(err)}
	}
	return entryFileInfo{entry}, nil
}

func (a *AferoFS) Name() string { return "libsai" }

func (a *AferoFS) Chmod(name string, mode os.FileMode) error {
	return &os.PathError{Op: "chmod", Path: name, Err: ErrReadOnly}
}

func (a *AferoFS) Chown(name string, uid, gid int) error {
	return &os.PathError{Op: "chown", Path: name, Err: ErrReadOnly}
}

func (a *AferoFS) Chtimes(name string, atime, mtime time.Time) error {
	return &os.PathError{Op: "chtimes", Path: name, Err: ErrReadOnly}
}

// aferoFile adapts *Entry to afero.File.
type aferoFile struct {
	vfs   *Vfs
	entry *Entry
	name  string
}

func (f *aferoFile) Close() error                       { return nil }
func (f *aferoFile) Read(p []byte) (int, error)         { return f.entry.Read(p) }
func (f *aferoFile) ReadAt(p []byte, off int64) (int, error) { return f.entry.ReadAt(p, off) }
func (f *aferoFile) Seek(offset int64, whence int) (int64, error) {
	return f.entry.Seek(offset, whence)
}
func (f *aferoFile) Name() string { return f.entry.Name() }
func (f *aferoFile) Stat() (os.FileInfo, error) {
	return entryFileInfo{f.entry}, nil
}

func (f *aferoFile) Readdir(count int) ([]os.FileInfo, error) {
	entries, err := f.readdirEntries(count)
	if err != nil {
		return nil, err
	}
	infos := make([]os.FileInfo, len(entries))
	for i, e := range entries {
		infos[i] = e
	}
	return infos, nil
}

func (f *aferoFile) Readdirnames(count int) ([]string, error) {
	entries, err := f.readdirEntries(count)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

func (f *aferoFile) readdirEntries(count int) ([]entryFileInfo, error) {
	if f.entry.Type() != EntryTypeFolder {
		return nil, &os.PathError{Op: "readdir", Path: f.name, Err: errors.New("not a directory")}
	}

	raw, err := f.vfs.readDirBlock(f.entry.PageIndex())
	if err != nil {
		return nil, err
	}

	out := make([]entryFileInfo, 0, len(raw))
	for _, r := range raw {
		if !r.used() {
			continue
		}
		out = append(out, entryFileInfo{&Entry{h: f.vfs.h, raw: r}})
		if count > 0 && len(out) == count {
			break
		}
	}
	return out, nil
}

func (f *aferoFile) Write(p []byte) (int, error)              { return 0, ErrReadOnly }
func (f *aferoFile) WriteAt(p []byte, off int64) (int, error) { return 0, ErrReadOnly }
func (f *aferoFile) WriteString(s string) (int, error)        { return 0, ErrReadOnly }
func (f *aferoFile) Truncate(size int64) error                { return ErrReadOnly }
func (f *aferoFile) Sync() error                              { return nil }

var _ io.ReaderAt = (*aferoFile)(nil)
var _ afero.Fs = (*AferoFS)(nil)
