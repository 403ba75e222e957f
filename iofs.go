package libsai

import (
	"errors"
	"io"
	"io/fs"
	"time"
)

// IOFS wraps a Vfs to satisfy fs.FS / fs.ReadDirFS / fs.StatFS, so a
// container can be driven by fs.WalkDir, fs.Glob, fs.ReadFile and friends
// without depending on the VFS's own API. Grounded on the teacher's
// GoFs/GoFile/GoDirEntry wrapping of its FAT filesystem as fs.FS.
type IOFS struct {
	vfs *Vfs
}

// AsIOFS wraps vfs as an fs.FS.
func AsIOFS(vfs *Vfs) *IOFS {
	return &IOFS{vfs: vfs}
}

// Open implements fs.FS.
func (i *IOFS) Open(name string) (fs.File, error) {
	if name == "." {
		root, err := i.vfs.Entry("")
		if err != nil {
			return i.openRootDir(), nil
		}
		return &fsFile{vfs: i.vfs, entry: root}, nil
	}

	entry, err := i.vfs.Entry(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: translateFSErr(err)}
	}
	return &fsFile{vfs: i.vfs, entry: entry}, nil
}

// openRootDir returns a synthetic directory file for "." when the container
// itself has no entry named "" (the common case - the root has no FATEntry
// of its own, only its children do).
func (i *IOFS) openRootDir() fs.File {
	return &fsRootDir{vfs: i.vfs}
}

// ReadDir implements fs.ReadDirFS.
func (i *IOFS) ReadDir(name string) ([]fs.DirEntry, error) {
	f, err := i.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dir, ok := f.(fs.ReadDirFile)
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	return dir.ReadDir(-1)
}

// Stat implements fs.StatFS.
func (i *IOFS) Stat(name string) (fs.FileInfo, error) {
	f, err := i.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Stat()
}

// fsFile adapts an *Entry to fs.File / fs.ReadDirFile.
type fsFile struct {
	vfs   *Vfs
	entry *Entry
}

func (f *fsFile) Stat() (fs.FileInfo, error) { return entryFileInfo{f.entry}, nil }
func (f *fsFile) Read(p []byte) (int, error) { return f.entry.Read(p) }
func (f *fsFile) Close() error               { return nil }

func (f *fsFile) ReadDir(n int) ([]fs.DirEntry, error) {
	if f.entry.Type() != EntryTypeFolder {
		return nil, &fs.PathError{Op: "readdir", Path: f.entry.Name(), Err: fs.ErrInvalid}
	}

	raw, err := f.vfs.readDirBlock(f.entry.PageIndex())
	if err != nil {
		return nil, err
	}

	out := make([]fs.DirEntry, 0, len(raw))
	for _, r := range raw {
		if !r.used() {
			continue
		}
		out = append(out, entryFileInfo{&Entry{h: f.vfs.h, raw: r}})
		if n > 0 && len(out) == n {
			break
		}
	}
	return out, nil
}

// fsRootDir serves ReadDir("."): it walks one level of the container's root
// directory block directly, since the root has no FATEntry of its own.
type fsRootDir struct {
	vfs *Vfs
}

func (d *fsRootDir) Stat() (fs.FileInfo, error) { return rootFileInfo{}, nil }
func (d *fsRootDir) Read([]byte) (int, error)   { return 0, io.EOF }
func (d *fsRootDir) Close() error               { return nil }

func (d *fsRootDir) ReadDir(n int) ([]fs.DirEntry, error) {
	raw, err := d.vfs.readDirBlock(rootPage)
	if err != nil {
		return nil, err
	}
	out := make([]fs.DirEntry, 0, len(raw))
	for _, r := range raw {
		if !r.used() {
			continue
		}
		out = append(out, entryFileInfo{&Entry{h: d.vfs.h, raw: r}})
		if n > 0 && len(out) == n {
			break
		}
	}
	return out, nil
}

type rootFileInfo struct{}

func (rootFileInfo) Name() string       { return "." }
func (rootFileInfo) Size() int64        { return 0 }
func (rootFileInfo) Mode() fs.FileMode  { return fs.ModeDir }
func (rootFileInfo) ModTime() time.Time { return time.Time{} }
func (rootFileInfo) IsDir() bool        { return true }
func (rootFileInfo) Sys() interface{}   { return nil }

// entryFileInfo adapts *Entry to both fs.FileInfo and fs.DirEntry.
type entryFileInfo struct {
	entry *Entry
}

func (e entryFileInfo) Name() string { return e.entry.Name() }
func (e entryFileInfo) Size() int64  { return e.entry.Size() }
func (e entryFileInfo) Mode() fs.FileMode {
	if e.IsDir() {
		return fs.ModeDir
	}
	return 0
}
func (e entryFileInfo) ModTime() time.Time { return e.entry.ModTime() }
func (e entryFileInfo) IsDir() bool        { return e.entry.Type() == EntryTypeFolder }
func (e entryFileInfo) Sys() interface{}   { return e.entry }
func (e entryFileInfo) Type() fs.FileMode  { return e.Mode().Type() }
func (e entryFileInfo) Info() (fs.FileInfo, error) {
	return e, nil
}

// translateFSErr maps the VFS's typed errors onto the fs package's sentinel
// errors so callers using errors.Is(err, fs.ErrNotExist) get the behavior
// they expect from an fs.FS.
func translateFSErr(err error) error {
	var notFound *NotFoundError
	var notDir *NotADirectoryError
	switch {
	case errors.As(err, &notFound):
		return fs.ErrNotExist
	case errors.As(err, &notDir):
		return fs.ErrInvalid
	default:
		return err
	}
}
