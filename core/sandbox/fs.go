package sandbox

import (
	"os"
	"path"
	"time"

	"github.com/spf13/afero"
)

// NewSessionFS builds the filesystem a practice session sees: a writable
// in-memory layer over a read-only seed, so students can create and break
// files freely without touching the seed.
func NewSessionFS(seed FS) FS {
	return afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(seed), afero.NewMemMapFs())
}

// NewDirSeedFS exposes a host directory as a read-only seed filesystem
// rooted at "/".
func NewDirSeedFS(dir string) FS {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// NewCwdFs wraps a filesystem so relative paths resolve against the working
// directory reported by getwd. Afero's in-memory filesystems treat every
// path as absolute; processes have a cwd.
func NewCwdFs(base FS, getwd func() string) FS {
	return &cwdFs{base: base, getwd: getwd}
}

type cwdFs struct {
	base  FS
	getwd func() string
}

var (
	_ FS            = (*cwdFs)(nil)
	_ afero.Lstater = (*cwdFs)(nil)
)

func (c *cwdFs) resolve(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Clean(path.Join(c.getwd(), name))
}

func (c *cwdFs) Name() string { return "CwdFs" }

func (c *cwdFs) Create(name string) (afero.File, error) {
	return c.base.Create(c.resolve(name))
}

func (c *cwdFs) Mkdir(name string, perm os.FileMode) error {
	return c.base.Mkdir(c.resolve(name), perm)
}

func (c *cwdFs) MkdirAll(p string, perm os.FileMode) error {
	return c.base.MkdirAll(c.resolve(p), perm)
}

func (c *cwdFs) Open(name string) (afero.File, error) {
	return c.base.Open(c.resolve(name))
}

func (c *cwdFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return c.base.OpenFile(c.resolve(name), flag, perm)
}

func (c *cwdFs) Remove(name string) error {
	return c.base.Remove(c.resolve(name))
}

func (c *cwdFs) RemoveAll(p string) error {
	return c.base.RemoveAll(c.resolve(p))
}

func (c *cwdFs) Rename(oldname, newname string) error {
	return c.base.Rename(c.resolve(oldname), c.resolve(newname))
}

func (c *cwdFs) Stat(name string) (os.FileInfo, error) {
	return c.base.Stat(c.resolve(name))
}

// LstatIfPossible passes lstat through to the base filesystem when it has
// one, so symlinks stay visible over the real OS.
func (c *cwdFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if lstater, ok := c.base.(afero.Lstater); ok {
		return lstater.LstatIfPossible(c.resolve(name))
	}
	info, err := c.base.Stat(c.resolve(name))
	return info, false, err
}

func (c *cwdFs) Chmod(name string, mode os.FileMode) error {
	return c.base.Chmod(c.resolve(name), mode)
}

func (c *cwdFs) Chown(name string, uid, gid int) error {
	return c.base.Chown(c.resolve(name), uid, gid)
}

func (c *cwdFs) Chtimes(name string, atime, mtime time.Time) error {
	return c.base.Chtimes(c.resolve(name), atime, mtime)
}
