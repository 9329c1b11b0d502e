package drills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelldrill/shelldrill/core/sandbox/sandboxtest"
)

func TestFiletype(t *testing.T) {
	cmd := sandboxtest.Command(Filetype, "filetype", "/srv", "/empty.txt", "/notes.txt")
	assert.Nil(t, cmd.FS.MkdirAll("/srv", 0755))
	assert.Nil(t, afero.WriteFile(cmd.FS, "/empty.txt", nil, 0644))
	assert.Nil(t, afero.WriteFile(cmd.FS, "/notes.txt", []byte("Hello, world!"), 0644))

	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")
	assert.Equal(t,
		"/srv: directory\n"+
			"/empty.txt: empty regular file\n"+
			"/notes.txt: regular file (13)\n",
		string(out))
}

func TestFiletype_symlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(target, []byte("hi\n"), 0644))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "live-link")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling-link")))

	cmd := sandboxtest.Command(Filetype, "filetype", "live-link", "dangling-link", "notes.txt")
	cmd.FS = afero.NewOsFs()
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 0, cmd.ExitStatus, "exit code")
	assert.Equal(t,
		"live-link: symbolic link\n"+
			"dangling-link: symbolic link\n"+
			"notes.txt: regular file (3)\n",
		string(out))
}

func TestFiletype_missing(t *testing.T) {
	cmd := sandboxtest.Command(Filetype, "filetype", "/nope")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 1, cmd.ExitStatus, "exit code")
	assert.Equal(t, "/nope: missing\n", string(out))
}

func TestFiletype_noArgs(t *testing.T) {
	cmd := sandboxtest.Command(Filetype, "filetype")
	out, err := cmd.CombinedOutput()

	assert.Nil(t, err)
	assert.Equal(t, 1, cmd.ExitStatus, "exit code")
	assert.Equal(t, "filetype: expected at least one path\n", string(out))
}
