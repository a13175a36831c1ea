package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/durp-dev/durp/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := filesystem.NewOS()
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "bean.json"), []byte(`{}`), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "storage"), 0755))

	info, err := fsys.Stat(filepath.Join(tmpDir, "bean.json"))
	require.NoError(t, err)
	assert.Equal(t, "bean.json", info.Name())

	content, err := fsys.ReadFile(filepath.Join(tmpDir, "bean.json"))
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), content)

	entries, err := fsys.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = fsys.Stat(filepath.Join(tmpDir, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestOS_RealPathResolvesSymlinks(t *testing.T) {
	fsys := filesystem.NewOS()
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")
	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.Symlink(target, link))

	viaLink, err := fsys.RealPath(link)
	require.NoError(t, err)
	direct, err := fsys.RealPath(target + "/")
	require.NoError(t, err)
	assert.Equal(t, direct, viaLink)
}

func TestAferoFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/p/child", 0755))
	require.NoError(t, afero.WriteFile(mem, "/p/bean.json", []byte(`{}`), 0644))

	fsys := filesystem.NewAferoFS(mem)

	entries, err := fsys.ReadDir("/p")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bean.json", entries[0].Name())
	assert.False(t, entries[0].IsDir())
	assert.Equal(t, "child", entries[1].Name())
	assert.True(t, entries[1].IsDir())

	_, err = fsys.ReadFile("/p/child")
	assert.Error(t, err, "reading a directory should fail")

	real1, err := fsys.RealPath("/p/")
	require.NoError(t, err)
	real2, err := fsys.RealPath("/p")
	require.NoError(t, err)
	assert.Equal(t, real1, real2)

	_, err = fsys.RealPath("/nope")
	assert.Error(t, err)
}
