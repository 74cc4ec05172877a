package printcheck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"bom-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFilterFiles(t *testing.T) {
	files := []string{
		"STLs/panels/Side-Panel.stl",
		"STLs/tools/Jig.stl",
		"STLs/panels/Side-Panel-PROTOTYPE.stl",
	}

	t.Run("directory prefix", func(t *testing.T) {
		got := FilterFiles(files, []string{"STLs/tools/"}, nil)
		assert.Equal(t, []string{
			"STLs/panels/Side-Panel.stl",
			"STLs/panels/Side-Panel-PROTOTYPE.stl",
		}, got)
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := FilterFiles(files, nil, []string{"prototype"})
		assert.Equal(t, []string{
			"STLs/panels/Side-Panel.stl",
			"STLs/tools/Jig.stl",
		}, got)
	})

	t.Run("no excludes keeps everything", func(t *testing.T) {
		assert.Equal(t, files, FilterFiles(files, nil, nil))
	})
}

func TestLocalFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"STLs/panels/Side-Panel.stl",
		"STLs/frame/deep/Corner.stl",
		"STLs/frame/notes.txt",
		"Other/Stray.stl",
	} {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("solid\n"), 0o644))
	}

	source := LocalFiles{Root: root, Glob: "STLs/**/*.stl"}
	files, err := source.Files(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"STLs/panels/Side-Panel.stl",
		"STLs/frame/deep/Corner.stl",
	}, files)
}

func TestLocalFilesApplyExcludes(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"STLs/panels/Side-Panel.stl",
		"STLs/tools/Jig.stl",
	} {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	source := LocalFiles{Root: root, Glob: "STLs/**/*.stl", ExcludeDirs: []string{"STLs/tools/"}}
	files, err := source.Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"STLs/panels/Side-Panel.stl"}, files)
}

func objectChannel(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, obj := range objects {
		ch <- obj
	}
	close(ch)
	return ch
}

func TestStorageFiles(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "releases", mock.Anything).Return(objectChannel(
		minio.ObjectInfo{Key: "STLs/panels/Side-Panel.stl"},
		minio.ObjectInfo{Key: "STLs/panels/readme.md"},
		minio.ObjectInfo{Key: "STLs/frame/Corner.stl"},
	))

	source := StorageFiles{
		Client:    client,
		Bucket:    "releases",
		Prefix:    "STLs/",
		Extension: ".stl",
	}
	files, err := source.Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"STLs/panels/Side-Panel.stl",
		"STLs/frame/Corner.stl",
	}, files)
	client.AssertExpectations(t)
}

func TestStorageFilesListError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "releases", mock.Anything).Return(objectChannel(
		minio.ObjectInfo{Err: fmt.Errorf("access denied")},
	))

	source := StorageFiles{Client: client, Bucket: "releases", Extension: ".stl"}
	_, err := source.Files(context.Background())
	assert.ErrorContains(t, err, "access denied")
}
