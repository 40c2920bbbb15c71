package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autodeps/internal/adapters/fs"
	"go.trai.ch/autodeps/internal/core/domain"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.log")
	content := "gcc -c -o a.o a.c\n"
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))

	got, err := fs.NewHasher().ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64String(content), got)
}

func TestHasher_ComputeFileHash_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to open file")
}
