package buildlog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autodeps/internal/adapters/buildlog"
	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.log")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestReader_Read(t *testing.T) {
	path := writeLog(t, `make: Entering directory '/src'
gcc -c -o a.o /src/modA/a.cpp
echo done
g++ -o /src/modA/libfoo.so a.o -lbar
`)

	invs, err := buildlog.NewReader().Read(path)
	require.NoError(t, err)
	require.Len(t, invs, 2)

	assert.True(t, invs[0].CompileOnly)
	assert.Equal(t, "a.o", invs[0].Output)
	assert.False(t, invs[1].CompileOnly)
	assert.Equal(t, []string{"bar"}, invs[1].Libraries)
}

func TestReader_ReadFailsOnBadLine(t *testing.T) {
	path := writeLog(t, "gcc -c -o a.o a.c\ng++ -pthread -o app a.o\n")

	_, err := buildlog.NewReader().Read(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidInvocation.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, 2, zErr.Metadata()["line_number"])
}

func TestReader_ReadMissingFile(t *testing.T) {
	_, err := buildlog.NewReader().Read(filepath.Join(t.TempDir(), "missing.log"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLogReadFailed.Error())
}
