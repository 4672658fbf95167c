package testutil

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFSStat(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddDir("/games/arma2/@CBA")
	mfs.AddFile("/games/arma2/arma2.exe", 1024)

	info, err := mfs.Stat("/games/arma2/@CBA")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "@CBA", info.Name())

	info, err = mfs.Stat("/games/arma2/arma2.exe")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(1024), info.Size())

	_, err = mfs.Stat("/games/arma2/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFSReadDir(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddDir("/games/arma2/@CBA")
	mfs.AddDir("/games/arma2/@ACE")
	mfs.AddFile("/games/arma2/readme.txt", 10)

	entries, err := mfs.ReadDir("/games/arma2")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Sorted by name
	assert.Equal(t, "@ACE", entries[0].Name())
	assert.Equal(t, "@CBA", entries[1].Name())
	assert.Equal(t, "readme.txt", entries[2].Name())
	assert.True(t, entries[0].IsDir())
	assert.False(t, entries[2].IsDir())
}

func TestMemoryFSReadDirMissing(t *testing.T) {
	mfs := NewMemoryFS()
	_, err := mfs.ReadDir("/nope")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFSInjectError(t *testing.T) {
	mfs := NewMemoryFS()
	mfs.AddDir("/games/locked")
	mfs.InjectError("/games/locked", fs.ErrPermission)

	_, err := mfs.ReadDir("/games/locked")
	assert.True(t, errors.Is(err, fs.ErrPermission))

	_, err = mfs.Stat("/games/locked")
	assert.True(t, errors.Is(err, fs.ErrPermission))
}
