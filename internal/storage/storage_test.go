package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	local, err := NewLocal(filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	assert.Equal(t, "local", local.Mode())

	ref, err := local.Save(context.Background(), "rec.mp4", "video/mp4", []byte("payload"))
	require.NoError(t, err)
	assert.Nil(t, ref.RemoteURL)

	data, err := os.ReadFile(ref.Path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, local.Remove(context.Background(), ref))
	_, err = os.Stat(ref.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestLocal_RemoveMissingFileIsNotAnError(t *testing.T) {
	local, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	err = local.Remove(context.Background(), FileRef{Path: filepath.Join(local.Dir, "gone.mp4")})
	assert.NoError(t, err)

	// An empty reference is a no-op too.
	assert.NoError(t, local.Remove(context.Background(), FileRef{}))
}
