package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/uploads"})
	require.NoError(t, err)
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.Save(ctx, "resumes/cv.pdf", strings.NewReader("resume content"), "application/pdf")
	require.NoError(t, err)

	reader, err := s.Get(ctx, "resumes/cv.pdf")
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "resume content", string(content))
}

func TestExistsAndDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	exists, err := s.Exists(ctx, "missing.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.Save(ctx, "cv.pdf", strings.NewReader("x"), "application/pdf"))

	exists, err = s.Exists(ctx, "cv.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, "cv.pdf"))

	exists, err = s.Exists(ctx, "cv.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing file is not an error.
	assert.NoError(t, s.Delete(ctx, "cv.pdf"))
}

func TestGetSize(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "cv.pdf", strings.NewReader("12345"), "application/pdf"))

	size, err := s.GetSize(ctx, "cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	_, err = s.GetSize(ctx, "missing.pdf")
	assert.Error(t, err)
}

func TestGetURL(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	url, err := s.GetURL(ctx, "resumes/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/cv.pdf", url)
}

func TestNewStorageRejectsUnknownType(t *testing.T) {
	_, err := NewStorage(Config{Type: "s3"})
	assert.Error(t, err)

	s, err := NewStorage(Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.NotNil(t, s)
}
