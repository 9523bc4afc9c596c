package upload

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["image"][0]
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(bytes.NewBuffer(nil))
	return l
}

func TestDiskSaveOverwritesSameName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDisk(filepath.Join(dir, "uploaded"), quietLogger())
	require.NoError(t, err)

	name, err := store.Save(context.Background(), fileHeader(t, "cat.png", []byte("first")))
	require.NoError(t, err)
	assert.Equal(t, "cat.png", name)

	name, err = store.Save(context.Background(), fileHeader(t, "cat.png", []byte("second")))
	require.NoError(t, err)
	assert.Equal(t, "cat.png", name)

	content, err := os.ReadFile(filepath.Join(dir, "uploaded", "cat.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestDiskSaveStaysInsideDirectory(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDisk(dir, quietLogger())
	require.NoError(t, err)

	name, err := store.Save(context.Background(), fileHeader(t, "../../escape.png", []byte("x")))
	require.NoError(t, err)
	assert.Equal(t, "escape.png", name)
	assert.FileExists(t, filepath.Join(dir, "escape.png"))
}

func TestFileName(t *testing.T) {
	_, err := FileName(nil)
	assert.ErrorIs(t, err, ErrEmptyFileName)

	_, err = FileName(&multipart.FileHeader{Filename: ""})
	assert.ErrorIs(t, err, ErrEmptyFileName)

	name, err := FileName(&multipart.FileHeader{Filename: "dir/photo.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg", name)
}
