package media

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"litoral-prime/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, legacyPrefix string) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(config.UploadsConfig{
		Dir:          dir,
		PublicPrefix: "/static/uploads",
		LegacyPrefix: legacyPrefix,
	})
	require.NoError(t, err)
	return store, dir
}

// fileHeader builds a real multipart.FileHeader by round-tripping a form.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveUpload(t *testing.T) {
	store, dir := newTestStore(t, "/static/uploads")

	ref, err := store.SaveUpload(fileHeader(t, "casa frente.jpg", []byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/casa_frente.jpg", ref)

	data, err := os.ReadFile(filepath.Join(dir, "casa_frente.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)
}

func TestSaveAllPreservesOrder(t *testing.T) {
	store, _ := newTestStore(t, "/static/uploads")

	refs, err := store.SaveAll([]*multipart.FileHeader{
		fileHeader(t, "a.jpg", []byte("a")),
		fileHeader(t, "b.jpg", []byte("b")),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/static/uploads/a.jpg", "/static/uploads/b.jpg"}, refs)
}

func TestRemoveOutsideManagedPrefix(t *testing.T) {
	store, _ := newTestStore(t, "/static/uploads")

	assert.Error(t, store.Remove("/etc/passwd"))
	assert.Error(t, store.Remove("/static/uploads/../../etc/passwd"))
}

func TestRemoveManagedFile(t *testing.T) {
	store, dir := newTestStore(t, "/static/uploads")
	path := filepath.Join(dir, "foto.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, store.Remove("/static/uploads/foto.jpg"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNormalizeLegacyPrefix(t *testing.T) {
	store, _ := newTestStore(t, "/uploads")

	assert.Equal(t, "/static/uploads/a.jpg", store.Normalize("/uploads/a.jpg"))
	assert.Equal(t, "/static/uploads/b.jpg", store.Normalize(" /uploads/b.jpg "))
	assert.Equal(t, "/outra/c.jpg", store.Normalize("/outra/c.jpg"))
}

func TestNormalizeSamePrefixPassthrough(t *testing.T) {
	store, _ := newTestStore(t, "/static/uploads")
	assert.Equal(t, "/static/uploads/a.jpg", store.Normalize("/static/uploads/a.jpg"))
}

func TestPlaceholder(t *testing.T) {
	store, _ := newTestStore(t, "/static/uploads")
	assert.Equal(t, "/static/uploads/placeholder.png", store.Placeholder())
}
