package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uploadContext(t *testing.T, field, filename string, content []byte) *gin.Context {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/submit", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func testStore(t *testing.T) StorageAPI {
	t.Helper()
	return NewDiskStorage(&Bucket{Path: t.TempDir()})
}

func TestSaveSignatureUploadValidPNG(t *testing.T) {
	store := testStore(t)
	c := uploadContext(t, "cert_signature_file", "signature.png", pngBytes(t))

	path := SaveSignatureUpload(c, store, "cert_signature_file")
	require.NotNil(t, path)
	assert.True(t, strings.HasPrefix(*path, PathPrefix))
	assert.True(t, strings.HasSuffix(*path, ".png"))

	name := strings.TrimPrefix(*path, PathPrefix)
	assert.Greater(t, store.GetSize(name), int64(0))
	// preview stored next to the original
	assert.Greater(t, store.GetSize(ThumbName(name)), int64(0))
}

func TestSaveSignatureUploadUniqueNames(t *testing.T) {
	store := testStore(t)
	content := pngBytes(t)
	first := SaveSignatureUpload(uploadContext(t, "f", "a.png", content), store, "f")
	second := SaveSignatureUpload(uploadContext(t, "f", "a.png", content), store, "f")
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, *first, *second)
}

func TestSaveSignatureUploadMissingField(t *testing.T) {
	store := testStore(t)
	c := uploadContext(t, "other_field", "", nil)
	assert.Nil(t, SaveSignatureUpload(c, store, "cert_signature_file"))
}

func TestSaveSignatureUploadBlockedExtension(t *testing.T) {
	store := testStore(t)
	c := uploadContext(t, "f", "shell.php", []byte("<?php echo 1; ?>"))
	assert.Nil(t, SaveSignatureUpload(c, store, "f"))
}

func TestSaveSignatureUploadDisallowedExtension(t *testing.T) {
	store := testStore(t)
	c := uploadContext(t, "f", "notes.txt", []byte("plain text"))
	assert.Nil(t, SaveSignatureUpload(c, store, "f"))

	c = uploadContext(t, "f", "noext", []byte("data"))
	assert.Nil(t, SaveSignatureUpload(c, store, "f"))
}

func TestSaveSignatureUploadRenamedExecutable(t *testing.T) {
	store := testStore(t)
	c := uploadContext(t, "f", "fake.png", []byte("#!/bin/sh\nrm -rf /\n"))
	assert.Nil(t, SaveSignatureUpload(c, store, "f"))
}

func TestSaveSignatureUploadTooLarge(t *testing.T) {
	store := testStore(t)
	big := make([]byte, maxSignatureSize+1)
	copy(big, pngBytes(t))
	c := uploadContext(t, "f", "big.png", big)
	assert.Nil(t, SaveSignatureUpload(c, store, "f"))
}

func TestThumbName(t *testing.T) {
	assert.Equal(t, "upload_x_thumb.jpg", ThumbName("upload_x.png"))
	assert.Equal(t, "upload_y_thumb.jpg", ThumbName("upload_y.jpeg"))
}

func TestDiskStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStorage(&Bucket{Path: dir})

	n, err := store.Save("sub/file.bin", bytes.NewReader([]byte("hello")))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, filepath.Join(dir, "sub/file.bin"), store.GetFullPath("sub/file.bin"))

	var out bytes.Buffer
	_, err = store.Load("sub/file.bin", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.String())

	require.NoError(t, store.Delete("sub/file.bin"))
	_, err = os.Stat(store.GetFullPath("sub/file.bin"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, int64(-1), store.GetSize("sub/file.bin"))
}
