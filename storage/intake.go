package storage

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/sumkai16/E1PersonalRecord/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PathPrefix is how stored signature files are referenced from person
// records: a relative "uploads/<name>" string, never an absolute path.
const PathPrefix = "uploads/"

const maxSignatureSize = 5 << 20 // 5 MiB

const thumbSize = 320

// Extensions that are never accepted, even before the allowlist runs.
var blockedExtensions = map[string]bool{
	".php": true, ".phtml": true, ".php3": true, ".php4": true, ".php5": true, ".php7": true,
	".phar": true, ".cgi": true, ".pl": true, ".asp": true, ".aspx": true, ".jsp": true,
	".sh": true, ".bat": true, ".cmd": true, ".exe": true,
}

// What signature uploads may actually be.
var allowedExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".pdf": true,
}

var allowedMimeTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"application/pdf": true,
}

// SaveSignatureUpload validates and stores one uploaded signature file,
// returning its storage-relative path. Every rejection (missing file, too
// large, bad extension, failed sniff, write error) degrades to nil: a bad
// upload never fails the surrounding form submission.
func SaveSignatureUpload(c *gin.Context, store StorageAPI, field string) *string {
	file, err := c.FormFile(field)
	if err != nil || file == nil || file.Filename == "" {
		return nil
	}
	if file.Size > maxSignatureSize {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" || blockedExtensions[ext] || !allowedExtensions[ext] {
		return nil
	}
	src, err := file.Open()
	if err != nil {
		return nil
	}
	defer src.Close()
	if !sniffAllowed(src) {
		return nil
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil
	}

	name := "upload_" + time.Now().Format("20060102_150405") + "_" + uuid.NewString() + ext
	if _, err := store.Save(name, src); err != nil {
		log.Printf("signature upload %q: save failed: %v", field, err)
		return nil
	}
	if ext != ".pdf" {
		createSignatureThumb(store, name)
	}
	path := PathPrefix + name
	return &path
}

// sniffAllowed is a best-effort content check to block renamed files. When
// the header cannot be read the check is skipped rather than failing the
// upload.
func sniffAllowed(src io.Reader) bool {
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return true
	}
	mime := http.DetectContentType(head[:n])
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return allowedMimeTypes[strings.TrimSpace(mime)]
}

// createSignatureThumb stores a small JPEG preview next to the original for
// the list/detail views. Best effort only.
func createSignatureThumb(store StorageAPI, name string) {
	var orig, thumb bytes.Buffer
	if _, err := store.Load(name, &orig); err != nil {
		return
	}
	if _, err := utils.CreateThumb(thumbSize, &orig, &thumb); err != nil {
		return
	}
	if _, err := store.Save(ThumbName(name), &thumb); err != nil {
		log.Printf("signature thumb for %q: save failed: %v", name, err)
	}
}

// ThumbName maps a stored file name to its preview name.
func ThumbName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + "_thumb.jpg"
}
