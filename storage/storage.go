// Package storage keeps uploaded signature files in a configured bucket
// (local directory by default, S3 optionally) and owns the intake
// validation for new uploads.
package storage

import (
	"io"
	"log"
	"net/http"

	"github.com/sumkai16/E1PersonalRecord/config"

	"gorm.io/gorm"
)

type StorageAPI interface {
	GetFullPath(path string) string
	GetSize(path string) int64
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	GetBucket() *Bucket
}

// Init migrates the bucket table and returns the storage backend for the
// uploads bucket. With no bucket configured yet, a disk bucket at
// config.UPLOADS_DIR is created so the system works out of the box.
func Init(db *gorm.DB) (StorageAPI, error) {
	if err := db.AutoMigrate(&Bucket{}); err != nil {
		return nil, err
	}
	var buckets []Bucket
	if err := db.Find(&buckets).Error; err != nil {
		return nil, err
	}
	if len(buckets) == 0 {
		b := Bucket{Name: "uploads", StorageType: StorageTypeFile, Path: config.UPLOADS_DIR}
		if err := db.Create(&b).Error; err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	log.Printf("Storage buckets found: %d", len(buckets))

	// The first disk bucket wins; fall back to whatever is first.
	selected := buckets[0]
	for _, b := range buckets {
		if b.StorageType == StorageTypeFile {
			selected = b
			break
		}
	}
	if selected.StorageType == StorageTypeS3 {
		return NewS3Storage(&selected), nil
	}
	return NewDiskStorage(&selected), nil
}
