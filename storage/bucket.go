package storage

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

// Bucket describes where uploaded signature files live: a writable
// directory on disk, or an S3 bucket with an optional key prefix.
type Bucket struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int
	UpdatedAt   int
	Name        string `gorm:"type:varchar(200)"` // S3 bucket name for S3 buckets
	StorageType StorageType
	Path        string // Directory on disk or key prefix in the S3 bucket
	AuthDetails string // S3 only: "key:secret"
	Region      string `gorm:"type:varchar(30)"` // S3 only
}

// CreateSVC builds the S3 client for this bucket.
func (b *Bucket) CreateSVC() *s3.S3 {
	conf := aws.Config{Region: aws.String(b.Region)}
	if parts := strings.SplitN(b.AuthDetails, ":", 2); len(parts) == 2 {
		conf.Credentials = credentials.NewStaticCredentials(parts[0], parts[1], "")
	}
	return s3.New(session.Must(session.NewSession(&conf)))
}

// GetRemotePath prefixes an object key with the bucket's configured prefix.
func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}
