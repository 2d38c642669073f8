package storage

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/sumkai16/E1PersonalRecord/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   Bucket
	s3Client *s3.S3
}

func NewS3Storage(bucket *Bucket) StorageAPI {
	return &S3Storage{
		bucket:   *bucket,
		s3Client: bucket.CreateSVC(),
	}
}

// GetFullPath returns a local scratch path in case of S3
func (s *S3Storage) GetFullPath(path string) string {
	return config.TMP_DIR + "/" + strings.ReplaceAll(path, "/", "_")
}

func (s *S3Storage) GetSize(path string) int64 {
	head, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	if err != nil || head.ContentLength == nil {
		return -1
	}
	return *head.ContentLength
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	// Signature uploads are small (5 MiB cap), buffering is fine.
	var buf bytes.Buffer
	size, err := io.Copy(&buf, reader)
	if err != nil {
		return 0, err
	}
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
		Body:   bytes.NewReader(buf.Bytes()),
	})
	if err != nil {
		return 0, err
	}
	return size, nil
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	if err != nil {
		http.NotFound(writer, request)
		return
	}
	defer resp.Body.Close()
	if resp.ContentType != nil {
		writer.Header().Set("content-type", *resp.ContentType)
	}
	_, _ = io.Copy(writer, resp.Body)
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket.Name,
		Key:    aws.String(s.bucket.GetRemotePath(path)),
	})
	return err
}

func (s *S3Storage) GetBucket() *Bucket {
	return &s.bucket
}
