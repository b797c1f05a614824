package filestorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadFile(ctx context.Context, submissionID, fileName string, fileReader io.Reader, fileSize int64, contentType string) (fileURL string, err error)
	MakeBucket(ctx context.Context) error
}

var Instance Provider

type impl struct {
	s3client      *minio.Client
	bucketName    string
	publicBaseURL string
}

func NewInstance(s3client *minio.Client, bucketName, publicBaseURL string) {
	Instance = &impl{
		s3client:      s3client,
		bucketName:    bucketName,
		publicBaseURL: publicBaseURL,
	}
}

func (i impl) UploadFile(ctx context.Context, submissionID, fileName string, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := ObjectKey(submissionID, uuid.NewString(), fileName)
	_, err := i.s3client.PutObject(ctx, i.bucketName, key, fileReader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "error uploading file")
	}
	log.
		WithField("submission_id", submissionID).
		WithField("object_key", key).
		Info("file uploaded")
	return FileURL(i.baseURL(), key), nil
}

func (i impl) MakeBucket(ctx context.Context) error {
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, i.bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, i.bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) baseURL() string {
	if i.publicBaseURL != "" {
		return i.publicBaseURL
	}
	return strings.TrimSuffix(i.s3client.EndpointURL().String(), "/") + "/" + i.bucketName
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ObjectKey places every upload under its submission and keeps the
// original file name readable.
func ObjectKey(submissionID, fileID, fileName string) string {
	name := unsafeNameChars.ReplaceAllString(path.Base(strings.ReplaceAll(fileName, `\`, "/")), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("submissions/%s/%s-%s", submissionID, fileID, name)
}

func FileURL(baseURL, key string) string {
	escaped := make([]string, 0)
	for _, part := range strings.Split(key, "/") {
		escaped = append(escaped, url.PathEscape(part))
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.Join(escaped, "/")
}
