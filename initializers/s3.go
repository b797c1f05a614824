package initializers

import (
	"context"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	filestorage "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/file-storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		panic(err.Error())
	}

	filestorage.NewInstance(minioClient, config.Conf.S3.BucketName, config.Conf.S3.PublicBaseURL)
	if err = filestorage.Instance.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("object storage is not reachable, uploads will fail")
		return
	}
	log.Info("S3 client initialized")
}
