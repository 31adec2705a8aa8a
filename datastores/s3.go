package datastores

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/metrics"
)

var s3clients = &sync.Map{}

type s3 struct {
	client        *minio.Client
	storageClass  string
	bucket        string
	region        string
	publicBaseUrl string
}

func ResetS3Clients() {
	s3clients = &sync.Map{}
}

func s3ClientKey(ds config.DatastoreConfig) string {
	return ds.Options["endpoint"] + "|" + ds.Options["bucketName"] + "|" + ds.Options["accessKeyId"]
}

func getS3(ds config.DatastoreConfig) (*s3, error) {
	if ds.Type != config.DatastoreTypeS3 {
		return nil, errors.New("not an S3 datastore")
	}
	key := s3ClientKey(ds)
	if val, ok := s3clients.Load(key); ok {
		return val.(*s3), nil
	}

	endpoint := ds.Options["endpoint"]
	bucket := ds.Options["bucketName"]
	accessKeyId := ds.Options["accessKeyId"]
	accessSecret := ds.Options["accessSecret"]
	region := ds.Options["region"]
	storageClass, hasStorageClass := ds.Options["storageClass"]
	useSslStr, hasSsl := ds.Options["ssl"]
	publicBaseUrl := strings.TrimSuffix(ds.Options["publicBaseUrl"], "/")

	if endpoint == "" || bucket == "" {
		return nil, errors.New("s3 datastore requires an endpoint and bucketName")
	}

	if !hasStorageClass || storageClass == "" {
		storageClass = "STANDARD"
	}

	useSsl := true
	if hasSsl && useSslStr != "" {
		useSsl, _ = strconv.ParseBool(useSslStr)
	}

	// minio wants a bare host
	endpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	endpoint = strings.TrimSuffix(endpoint, "/")

	client, err := minio.New(endpoint, &minio.Options{
		Region: region,
		Secure: useSsl,
		Creds:  credentials.NewStaticV4(accessKeyId, accessSecret, ""),
	})
	if err != nil {
		return nil, err
	}

	s3c := &s3{
		client:        client,
		storageClass:  storageClass,
		bucket:        bucket,
		region:        region,
		publicBaseUrl: publicBaseUrl,
	}
	s3clients.Store(key, s3c)
	return s3c, nil
}

// EnsureBucketExists creates the configured bucket when it is missing. File
// datastores are a no-op.
func EnsureBucketExists(ctx rcontext.RequestContext, ds config.DatastoreConfig) error {
	if ds.Type != config.DatastoreTypeS3 {
		return nil
	}
	s3c, err := getS3(ds)
	if err != nil {
		return err
	}

	metrics.S3Operations.With(prometheus.Labels{"operation": "BucketExists"}).Inc()
	exists, err := s3c.client.BucketExists(ctx.Context, s3c.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	ctx.Log.Infof("Creating bucket %s", s3c.bucket)
	metrics.S3Operations.With(prometheus.Labels{"operation": "MakeBucket"}).Inc()
	return s3c.client.MakeBucket(ctx.Context, s3c.bucket, minio.MakeBucketOptions{Region: s3c.region})
}

func getS3Url(s3c *s3, location string) string {
	if s3c.publicBaseUrl != "" {
		return fmt.Sprintf("%s/%s", s3c.publicBaseUrl, location)
	}
	// HACK: Surely there's a better way...
	return fmt.Sprintf("%s/%s/%s", s3c.client.EndpointURL(), s3c.bucket, location)
}
