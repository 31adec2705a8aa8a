package datastores

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/metrics"
)

// Upload persists exactly size bytes of data at location and returns the
// number of bytes written.
func Upload(ctx rcontext.RequestContext, ds config.DatastoreConfig, location string, data io.Reader, size int64, contentType string) (int64, error) {
	location, err := CleanLocation(location)
	if err != nil {
		return 0, err
	}

	var uploadedBytes int64
	if ds.Type == config.DatastoreTypeS3 {
		var s3c *s3
		s3c, err = getS3(ds)
		if err != nil {
			return 0, err
		}

		metrics.S3Operations.With(prometheus.Labels{"operation": "PutObject"}).Inc()
		var info minio.UploadInfo
		info, err = s3c.client.PutObject(ctx.Context, s3c.bucket, location, data, size, minio.PutObjectOptions{StorageClass: s3c.storageClass, ContentType: contentType})
		uploadedBytes = info.Size
	} else if ds.Type == config.DatastoreTypeFile {
		basePath := ds.Options["path"]
		targetFile := path.Join(basePath, location)

		if _, err = os.Stat(targetFile); err == nil {
			return 0, fmt.Errorf("refusing to overwrite %s", location)
		} else if !os.IsNotExist(err) {
			return 0, err
		}

		if err = os.MkdirAll(path.Dir(targetFile), 0755); err != nil {
			return 0, err
		}
		var file *os.File
		file, err = os.OpenFile(targetFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			return 0, err
		}
		uploadedBytes, err = io.Copy(file, data)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	} else {
		return 0, errors.New("unknown datastore type - contact developer")
	}

	if err != nil {
		return 0, err
	}
	if uploadedBytes != size {
		if err = Remove(ctx, ds, location); err != nil {
			ctx.Log.Warn("Error deleting upload (delete attempted due to persistence error): ", err)
		}
		return 0, fmt.Errorf("upload size mismatch: expected %d got %d bytes", size, uploadedBytes)
	}

	return uploadedBytes, nil
}
