package datastores

import (
	"errors"
	"os"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/metrics"
)

func Remove(ctx rcontext.RequestContext, ds config.DatastoreConfig, location string) error {
	location, err := CleanLocation(location)
	if err != nil {
		return err
	}

	if ds.Type == config.DatastoreTypeS3 {
		var s3c *s3
		s3c, err = getS3(ds)
		if err != nil {
			return err
		}

		metrics.S3Operations.With(prometheus.Labels{"operation": "RemoveObject"}).Inc()
		err = s3c.client.RemoveObject(ctx.Context, s3c.bucket, location, minio.RemoveObjectOptions{})
	} else if ds.Type == config.DatastoreTypeFile {
		basePath := ds.Options["path"]
		err = os.Remove(path.Join(basePath, location))
		if err != nil && os.IsNotExist(err) {
			return nil // not existing means it was deleted, as far as we care
		}
	} else {
		return errors.New("unknown datastore type - contact developer")
	}

	return err
}
