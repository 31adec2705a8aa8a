package datastores

import (
	"errors"
	"io"
	"os"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/metrics"
)

// Download opens location for reading. A missing file returns common.ErrNotFound.
func Download(ctx rcontext.RequestContext, ds config.DatastoreConfig, location string) (io.ReadSeekCloser, error) {
	location, err := CleanLocation(location)
	if err != nil {
		return nil, common.ErrNotFound
	}

	var rsc io.ReadSeekCloser
	if ds.Type == config.DatastoreTypeS3 {
		var s3c *s3
		s3c, err = getS3(ds)
		if err != nil {
			return nil, err
		}

		metrics.S3Operations.With(prometheus.Labels{"operation": "GetObject"}).Inc()
		rsc, err = s3c.client.GetObject(ctx.Context, s3c.bucket, location, minio.GetObjectOptions{})
	} else if ds.Type == config.DatastoreTypeFile {
		basePath := ds.Options["path"]

		var f *os.File
		f, err = os.Open(path.Join(basePath, location))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, common.ErrNotFound
			}
			return nil, err
		}
		if st, statErr := f.Stat(); statErr == nil && st.IsDir() {
			_ = f.Close()
			return nil, common.ErrNotFound
		}
		rsc = f
	} else {
		return nil, errors.New("unknown datastore type - contact developer")
	}

	return rsc, err
}

// DownloadOrRedirect sends S3 downloads to their public url instead of
// proxying them.
func DownloadOrRedirect(ctx rcontext.RequestContext, ds config.DatastoreConfig, location string) (io.ReadSeekCloser, error) {
	if ds.Type != config.DatastoreTypeS3 {
		return Download(ctx, ds, location)
	}

	s3c, err := getS3(ds)
	if err != nil {
		return nil, err
	}

	if s3c.publicBaseUrl != "" {
		metrics.S3Operations.With(prometheus.Labels{"operation": "RedirectGetObject"}).Inc()
		return nil, redirect(getS3Url(s3c, location))
	}

	return Download(ctx, ds, location)
}
