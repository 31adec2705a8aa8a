package upload_controller

import (
	"bytes"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/datastores"
	"github.com/t2bot/portfolio-repo/metrics"
	"github.com/t2bot/portfolio-repo/pool"
	"github.com/t2bot/portfolio-repo/util"
)

const jpegQuality = 85

type UploadResult struct {
	Url         string `json:"url"`
	PublicId    string `json:"publicId"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	ContentType string `json:"-"`
	SizeBytes   int64  `json:"-"`
}

// Upload validates and stores a file. Images are cropped to the configured
// size and re-encoded as JPEG first.
func Upload(ctx rcontext.RequestContext, file io.ReadSeeker, size int64, declaredType string, filename string) (*UploadResult, error) {
	if file == nil {
		return nil, &PolicyError{Err: common.ErrNoFile, Message: "No file provided"}
	}
	conf := config.Get().Uploads

	detected, err := util.DetectMimeType(file)
	if err != nil {
		return nil, errors.Wrap(err, "error detecting file type")
	}
	kind, contentType, err := classify(conf, detected, declaredType)
	if err != nil {
		ctx.Log.Infof("Rejecting upload of %s (declared as %s)", detected, declaredType)
		return nil, err
	}
	if err = checkSize(conf, kind, size); err != nil {
		ctx.Log.Infof("Rejecting %s upload of %s", kind, humanize.IBytes(uint64(size)))
		return nil, err
	}

	ctx = ctx.LogWithFields(logrus.Fields{"uploadKind": kind, "contentType": contentType})
	ctx.Log.Infof("Uploading %s (%s)", filename, humanize.IBytes(uint64(size)))

	id := uuid.NewString()
	publicId := path.Join(kind.folder(), id)
	result := &UploadResult{PublicId: publicId}

	var data io.Reader = file
	dataSize := size
	var location string
	if kind == KindImage {
		var encoded *bytes.Buffer
		err = pool.DoImageWork(ctx, func() error {
			var innerErr error
			encoded, innerErr = normalizeImage(file, conf.ImageWidth, conf.ImageHeight)
			return innerErr
		})
		if err != nil {
			ctx.Log.Warn("Unable to process image: ", err)
			return nil, &PolicyError{Err: err, Message: "Unable to process image"}
		}
		data = encoded
		dataSize = int64(encoded.Len())
		contentType = "image/jpeg"
		location = publicId + ".jpg"
		result.Width = conf.ImageWidth
		result.Height = conf.ImageHeight
	} else {
		ext := util.ExtensionForMimeType(contentType)
		if ext == "" {
			ext = strings.ToLower(filepath.Ext(filename))
		}
		location = publicId + ext
	}

	ds := datastores.Get()
	if _, err = datastores.Upload(ctx, ds, location, data, dataSize, contentType); err != nil {
		return nil, errors.Wrap(err, "error persisting upload")
	}

	result.Url, err = datastores.PublicUrl(ds, location)
	if err != nil {
		return nil, errors.Wrap(err, "error determining upload url")
	}
	result.ContentType = contentType
	result.SizeBytes = dataSize

	metrics.UploadsProcessed.With(prometheus.Labels{"kind": string(kind), "datastore": ds.Type}).Inc()
	metrics.UploadBytes.With(prometheus.Labels{"kind": string(kind)}).Observe(float64(dataSize))
	ctx.Log.Info("Upload stored at ", result.Url)
	return result, nil
}

func normalizeImage(r io.ReadSeeker, width int, height int) (*bytes.Buffer, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	filled := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err = imaging.Encode(buf, filled, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}
	return buf, nil
}
