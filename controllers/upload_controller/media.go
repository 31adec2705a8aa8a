package upload_controller

import (
	"io"
	"path"

	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/datastores"
	"github.com/t2bot/portfolio-repo/util"
)

type StoredMedia struct {
	Data        io.ReadSeekCloser
	ContentType string
	SizeBytes   int64
	Filename    string
}

// OpenMedia opens a stored upload for serving. S3 datastores with a public url
// return a datastores.RedirectError instead.
func OpenMedia(ctx rcontext.RequestContext, folder string, name string) (*StoredMedia, error) {
	location := path.Join(folder, name)
	f, err := datastores.DownloadOrRedirect(ctx, datastores.Get(), location)
	if err != nil {
		return nil, err
	}

	contentType, err := util.DetectMimeType(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &StoredMedia{
		Data:        f,
		ContentType: contentType,
		SizeBytes:   size,
		Filename:    name,
	}, nil
}
