package upload_controller

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/util"
)

type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

func (k Kind) folder() string {
	if k == KindImage {
		return "images"
	}
	return "documents"
}

// PolicyError is a rejected upload. Message is safe to show to the uploader.
type PolicyError struct {
	Err     error
	Message string
}

func (e *PolicyError) Error() string {
	return e.Message
}

func (e *PolicyError) Unwrap() error {
	return e.Err
}

const msgUnsupportedType = "File must be an image (JPG, PNG, WebP) or document (PDF, DOC, DOCX)"

// classify picks the upload kind from the sniffed type, falling back to the
// declared type only when sniffing was inconclusive.
func classify(conf config.UploadsConfig, detected string, declared string) (Kind, string, error) {
	candidates := []string{detected}
	if detected == "" || detected == "application/octet-stream" || detected == "application/zip" || detected == "application/x-ole-storage" {
		candidates = append(candidates, declared)
	}
	for _, ct := range candidates {
		if util.MatchesAnyMimeType(ct, conf.ImageTypes) {
			return KindImage, ct, nil
		}
		if util.MatchesAnyMimeType(ct, conf.DocumentTypes) {
			return KindDocument, ct, nil
		}
	}
	return "", "", &PolicyError{Err: common.ErrUnsupportedFileType, Message: msgUnsupportedType}
}

func maxSizeFor(conf config.UploadsConfig, kind Kind) int64 {
	if kind == KindDocument {
		return conf.MaxDocumentBytes
	}
	return conf.MaxImageBytes
}

func checkSize(conf config.UploadsConfig, kind Kind, size int64) error {
	limit := maxSizeFor(conf, kind)
	if limit > 0 && size > limit {
		return &PolicyError{
			Err:     common.ErrFileTooLarge,
			Message: fmt.Sprintf("File size must be less than %s", sizeLabel(limit)),
		}
	}
	return nil
}

func sizeLabel(n int64) string {
	const mib = 1024 * 1024
	if n%mib == 0 {
		return fmt.Sprintf("%dMB", n/mib)
	}
	return humanize.IBytes(uint64(n))
}
