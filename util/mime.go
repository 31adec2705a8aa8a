package util

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/h2non/filetype"
	"github.com/ryanuber/go-glob"
)

// DetectMimeType sniffs the start of r and rewinds it afterwards.
func DetectMimeType(r io.ReadSeeker) (string, error) {
	buf := make([]byte, 3072)

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	buf = buf[:n]
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	kind, err := filetype.Match(buf)
	if err != nil || kind == filetype.Unknown {
		// office documents and plain text are better handled by mimetype
		contentType := mimetype.Detect(buf).String()
		contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		return contentType, nil
	}

	return kind.MIME.Value, nil
}

func MatchesAnyMimeType(contentType string, patterns []string) bool {
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if contentType == "" {
		return false
	}
	for _, p := range patterns {
		if glob.Glob(strings.ToLower(p), contentType) {
			return true
		}
	}
	return false
}

func ExtensionForMimeType(contentType string) string {
	if m := mimetype.Lookup(contentType); m != nil {
		return m.Extension()
	}
	return ""
}
