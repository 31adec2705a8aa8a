package _responses

import "io"

type EmptyResponse struct{}

type DoNotCacheResponse struct {
	Payload interface{}
}

// CreatedResponse replies with 201 instead of 200.
type CreatedResponse struct {
	Payload interface{}
}

type DownloadResponse struct {
	ContentType       string
	Filename          string
	SizeBytes         int64
	Data              io.ReadCloser
	TargetDisposition string
}
