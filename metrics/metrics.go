package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var HttpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_http_requests_total",
}, []string{"action", "method"})
var HttpResponses = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_http_responses_total",
}, []string{"action", "method", "statusCode"})
var HttpResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name: "portfolio_http_response_time_seconds",
}, []string{"action", "method"})
var CacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_cache_hits_total",
}, []string{"cache"})
var CacheMisses = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_cache_misses_total",
}, []string{"cache"})
var ContentReferencesParsed = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_content_references_parsed_total",
}, []string{"platform", "extracted"})
var AuthAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_auth_attempts_total",
}, []string{"action", "outcome"})
var UploadsProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_uploads_processed_total",
}, []string{"kind", "datastore"})
var UploadBytes = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "portfolio_upload_bytes",
	Buckets: prometheus.ExponentialBuckets(16*1024, 2, 10),
}, []string{"kind"})
var S3Operations = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "portfolio_s3_operations_total",
}, []string{"operation"})

func init() {
	prometheus.MustRegister(HttpRequests)
	prometheus.MustRegister(HttpResponses)
	prometheus.MustRegister(HttpResponseTime)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(ContentReferencesParsed)
	prometheus.MustRegister(AuthAttempts)
	prometheus.MustRegister(UploadsProcessed)
	prometheus.MustRegister(UploadBytes)
	prometheus.MustRegister(S3Operations)
}
