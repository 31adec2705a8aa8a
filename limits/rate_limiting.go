package limits

import (
	"encoding/json"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/config"
)

var requestLimiter *limiter.Limiter

type rateLimitedResponse struct {
	Code    string `json:"errcode"`
	Message string `json:"error"`
}

func init() {
	requestLimiter = tollbooth.NewLimiter(0, nil)
	requestLimiter.SetIPLookups([]string{"X-Forwarded-For", "X-Real-IP", "RemoteAddr"})
	requestLimiter.SetTokenBucketExpirationTTL(time.Hour)

	b, _ := json.Marshal(rateLimitedResponse{Code: common.ErrCodeRateLimitExceeded, Message: "Too many requests"})
	requestLimiter.SetMessage(string(b))
	requestLimiter.SetMessageContentType("application/json")
}

func GetRequestLimiter() *limiter.Limiter {
	requestLimiter.SetBurst(config.Get().RateLimit.BurstCount)
	requestLimiter.SetMax(config.Get().RateLimit.RequestsPerSecond)

	return requestLimiter
}
