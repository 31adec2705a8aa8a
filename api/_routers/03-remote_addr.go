package _routers

import (
	"net"
	"net/http"
	"strings"

	"github.com/sebest/xff"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common/config"
)

type RemoteAddrRouter struct {
	next http.Handler
}

func NewRemoteAddrRouter(next http.Handler) *RemoteAddrRouter {
	return &RemoteAddrRouter{next: next}
}

func (h *RemoteAddrRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Forwarded-Host") != "" && config.Get().General.UseForwardedHost {
		r.Host = r.Header.Get("X-Forwarded-Host")
	}

	r.RemoteAddr = clientAddress(r)
	if logger := GetLogger(r); logger != nil {
		r = replaceLogger(r, logger.WithFields(logrus.Fields{"remoteAddr": r.RemoteAddr}))
	}

	if h.next != nil {
		h.next.ServeHTTP(w, r)
	}
}

func clientAddress(r *http.Request) string {
	var raddr string
	if config.Get().General.TrustAnyForward {
		raddr = strings.TrimSpace(strings.Split(r.Header.Get("X-Forwarded-For"), ",")[0])
		if raddr == "" {
			raddr = strings.TrimSpace(r.Header.Get("X-Real-IP"))
		}
	} else {
		raddr = xff.GetRemoteAddr(r)
	}
	if raddr == "" {
		raddr = r.RemoteAddr
	}
	host, _, err := net.SplitHostPort(raddr)
	if err != nil {
		// no port
		return raddr
	}
	return host
}
