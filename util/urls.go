package util

import (
	"net/url"
	"strings"

	"github.com/alioygur/is"
)

func MakeUrl(parts ...string) string {
	res := ""
	for i, p := range parts {
		if p == "" {
			continue
		}
		if p[len(p)-1:] == "/" {
			p = p[:len(p)-1]
		}
		if p != "" && p[0] != '/' && i > 0 {
			res += "/" + p
		} else {
			res += p
		}
	}
	return res
}

// IsHttpUrl reports whether s is an absolute http or https url.
func IsHttpUrl(s string) bool {
	if !is.URL(s) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func IsEmail(s string) bool {
	return is.Email(strings.TrimSpace(s))
}
