package datastores

import (
	"errors"
	"path"
	"strings"

	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/util"
)

const MediaPathPrefix = "/media"

func Get() config.DatastoreConfig {
	return config.Get().Uploads.Datastore
}

// CleanLocation rejects locations which would escape the datastore root.
func CleanLocation(location string) (string, error) {
	if location == "" || strings.Contains(location, "\\") {
		return "", errors.New("invalid location")
	}
	cleaned := path.Clean("/" + location)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(location, "/") {
		return "", errors.New("invalid location")
	}
	for _, part := range strings.Split(cleaned, "/") {
		if part == ".." || part == "." || part == "" {
			return "", errors.New("invalid location")
		}
	}
	return cleaned, nil
}

// PublicUrl returns the address a browser can fetch location from.
func PublicUrl(ds config.DatastoreConfig, location string) (string, error) {
	switch ds.Type {
	case config.DatastoreTypeS3:
		s3c, err := getS3(ds)
		if err != nil {
			return "", err
		}
		return getS3Url(s3c, location), nil
	case config.DatastoreTypeFile:
		return util.MakeUrl(config.Get().General.PublicBaseUrl, MediaPathPrefix, location), nil
	default:
		return "", errors.New("unknown datastore type - contact developer")
	}
}
