package _apimeta

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

const maxJsonBodyBytes = 1024 * 1024

var ErrBadJson = errors.New("request body is not valid JSON")

// ReadJsonBody decodes the request body into dest. An empty body leaves dest
// untouched.
func ReadJsonBody(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return nil
	}
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJsonBodyBytes))
	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Wrap(ErrBadJson, err.Error())
	}
	return nil
}
