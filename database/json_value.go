package database

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"reflect"
)

// jsonValue stores a struct pointer in a jsonb column. A nil pointer is written
// as NULL and a NULL column leaves the target untouched.
type jsonValue struct {
	target interface{}
}

// Value implements driver.Valuer
func (j jsonValue) Value() (driver.Value, error) {
	if j.target == nil {
		return nil, nil
	}
	if v := reflect.ValueOf(j.target); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, nil
	}
	return json.Marshal(j.target)
}

// Scan implements sql.Scanner
func (j jsonValue) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch b := value.(type) {
	case []byte:
		return json.Unmarshal(b, j.target)
	case string:
		return json.Unmarshal([]byte(b), j.target)
	default:
		return errors.New("failed to assert jsonb is bytes")
	}
}
