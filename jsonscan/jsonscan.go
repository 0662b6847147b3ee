// Package jsonscan decodes JSON database columns into Go values.
package jsonscan

import (
	"encoding/json"
	"fmt"
)

// JsonScan implements the body of sql.Scanner for JSON encoded columns.
// A NULL column leaves b untouched.
func JsonScan[T any](src interface{}, b T) error {
	switch v := src.(type) {
	case []byte:
		if string(v) == "null" {
			return nil
		}
		return json.Unmarshal(v, b)
	case string:
		if v == "null" {
			return nil
		}
		return json.Unmarshal([]byte(v), b)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot convert %T", src)
	}
}
