package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// stringList persists a []string column as a JSONB array. database/sql over
// the pgx stdlib driver has no native scan path for text arrays, so the
// relationship id lists are stored as JSONB instead.
type stringList []string

func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

func (l *stringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("cannot scan %T into string list", src)
	}
}
