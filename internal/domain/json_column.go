package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

func jsonColumnValue(v any) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func scanJSONColumn(value any, dst any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("expected []byte for json column, got %T", value)
	}
}

// StringList is a list of strings persisted as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return jsonColumnValue([]string{})
	}
	return jsonColumnValue([]string(l))
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	return scanJSONColumn(value, (*[]string)(l))
}
