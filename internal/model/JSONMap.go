package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONMap stores a free-form key-value payload as jsonb. Package requirements
// are loosely typed per service package, so they stay opaque at this layer and
// are validated against the package's requirement schema before acceptance.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	return json.Marshal(m)
}

func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONMap", value)
	}

	return json.Unmarshal(data, m)
}

// ValidateScalarValues rejects nested objects and arrays. Requirement payloads
// are maps of scalar values only.
func (m JSONMap) ValidateScalarValues() error {
	for key, value := range m {
		switch value.(type) {
		case nil, bool, string, float64, int, int64:
		default:
			return errors.New("requirement field " + key + " must be a scalar value")
		}
	}

	return nil
}

func (JSONMap) GormDataType() string {
	return "jsonb"
}
