package dbmodels

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// Content is the form payload. The workflow never looks inside it.
type Content json.RawMessage

func (c Content) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "{}", nil
	}
	return string(c), nil
}

func (c *Content) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*c = nil
	case []byte:
		*c = append((*c)[:0], v...)
	case string:
		*c = Content(v)
	default:
		return errors.Errorf("unsupported content type %T", value)
	}
	return nil
}

func (c Content) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("{}"), nil
	}
	return c, nil
}

func (c *Content) UnmarshalJSON(data []byte) error {
	*c = append((*c)[:0], data...)
	return nil
}

func (c Content) Clone() Content {
	if c == nil {
		return nil
	}
	return Content(bytes.Clone(c))
}

// StringMap holds the official-use fields filled in by the legal officer.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	valueString, err := json.Marshal(m)
	return string(valueString), err
}

func (m *StringMap) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*m = StringMap{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported official use type %T", value)
	}
	return json.Unmarshal(data, m)
}

func (m StringMap) Clone() StringMap {
	if m == nil {
		return nil
	}
	result := make(StringMap, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
