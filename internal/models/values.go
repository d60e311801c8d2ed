package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

const valueSeparator = ","

// ValueList is stored as a single delimited string column.
type ValueList []string

func ParseValueList(s string) ValueList {
	out := ValueList{}
	for _, p := range strings.Split(s, valueSeparator) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (v ValueList) String() string {
	return strings.Join(v, valueSeparator)
}

func (v ValueList) Value() (driver.Value, error) {
	return v.String(), nil
}

func (v *ValueList) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		*v = ValueList{}
	case string:
		*v = ParseValueList(s)
	case []byte:
		*v = ParseValueList(string(s))
	default:
		return fmt.Errorf("value list: unsupported type %T", src)
	}
	return nil
}

func (ValueList) GormDataType() string { return "string" }

func (v ValueList) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(v))
}

// UnmarshalJSON accepts either a JSON array or a delimited string.
func (v *ValueList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		out := make(ValueList, 0, len(list))
		for _, s := range list {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		*v = out
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("values must be a list of strings: %w", err)
	}
	*v = ParseValueList(s)
	return nil
}
