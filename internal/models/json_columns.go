package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SkillDeltas maps a skill name to the points one decision contributes.
// It is stored as a JSON text column.
type SkillDeltas map[string]int

func (d SkillDeltas) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]int(d))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *SkillDeltas) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scan skill deltas: %w", err)
	}
	out := SkillDeltas{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("scan skill deltas: %w", err)
		}
	}
	*d = out
	return nil
}

// JSONObject is a free-form object stored as a JSON text column.
type JSONObject map[string]any

func (o JSONObject) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	b, err := json.Marshal(map[string]any(o))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *JSONObject) Scan(src any) error {
	if src == nil {
		*o = nil
		return nil
	}
	raw, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("scan json object: %w", err)
	}
	out := JSONObject{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("scan json object: %w", err)
		}
	}
	*o = out
	return nil
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", src)
	}
}
