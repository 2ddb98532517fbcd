package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	domain "rigforge/internal/model"
)

// JSONSpecs stores a typed PartSpecs variant in a JSON column.
type JSONSpecs domain.PartSpecs

// Scan implements sql.Scanner interface
func (j *JSONSpecs) Scan(value interface{}) error {
	if value == nil {
		*j = JSONSpecs{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSONSpecs value: %v", value)
	}
	return json.Unmarshal(bytes, j)
}

// Value implements driver.Valuer interface
func (j JSONSpecs) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// JSONConfiguration stores a full build snapshot in a JSON column. Builds
// persist the snapshot wholesale: the configuration is the single source of
// truth and derived state is never stored next to it.
type JSONConfiguration domain.Configuration

// Scan implements sql.Scanner interface
func (j *JSONConfiguration) Scan(value interface{}) error {
	if value == nil {
		*j = JSONConfiguration{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal JSONConfiguration value: %v", value)
	}
	return json.Unmarshal(bytes, j)
}

// Value implements driver.Valuer interface
func (j JSONConfiguration) Value() (driver.Value, error) {
	return json.Marshal(j)
}
