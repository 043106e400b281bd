package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is stored as a JSONB array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Feature is one entry of a service's feature list.
type Feature struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// FeatureList is stored as a JSONB array of objects.
type FeatureList []Feature

func (l FeatureList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Feature{})
	}
	return json.Marshal(l)
}

func (l *FeatureList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ServiceDetails is the structured detail record of a service,
// stored as a single JSONB document.
type ServiceDetails struct {
	Included    []string `json:"included"`
	Approach    string   `json:"approach"`
	Materials   string   `json:"materials"`
	Timeline    string   `json:"timeline"`
	SuitableFor string   `json:"suitable_for"`
}

func (d ServiceDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *ServiceDetails) Scan(value interface{}) error {
	return scanJSON(value, d)
}

func scanJSON(value, dst interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	}
	return fmt.Errorf("unsupported jsonb source type %T", value)
}
