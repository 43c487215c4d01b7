// Package types holds JSON value types shared by request bodies.
package types

import (
	"encoding/json"
	"strings"
	"time"

	"healthhub/internal/errors"
)

// flexTimeLayouts are tried in order. Layouts without a zone are read as UTC.
var flexTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// FlexTime is a time.Time that unmarshals from RFC 3339 timestamps, zone-less
// ISO-8601 timestamps or plain dates. Values are normalized to UTC.
type FlexTime time.Time

// ParseFlexTime parses s with the layouts FlexTime accepts.
func ParseFlexTime(s string) (FlexTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range flexTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return FlexTime(t.UTC()), nil
		}
	}

	return FlexTime{}, errors.Errorf("FlexTime: invalid time %q", s)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Errorf("FlexTime: expected a date string, got %s", data)
	}

	parsed, err := ParseFlexTime(s)
	if err != nil {
		return err
	}
	*f = parsed

	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(f).UTC().Format(time.RFC3339Nano))
}

// Time converts FlexTime back to time.Time.
func (f FlexTime) Time() time.Time {
	return time.Time(f)
}

// TimePtr converts an optional FlexTime to an optional time.Time.
func TimePtr(f *FlexTime) *time.Time {
	if f == nil {
		return nil
	}
	t := f.Time()

	return &t
}
