package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "rfc3339 utc", in: `"2024-01-01T10:00:00Z"`, want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "rfc3339 offset", in: `"2024-01-01T12:00:00+02:00"`, want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "naive iso", in: `"2024-01-01T10:00:00"`, want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "naive iso fraction", in: `"2024-01-01T10:00:00.250"`, want: time.Date(2024, 1, 1, 10, 0, 0, 250_000_000, time.UTC)},
		{name: "space separated", in: `"2024-01-01 10:00:00"`, want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "plain date", in: `"2024-06-30"`, want: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexTime
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.True(t, tt.want.Equal(got.Time()), "got %s", got.Time())
			assert.Equal(t, time.UTC, got.Time().Location())
		})
	}
}

func TestFlexTime_UnmarshalJSONRejects(t *testing.T) {
	for _, in := range []string{`"yesterday"`, `12345`, `"2024-13-01"`} {
		var got FlexTime
		assert.Error(t, json.Unmarshal([]byte(in), &got), in)
	}
}

func TestFlexTime_NullLeavesPointerNil(t *testing.T) {
	var body struct {
		TakenAt *FlexTime `json:"taken_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"taken_at":null}`), &body))
	assert.Nil(t, body.TakenAt)
	assert.Nil(t, TimePtr(body.TakenAt))
}

func TestFlexTime_MarshalJSON(t *testing.T) {
	ft := FlexTime(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	data, err := json.Marshal(ft)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-01T10:00:00Z"`, string(data))
}
