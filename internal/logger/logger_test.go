//go:build !integration

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		pretty bool
		want   zerolog.Level
	}{
		{
			name:  "debug level",
			level: "debug",
			want:  zerolog.DebugLevel,
		},
		{
			name:  "info level",
			level: "info",
			want:  zerolog.InfoLevel,
		},
		{
			name:  "warn level",
			level: "warn",
			want:  zerolog.WarnLevel,
		},
		{
			name:  "error level",
			level: "error",
			want:  zerolog.ErrorLevel,
		},
		{
			name:  "invalid level defaults to info",
			level: "invalid",
			want:  zerolog.InfoLevel,
		},
		{
			name:   "pretty output",
			level:  "info",
			pretty: true,
			want:   zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
			assert.NotNil(t, Logger())
		})
	}
}

func TestLogger_EventChaining(t *testing.T) {
	Init("debug", false)

	assert.NotPanics(t, func() {
		Logger().Debug().Str("order_id", "order_01").Msg("chained event")
		Logger().Warn().Int("parcel_number", 2).Msg("chained event")
		Logger().Error().Str("location_id", "loc_01").Msg("chained event")
	})
}

func TestWithContext(t *testing.T) {
	Init("info", false)

	tests := []struct {
		name   string
		fields map[string]interface{}
	}{
		{
			name:   "empty fields",
			fields: map[string]interface{}{},
		},
		{
			name: "single field",
			fields: map[string]interface{}{
				"order_id": "order_01",
			},
		},
		{
			name: "multiple fields",
			fields: map[string]interface{}{
				"order_id":    "order_01",
				"location_id": "loc_01",
				"parcels":     2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := WithContext(tt.fields)
			assert.NotNil(t, logger)
		})
	}
}
