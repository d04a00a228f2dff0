package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	t.Run("initializes nil fields map", func(t *testing.T) {
		entry := &LogEntry{}

		result := entry.WithField("parcel_number", 1)

		assert.Equal(t, entry, result)
		assert.Equal(t, 1, entry.Fields["parcel_number"])
	})

	t.Run("preserves existing fields", func(t *testing.T) {
		entry := &LogEntry{
			Fields: map[string]interface{}{"existing": "value"},
		}

		entry.WithField("new_key", "new_value")

		assert.Equal(t, "value", entry.Fields["existing"])
		assert.Equal(t, "new_value", entry.Fields["new_key"])
	})

	t.Run("overwrites existing field", func(t *testing.T) {
		entry := &LogEntry{
			Fields: map[string]interface{}{"key": "old"},
		}

		entry.WithField("key", "new")

		assert.Equal(t, "new", entry.Fields["key"])
	})
}

func TestLogEntry_WithFields(t *testing.T) {
	t.Run("adds multiple fields", func(t *testing.T) {
		entry := &LogEntry{}

		entry.WithFields(map[string]interface{}{
			"order_id": "order_01",
			"parcels":  []int{1, 2},
		})

		assert.Equal(t, "order_01", entry.Fields["order_id"])
		assert.Equal(t, []int{1, 2}, entry.Fields["parcels"])
	})

	t.Run("merges with existing fields", func(t *testing.T) {
		entry := &LogEntry{
			Fields: map[string]interface{}{"existing": "value"},
		}

		entry.WithFields(map[string]interface{}{"new": "new_value"})

		assert.Equal(t, "value", entry.Fields["existing"])
		assert.Equal(t, "new_value", entry.Fields["new"])
	})
}
