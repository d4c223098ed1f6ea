package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"drcal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseLocalTime(t *testing.T) {
	t.Run("Wall clock form", func(t *testing.T) {
		parsed, err := models.ParseLocalTime("2025-07-01T10:30")
		assert.NoError(t, err)
		assert.Equal(t, "2025-07-01T10:30", parsed.String())
		assert.Equal(t, time.Local, parsed.Location())
	})

	t.Run("Rejects every other layout", func(t *testing.T) {
		for _, raw := range []string{"", "2025-07-01", "2025-07-01T10:30:00", "01/07/2025 10:30"} {
			_, err := models.ParseLocalTime(raw)
			assert.Error(t, err, "input %q", raw)
		}
	})
}

func TestEventWireShape(t *testing.T) {
	event := models.Event{
		ID:          7,
		Title:       "Quarterly DR Test",
		Start:       models.NewLocalTime(time.Date(2025, time.July, 1, 10, 0, 0, 0, time.Local)),
		End:         models.NewLocalTime(time.Date(2025, time.July, 1, 12, 0, 0, 0, time.Local)),
		Description: "Full failover test of the primary database cluster",
		Type:        models.EventTypeManual,
	}

	data, err := json.Marshal(event)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"title": "Quarterly DR Test",
		"start": "2025-07-01T10:00",
		"end": "2025-07-01T12:00",
		"description": "Full failover test of the primary database cluster",
		"type": "manual"
	}`, string(data))

	var back models.Event
	assert.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, event, back)
}

func TestEventRejectsBadTimestampJSON(t *testing.T) {
	var event models.Event
	err := json.Unmarshal([]byte(`{"id":1,"start":"garbage"}`), &event)
	assert.ErrorContains(t, err, "invalid timestamp")
}
