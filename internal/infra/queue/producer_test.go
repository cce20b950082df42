package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadEventPayloadKeys(t *testing.T) {
	payload := LeadEventPayload{
		Event:      EventLeadCreated,
		LeadID:     "lead-123",
		Name:       "Ann",
		Email:      "ann@x.com",
		Phone:      "5551234567",
		Status:     "new",
		Source:     "web",
		OccurredAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(body, &data))

	for _, key := range []string{"event", "lead_id", "name", "email", "phone", "status", "source", "occurred_at"} {
		assert.Contains(t, data, key)
	}
	assert.Equal(t, "lead.created", data["event"])
}

func TestLeadEventPayloadOmitsEmptyLeadFields(t *testing.T) {
	// Delete events carry only the id.
	payload := LeadEventPayload{
		Event:      EventLeadDeleted,
		LeadID:     "lead-123",
		OccurredAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(body, &data))

	assert.NotContains(t, data, "email")
	assert.NotContains(t, data, "name")
	assert.Equal(t, "lead.deleted", data["event"])
}
