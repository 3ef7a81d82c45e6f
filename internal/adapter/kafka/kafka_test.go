package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundwatertools/well-data-service/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	retrieved := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	depth := 120.5
	record := domain.SinkRecord{
		RecordType: "well_log",
		AgencyCode: "USGS",
		SiteNumber: "403836085374401",
		Record: &domain.WellLog{
			WellDepth: domain.Measurement{Value: &depth, Unit: "ft"},
		},
		RetrievedAt: retrieved,
	}

	msg, err := serializeToMessage(record)
	require.NoError(t, err)

	assert.Equal(t, []byte("USGS:403836085374401"), msg.Key)
	assert.Contains(t, string(msg.Value), `"record_type":"well_log"`)
	assert.Contains(t, string(msg.Value), `"agency_cd":"USGS"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "record_type", msg.Headers[0].Key)
	assert.Equal(t, []byte("well_log"), msg.Headers[0].Value)
	assert.Equal(t, "retrieved_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(retrieved.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_NilRecordPayload(t *testing.T) {
	record := domain.SinkRecord{
		RecordType:  "water_quality",
		AgencyCode:  "MBMG",
		SiteNumber:  "235474",
		RetrievedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	msg, err := serializeToMessage(record)
	require.NoError(t, err)
	assert.Contains(t, string(msg.Value), `"record":null`)
}
