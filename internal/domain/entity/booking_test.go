package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingUnmarshalScalars(t *testing.T) {
	var b Booking
	err := json.Unmarshal([]byte(`{"id": 4711, "Flight": "FR 1234", "HotelName": null, "Time": "10:30"}`), &b)
	require.NoError(t, err)

	assert.Equal(t, Booking{ID: "4711", Flight: "FR 1234", HotelName: "", Time: "10:30"}, b)
}

func TestBookingUnmarshalMissingFields(t *testing.T) {
	var b Booking
	require.NoError(t, json.Unmarshal([]byte(`{"id": "ABC123"}`), &b))

	assert.Equal(t, "ABC123", b.ID)
	assert.Empty(t, b.Flight)
}

func TestBookingUnmarshalRejectsObjects(t *testing.T) {
	var b Booking
	err := json.Unmarshal([]byte(`{"id": {"nested": true}}`), &b)
	assert.Error(t, err)
}

func TestTransferDocumentContentDefaultsToEmpty(t *testing.T) {
	var doc TransferDocument
	require.NoError(t, json.Unmarshal([]byte(`{"template": {}}`), &doc))

	require.NotNil(t, doc.Template)
	assert.Empty(t, doc.Template.Content)
}

func TestDatasetOtherAndTitle(t *testing.T) {
	assert.Equal(t, DatasetTomorrow, DatasetToday.Other())
	assert.Equal(t, DatasetToday, DatasetTomorrow.Other())
	assert.Equal(t, "Today’s pick-up airport transfers", DatasetToday.Title())
	assert.Equal(t, "Tomorrow’s pick-up airport transfers", DatasetTomorrow.Title())

	_, err := ParseDataset("yesterday")
	assert.Error(t, err)
}

func TestBookingMatchesIDIsCaseInsensitive(t *testing.T) {
	b := Booking{ID: "AbC123"}
	assert.True(t, b.MatchesID("abc123"))
	assert.False(t, b.MatchesID("abc1234"))
}
