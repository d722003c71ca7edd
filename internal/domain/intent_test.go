package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingID_Deterministic(t *testing.T) {
	id := BookingID("boat-1", "2026-07-15", "09:00-13:00", "user-abc")
	assert.Equal(t, "boat-1__2026-07-15__09:00-13:00__user-abc", id)

	// Same inputs always yield the same identifier
	assert.Equal(t, id, BookingID("boat-1", "2026-07-15", "09:00-13:00", "user-abc"))
}

func TestBookingID_DiffersPerPayer(t *testing.T) {
	a := BookingID("boat-1", "2026-07-15", "09:00-13:00", "user-a")
	b := BookingID("boat-1", "2026-07-15", "09:00-13:00", "user-b")
	assert.NotEqual(t, a, b)
}

func TestIntentMetadataRoundTrip(t *testing.T) {
	intent := &BookingIntent{
		BoatID:     "boat-1",
		BoatName:   "Northern Star",
		Date:       "2026-07-15",
		Slot:       "09:00-13:00",
		UserID:     "user-abc",
		OwnerID:    "owner-xyz",
		OwnerEmail: "owner@example.com",
	}

	meta := intent.ToMetadata()
	decoded, ok := IntentFromMetadata(meta)
	require.True(t, ok)
	assert.Equal(t, intent, decoded)
	assert.Equal(t, intent.BookingID(), decoded.BookingID())
}

func TestIntentFromMetadata_MissingRequiredField(t *testing.T) {
	required := []string{MetaBoatID, MetaDate, MetaSlot, MetaUserID}

	for _, missing := range required {
		meta := (&BookingIntent{
			BoatID: "boat-1",
			Date:   "2026-07-15",
			Slot:   "09:00-13:00",
			UserID: "user-abc",
		}).ToMetadata()
		delete(meta, missing)

		_, ok := IntentFromMetadata(meta)
		assert.False(t, ok, "missing %s must be rejected", missing)
	}
}

func TestIntentFromMetadata_DefaultBoatName(t *testing.T) {
	meta := map[string]string{
		MetaBoatID: "boat-1",
		MetaDate:   "2026-07-15",
		MetaSlot:   "09:00-13:00",
		MetaUserID: "user-abc",
	}

	intent, ok := IntentFromMetadata(meta)
	require.True(t, ok)
	assert.Equal(t, DefaultBoatName, intent.BoatName)
}
