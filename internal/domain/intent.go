package domain

// BookingIntent is the booking request a passenger pays for. It is never
// persisted on its own: the intent is attached as string metadata to the
// hosted checkout session and survives the redirect round-trip that way.
// The session metadata is the only channel carrying booking details past
// the payment boundary.
type BookingIntent struct {
	BoatID     string
	BoatName   string
	Date       string // "YYYY-MM-DD"
	Slot       string // "HH:MM-HH:MM"
	UserID     string // payer
	OwnerID    string
	OwnerEmail string
}

// Metadata keys used on the checkout session.
const (
	MetaBoatID     = "boatId"
	MetaBoatName   = "boatName"
	MetaDate       = "date"
	MetaSlot       = "slot"
	MetaUserID     = "userId"
	MetaOwnerID    = "ownerId"
	MetaOwnerEmail = "ownerEmail"
)

// ToMetadata encodes the intent as checkout session metadata.
func (i *BookingIntent) ToMetadata() map[string]string {
	return map[string]string{
		MetaBoatID:     i.BoatID,
		MetaBoatName:   i.BoatName,
		MetaDate:       i.Date,
		MetaSlot:       i.Slot,
		MetaUserID:     i.UserID,
		MetaOwnerID:    i.OwnerID,
		MetaOwnerEmail: i.OwnerEmail,
	}
}

// IntentFromMetadata decodes a booking intent from checkout session metadata.
// Returns false if any of the required fields (boatId, date, slot, userId)
// is absent; optional fields fall back to defaults.
func IntentFromMetadata(meta map[string]string) (*BookingIntent, bool) {
	intent := &BookingIntent{
		BoatID:     meta[MetaBoatID],
		BoatName:   meta[MetaBoatName],
		Date:       meta[MetaDate],
		Slot:       meta[MetaSlot],
		UserID:     meta[MetaUserID],
		OwnerID:    meta[MetaOwnerID],
		OwnerEmail: meta[MetaOwnerEmail],
	}

	if intent.BoatID == "" || intent.Date == "" || intent.Slot == "" || intent.UserID == "" {
		return nil, false
	}

	if intent.BoatName == "" {
		intent.BoatName = DefaultBoatName
	}

	return intent, true
}

// BookingID returns the deterministic booking identifier for this intent.
func (i *BookingIntent) BookingID() string {
	return BookingID(i.BoatID, i.Date, i.Slot, i.UserID)
}
