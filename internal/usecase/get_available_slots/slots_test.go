package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/pkg/types"
)

func TestGenerateSlots_DefaultRule(t *testing.T) {
	slots := generateSlots(domain.AvailabilityRule{
		StartHour:       9,
		EndHour:         22,
		SlotLengthHours: 4,
	})

	// Окно 9-22 при длине 4 часа даёт три полных слота,
	// неполный хвост 21:00-22:00 отбрасывается
	assert.Equal(t, []string{"09:00-13:00", "13:00-17:00", "17:00-21:00"}, slots)
}

func TestGenerateSlots_ExactFit(t *testing.T) {
	slots := generateSlots(domain.AvailabilityRule{
		StartHour:       10,
		EndHour:         18,
		SlotLengthHours: 4,
	})
	assert.Equal(t, []string{"10:00-14:00", "14:00-18:00"}, slots)
}

func TestGenerateSlots_Empty(t *testing.T) {
	// Слот не помещается в окно
	assert.Empty(t, generateSlots(domain.AvailabilityRule{StartHour: 9, EndHour: 11, SlotLengthHours: 4}))
	// Вырожденные правила
	assert.Empty(t, generateSlots(domain.AvailabilityRule{StartHour: 9, EndHour: 22, SlotLengthHours: 0}))
	assert.Empty(t, generateSlots(domain.AvailabilityRule{StartHour: 9, EndHour: 22, SlotLengthHours: -1}))
	assert.Empty(t, generateSlots(domain.AvailabilityRule{StartHour: 22, EndHour: 9, SlotLengthHours: 4}))
}

// Слоты смежные, не пересекаются и целиком лежат в окне правила
func TestGenerateSlots_Contiguous(t *testing.T) {
	rules := []domain.AvailabilityRule{
		{StartHour: 9, EndHour: 22, SlotLengthHours: 4},
		{StartHour: 0, EndHour: 23, SlotLengthHours: 3},
		{StartHour: 8, EndHour: 20, SlotLengthHours: 5},
		{StartHour: 6, EndHour: 23, SlotLengthHours: 1},
	}

	for _, rule := range rules {
		slots := generateSlots(rule)

		expected := (rule.EndHour - rule.StartHour) / rule.SlotLengthHours
		assert.Len(t, slots, expected)

		prevEnd := rule.StartHour * 60
		for _, s := range slots {
			r, err := types.ParseTimeRange(s)
			require.NoError(t, err)

			assert.Equal(t, prevEnd, r.Start.Minutes(), "slot %s must start where the previous ended", s)
			assert.Equal(t, rule.SlotLengthHours*60, r.DurationMinutes())
			assert.LessOrEqual(t, r.End.Minutes(), rule.EndHour*60)

			prevEnd = r.End.Minutes()
		}
	}
}

func TestSubtractBooked(t *testing.T) {
	candidates := []string{"09:00-13:00", "13:00-17:00", "17:00-21:00"}

	assert.Equal(t, candidates, subtractBooked(candidates, nil))
	assert.Equal(t,
		[]string{"09:00-13:00", "17:00-21:00"},
		subtractBooked(candidates, []string{"13:00-17:00"}))
	assert.Empty(t, subtractBooked(candidates, candidates))

	// Занятые слоты, которых нет среди кандидатов, игнорируются
	assert.Equal(t, candidates, subtractBooked(candidates, []string{"21:00-22:00"}))
}
