package get_available_slots

import (
	"time"

	"github.com/m04kA/BCM-BookingService/internal/domain"
	"github.com/m04kA/BCM-BookingService/pkg/types"
)

// generateSlots разворачивает правило доступности лодки в упорядоченный
// список слотов вида "HH:MM-HH:MM", покрывающих [startHour, endHour)
// с шагом slotLengthHours.
//
// Слот попадает в список, только если целиком помещается до endHour:
// неполный хвост окна отбрасывается, а не усекается.
// Пример: {start=9, end=22, slotLength=4} -> 09:00-13:00, 13:00-17:00,
// 17:00-21:00; частичный 21:00-22:00 не генерируется.
//
// Нулевая или отрицательная длина слота даёт пустой список.
// Функция чистая и детерминированная.
func generateSlots(rule domain.AvailabilityRule) []string {
	if rule.SlotLengthHours <= 0 {
		return []string{}
	}

	duration := rule.SlotLengthHours * 60
	startMin := rule.StartHour * 60
	endMin := rule.EndHour * 60

	slots := make([]string, 0)
	for s := startMin; s+duration <= endMin; s += duration {
		r := types.TimeRange{
			Start: types.ClockFromMinutes(s),
			End:   types.ClockFromMinutes(s + duration),
		}
		slots = append(slots, r.String())
	}

	return slots
}

// subtractBooked возвращает кандидатов без занятых слотов.
// Сравнение - строгое строковое совпадение диапазонов, порядок кандидатов
// сохраняется. Это и есть проекция доступности: чистая функция от
// подтверждённых бронирований, без блокировок.
func subtractBooked(candidates []string, booked []string) []string {
	if len(booked) == 0 {
		return candidates
	}

	bookedSet := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		bookedSet[slot] = struct{}{}
	}

	available := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if _, ok := bookedSet[slot]; !ok {
			available = append(available, slot)
		}
	}

	return available
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
