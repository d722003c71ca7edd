// Package types содержит значимые типы для работы со временем слотов.
package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const clockFormat = "15:04"

var (
	// ErrInvalidClock возвращается при некорректном формате времени HH:MM
	ErrInvalidClock = errors.New("types: invalid clock time, expected HH:MM")

	// ErrInvalidRange возвращается при некорректном формате диапазона HH:MM-HH:MM
	ErrInvalidRange = errors.New("types: invalid time range, expected HH:MM-HH:MM")
)

// ClockTime время суток с точностью до минуты
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock парсит время в формате HH:MM
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse(clockFormat, s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ClockFromMinutes строит ClockTime из количества минут с начала суток
func ClockFromMinutes(m int) ClockTime {
	return ClockTime{Hour: m / 60, Minute: m % 60}
}

// Minutes возвращает количество минут с начала суток
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before сообщает, раньше ли это время, чем other
func (c ClockTime) Before(other ClockTime) bool {
	return c.Minutes() < other.Minutes()
}

// String возвращает время в формате HH:MM
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// TimeRange диапазон времени внутри одного дня, например "09:00-13:00".
// Слоты бронирования сравниваются строго по строковому представлению.
type TimeRange struct {
	Start ClockTime
	End   ClockTime
}

// ParseTimeRange парсит диапазон в формате HH:MM-HH:MM
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	start, err := ParseClock(parts[0])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	end, err := ParseClock(parts[1])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}

	if !start.Before(end) {
		return TimeRange{}, fmt.Errorf("%w: start must be before end in %q", ErrInvalidRange, s)
	}

	return TimeRange{Start: start, End: end}, nil
}

// DurationMinutes длительность диапазона в минутах
func (r TimeRange) DurationMinutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// String возвращает диапазон в формате HH:MM-HH:MM
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
