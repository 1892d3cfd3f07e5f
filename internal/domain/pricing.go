package domain

import (
	"math"

	"github.com/tennispark/TP-AdminService/pkg/types"
)

// Time-of-day price multipliers. The step function is discontinuous exactly at
// 16:00 and 19:00.
const (
	MorningMultiplier = 0.8 // [08:00, 16:00)
	DayMultiplier     = 1.0 // [16:00, 19:00)
	EveningMultiplier = 1.3 // [19:00, 22:00)
)

// TimeMultiplier returns the price multiplier for the hour component of the
// given time label.
func TimeMultiplier(t types.TimeString) float64 {
	hour, err := t.Hour()
	if err != nil {
		return DayMultiplier
	}

	switch {
	case hour >= OpenHour && hour < 16:
		return MorningMultiplier
	case hour >= 16 && hour < 19:
		return DayMultiplier
	case hour >= 19 && hour < CloseHour:
		return EveningMultiplier
	default:
		return DayMultiplier
	}
}

// SlotPrice returns the price of a single free 30-minute slot on a court at
// the given time: round(basePrice × multiplier).
func SlotPrice(basePrice int, t types.TimeString) int {
	return int(math.Round(float64(basePrice) * TimeMultiplier(t)))
}

// ProratedRate prorates an hourly rate to the given duration in minutes,
// rounded to whole rubles. Used to price coach trainings.
func ProratedRate(hourlyRate int, durationMinutes int) int {
	return int(math.Round(float64(hourlyRate) / 60 * float64(durationMinutes)))
}
