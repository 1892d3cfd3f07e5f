package domain

import (
	"fmt"

	"github.com/tennispark/TP-AdminService/pkg/types"
)

// Operating window of the club. The grid is closed: there is no wraparound
// past midnight and the last bookable label is CloseHour - SlotStepMinutes.
const (
	OpenHour  = 8
	CloseHour = 22
)

// Slot grid constants
const (
	SlotStepMinutes        = 30
	MinTrainingDurationMin = 60 // training sessions are never shorter than two slots
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxBlockReasonLength = 500
)

// timeLabels holds the fixed ordered sequence of bookable time labels for a
// day, generated once and shared by all courts.
var timeLabels = generateTimeLabels()

func generateTimeLabels() []types.TimeString {
	labels := make([]types.TimeString, 0, (CloseHour-OpenHour)*60/SlotStepMinutes)
	for hour := OpenHour; hour < CloseHour; hour++ {
		labels = append(labels, types.TimeString(fmt.Sprintf("%02d:00", hour)))
		labels = append(labels, types.TimeString(fmt.Sprintf("%02d:30", hour)))
	}
	return labels
}

// TimeLabels returns a copy of the day's time label sequence
func TimeLabels() []types.TimeString {
	labels := make([]types.TimeString, len(timeLabels))
	copy(labels, timeLabels)
	return labels
}

// TimeLabelCount returns the number of 30-minute labels in the operating window
func TimeLabelCount() int {
	return len(timeLabels)
}

// IsGridLabel reports whether the given time falls on the bookable grid
func IsGridLabel(t types.TimeString) bool {
	for _, label := range timeLabels {
		if label == t {
			return true
		}
	}
	return false
}

// FirstLabel returns the earliest bookable time label
func FirstLabel() types.TimeString {
	return timeLabels[0]
}

// LastLabel returns the latest bookable time label
func LastLabel() types.TimeString {
	return timeLabels[len(timeLabels)-1]
}
