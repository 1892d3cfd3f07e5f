package domain

import "time"

// Coach represents a club trainer available for training sessions
type Coach struct {
	ID              int64
	Name            string
	Phone           string
	Email           string
	Specializations []string
	ExperienceYears int
	HourlyRate      int     // rubles per hour
	Rating          float64 // 1-5 scale
	IsActive        bool
	Color           string // calendar accent color, e.g. "#8B5CF6"
	CreatedAt       time.Time
}

// CoachSpecializations is the closed directory of coach specializations
var CoachSpecializations = []string{
	"Начинающие",
	"Дети",
	"Юниоры",
	"Профессионалы",
	"Женский теннис",
	"Мужской теннис",
	"Групповые занятия",
	"Индивидуальные занятия",
	"Турниры",
	"Фитнес",
}

// IsKnownSpecialization reports whether s belongs to the directory
func IsKnownSpecialization(s string) bool {
	for _, known := range CoachSpecializations {
		if known == s {
			return true
		}
	}
	return false
}
