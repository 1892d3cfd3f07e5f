package domain

// SurfaceType represents the playing surface of a court
type SurfaceType string

const (
	SurfaceHard   SurfaceType = "hard"
	SurfaceClay   SurfaceType = "clay"
	SurfaceIndoor SurfaceType = "indoor"
)

// IsValid returns true if the surface type belongs to the closed set
func (s SurfaceType) IsValid() bool {
	return s == SurfaceHard || s == SurfaceClay || s == SurfaceIndoor
}

// Court represents a bookable court.
// Courts are configuration-time entities and are never mutated at runtime.
type Court struct {
	ID        int64
	Name      string
	Surface   SurfaceType
	BasePrice int // rubles per 30-minute slot before the time-of-day multiplier
}
