package models

// Period период аналитического отчета
type Period string

const (
	PeriodSixMonths   Period = "6m"
	PeriodThreeMonths Period = "3m"
	PeriodOneMonth    Period = "1m"
)

// IsValid проверяет, что период принадлежит закрытому набору
func (p Period) IsValid() bool {
	return p == PeriodSixMonths || p == PeriodThreeMonths || p == PeriodOneMonth
}

// Trend направление изменения показателя
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// KPICard карточка ключевого показателя
type KPICard struct {
	Title     string
	Value     string
	Change    string
	Trend     Trend
	Period    string
	MiniChart []int
}

// ChartPoint точка графика выручки, загрузки и бронирований
type ChartPoint struct {
	Period    string
	Revenue   int
	Occupancy int
	Bookings  int
}

// SourceShare доля одного источника бронирований
type SourceShare struct {
	Name  string
	Value int // проценты
	Count int
	Color string
}

// SourcesBreakdown распределение бронирований по источникам
type SourcesBreakdown struct {
	TotalBookings int
	Sources       []SourceShare
}

// TodaySummary сводка текущего дня
type TodaySummary struct {
	Date      string
	Earned    string
	Bookings  int
	Occupancy int
}

// Report полный аналитический отчет за период
type Report struct {
	Period  Period
	KPI     []KPICard
	Chart   []ChartPoint
	Sources SourcesBreakdown
	Today   TodaySummary
}
