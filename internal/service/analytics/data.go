package analytics

import "github.com/tennispark/TP-AdminService/internal/service/analytics/models"

// Статический демонстрационный набор: реальной телеметрии у сервиса нет,
// отчет отдает согласованные цифры за первое полугодие 2025.

var kpiCards = []models.KPICard{
	{
		Title:     "Выручка за месяц",
		Value:     "3,017,000₽",
		Change:    "-3.3%",
		Trend:     models.TrendDown,
		Period:    "Июнь 2025 к маю 2025",
		MiniChart: []int{2380, 2150, 2620, 2890, 3120, 3017},
	},
	{
		Title:     "Загрузка кортов",
		Value:     "71%",
		Change:    "0%",
		Trend:     models.TrendStable,
		Period:    "Средняя за месяц",
		MiniChart: []int{63, 61, 67, 69, 71, 71},
	},
	{
		Title:     "Средний чек",
		Value:     "2,060₽",
		Change:    "+0.2%",
		Trend:     models.TrendUp,
		Period:    "За последние 30 дней",
		MiniChart: []int{2055, 2051, 2053, 2052, 2055, 2060},
	},
	{
		Title:     "Процент неявок",
		Value:     "5%",
		Change:    "-2%",
		Trend:     models.TrendDown,
		Period:    "Снижение за месяц",
		MiniChart: []int{12, 15, 11, 8, 7, 5},
	},
}

var chartData = map[models.Period][]models.ChartPoint{
	models.PeriodSixMonths: {
		{Period: "Янв", Revenue: 2380000, Occupancy: 63, Bookings: 1158},
		{Period: "Фев", Revenue: 2150000, Occupancy: 61, Bookings: 1048},
		{Period: "Мар", Revenue: 2620000, Occupancy: 67, Bookings: 1276},
		{Period: "Апр", Revenue: 2890000, Occupancy: 69, Bookings: 1408},
		{Period: "Май", Revenue: 3120000, Occupancy: 71, Bookings: 1518},
		{Period: "Июн", Revenue: 3017000, Occupancy: 71, Bookings: 1465},
	},
	models.PeriodThreeMonths: {
		{Period: "Апр", Revenue: 2890000, Occupancy: 69, Bookings: 1408},
		{Period: "Май", Revenue: 3120000, Occupancy: 71, Bookings: 1518},
		{Period: "Июн", Revenue: 3017000, Occupancy: 71, Bookings: 1465},
	},
	models.PeriodOneMonth: {
		{Period: "1 нед", Revenue: 680000, Occupancy: 68, Bookings: 330},
		{Period: "2 нед", Revenue: 720000, Occupancy: 70, Bookings: 350},
		{Period: "3 нед", Revenue: 750000, Occupancy: 72, Bookings: 365},
		{Period: "4 нед", Revenue: 780000, Occupancy: 74, Bookings: 380},
	},
}

var bookingSources = map[models.Period]models.SourcesBreakdown{
	models.PeriodSixMonths: {
		TotalBookings: 1465,
		Sources: []models.SourceShare{
			{Name: "Сайт", Value: 30, Count: 440, Color: "#4285f4"},
			{Name: "Яндекс.Карты", Value: 24, Count: 352, Color: "#34a853"},
			{Name: "2ГИС", Value: 15, Count: 220, Color: "#ea4335"},
			{Name: "Instagram", Value: 12, Count: 176, Color: "#9c27b0"},
			{Name: "VK", Value: 10, Count: 147, Color: "#ff9800"},
			{Name: "Telegram", Value: 6, Count: 88, Color: "#00bcd4"},
			{Name: "Остальные", Value: 3, Count: 42, Color: "#9e9e9e"},
		},
	},
	models.PeriodThreeMonths: {
		TotalBookings: 1200,
		Sources: []models.SourceShare{
			{Name: "Сайт", Value: 32, Count: 384, Color: "#4285f4"},
			{Name: "Яндекс.Карты", Value: 26, Count: 312, Color: "#34a853"},
			{Name: "2ГИС", Value: 18, Count: 216, Color: "#ea4335"},
			{Name: "Instagram", Value: 14, Count: 168, Color: "#9c27b0"},
			{Name: "VK", Value: 8, Count: 96, Color: "#ff9800"},
			{Name: "Telegram", Value: 2, Count: 24, Color: "#00bcd4"},
		},
	},
	models.PeriodOneMonth: {
		TotalBookings: 380,
		Sources: []models.SourceShare{
			{Name: "Сайт", Value: 35, Count: 133, Color: "#4285f4"},
			{Name: "Яндекс.Карты", Value: 28, Count: 106, Color: "#34a853"},
			{Name: "2ГИС", Value: 20, Count: 76, Color: "#ea4335"},
			{Name: "Instagram", Value: 12, Count: 46, Color: "#9c27b0"},
			{Name: "VK", Value: 5, Count: 19, Color: "#ff9800"},
		},
	},
}

var todaySummary = models.TodaySummary{
	Date:      "29 июня 2025",
	Earned:    "111,200₽",
	Bookings:  53,
	Occupancy: 78,
}
