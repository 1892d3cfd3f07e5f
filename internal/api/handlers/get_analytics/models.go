package get_analytics

import (
	"github.com/tennispark/TP-AdminService/internal/service/analytics/models"
)

// ReportResponse HTTP-модель аналитического отчета
type ReportResponse struct {
	Period  string                `json:"period"`
	KPI     []*KPICardResponse    `json:"kpi"`
	Chart   []*ChartPointResponse `json:"chart"`
	Sources *SourcesResponse      `json:"sources"`
	Today   *TodaySummaryResponse `json:"today"`
}

// KPICardResponse карточка ключевого показателя
type KPICardResponse struct {
	Title     string `json:"title"`
	Value     string `json:"value"`
	Change    string `json:"change"`
	Trend     string `json:"trend"`
	Period    string `json:"period"`
	MiniChart []int  `json:"miniChart"`
}

// ChartPointResponse точка графика
type ChartPointResponse struct {
	Period    string `json:"period"`
	Revenue   int    `json:"revenue"`
	Occupancy int    `json:"occupancy"`
	Bookings  int    `json:"bookings"`
}

// SourcesResponse распределение бронирований по источникам
type SourcesResponse struct {
	TotalBookings int                    `json:"totalBookings"`
	Sources       []*SourceShareResponse `json:"sources"`
}

// SourceShareResponse доля одного источника
type SourceShareResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// TodaySummaryResponse сводка текущего дня
type TodaySummaryResponse struct {
	Date      string `json:"date"`
	Earned    string `json:"earned"`
	Bookings  int    `json:"bookings"`
	Occupancy int    `json:"occupancy"`
}

// FromServiceReport конвертирует отчет сервиса в HTTP response
func FromServiceReport(report *models.Report) *ReportResponse {
	kpi := make([]*KPICardResponse, 0, len(report.KPI))
	for _, card := range report.KPI {
		kpi = append(kpi, &KPICardResponse{
			Title:     card.Title,
			Value:     card.Value,
			Change:    card.Change,
			Trend:     string(card.Trend),
			Period:    card.Period,
			MiniChart: card.MiniChart,
		})
	}

	chart := make([]*ChartPointResponse, 0, len(report.Chart))
	for _, point := range report.Chart {
		chart = append(chart, &ChartPointResponse{
			Period:    point.Period,
			Revenue:   point.Revenue,
			Occupancy: point.Occupancy,
			Bookings:  point.Bookings,
		})
	}

	sources := make([]*SourceShareResponse, 0, len(report.Sources.Sources))
	for _, share := range report.Sources.Sources {
		sources = append(sources, &SourceShareResponse{
			Name:  share.Name,
			Value: share.Value,
			Count: share.Count,
			Color: share.Color,
		})
	}

	return &ReportResponse{
		Period: string(report.Period),
		KPI:    kpi,
		Chart:  chart,
		Sources: &SourcesResponse{
			TotalBookings: report.Sources.TotalBookings,
			Sources:       sources,
		},
		Today: &TodaySummaryResponse{
			Date:      report.Today.Date,
			Earned:    report.Today.Earned,
			Bookings:  report.Today.Bookings,
			Occupancy: report.Today.Occupancy,
		},
	}
}
