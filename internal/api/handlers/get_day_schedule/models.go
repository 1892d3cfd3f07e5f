package get_day_schedule

import (
	"strings"
	"time"

	"github.com/tennispark/TP-AdminService/internal/api/handlers"
	"github.com/tennispark/TP-AdminService/internal/domain"
	getDaySchedule "github.com/tennispark/TP-AdminService/internal/usecase/get_day_schedule"
)

// ScheduleResponse HTTP-модель сетки расписания на день
type ScheduleResponse struct {
	Date       string                   `json:"date"`
	TimeLabels []string                 `json:"timeLabels"`
	Courts     []*CourtScheduleResponse `json:"courts"`
}

// CourtScheduleResponse колонка сетки одного корта
type CourtScheduleResponse struct {
	Court *CourtResponse  `json:"court"`
	Cells []*CellResponse `json:"cells"`
}

// CourtResponse HTTP-модель корта
type CourtResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Surface   string `json:"surface"`
	BasePrice int    `json:"basePrice"`
}

// CellResponse одна ячейка сетки
type CellResponse struct {
	Time      string                 `json:"time"`
	Slot      *handlers.SlotResponse `json:"slot"`
	Merged    *MergedSlotResponse    `json:"merged,omitempty"`
	CoveredBy string                 `json:"coveredBy,omitempty"`
	Visible   bool                   `json:"visible"`
}

// MergedSlotResponse объединенное бронирование (span по вертикали)
type MergedSlotResponse struct {
	ID         string `json:"id"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Duration   int    `json:"duration"`
	TotalPrice int    `json:"totalPrice"`
	SpanSlots  int    `json:"spanSlots"`
}

// parseQuery разбирает query-параметры в модель use case
func parseQuery(date, courtType, filters string) (*getDaySchedule.Request, error) {
	parsedDate, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, err
	}

	req := &getDaySchedule.Request{Date: parsedDate}

	if courtType != "" && courtType != "all" {
		surface := domain.SurfaceType(courtType)
		req.CourtType = &surface
	}

	if filters != "" {
		for _, f := range strings.Split(filters, ",") {
			req.Filters = append(req.Filters, getDaySchedule.FilterType(strings.TrimSpace(f)))
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *ScheduleResponse {
	labels := make([]string, 0, len(resp.TimeLabels))
	for _, t := range resp.TimeLabels {
		labels = append(labels, t.String())
	}

	courts := make([]*CourtScheduleResponse, 0, len(resp.Courts))
	for _, cs := range resp.Courts {
		cells := make([]*CellResponse, 0, len(cs.Cells))
		for _, cell := range cs.Cells {
			cells = append(cells, &CellResponse{
				Time:      cell.Time.String(),
				Slot:      handlers.FromDomainSlot(cell.Slot),
				Merged:    fromMergedSlot(cell.Merged),
				CoveredBy: cell.CoveredBy,
				Visible:   cell.Visible,
			})
		}
		courts = append(courts, &CourtScheduleResponse{
			Court: &CourtResponse{
				ID:        cs.Court.ID,
				Name:      cs.Court.Name,
				Surface:   string(cs.Court.Surface),
				BasePrice: cs.Court.BasePrice,
			},
			Cells: cells,
		})
	}

	return &ScheduleResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		TimeLabels: labels,
		Courts:     courts,
	}
}

func fromMergedSlot(m *domain.MergedSlot) *MergedSlotResponse {
	if m == nil {
		return nil
	}
	return &MergedSlotResponse{
		ID:         m.ID,
		StartTime:  m.StartTime.String(),
		EndTime:    m.EndTime.String(),
		Duration:   m.Duration,
		TotalPrice: m.TotalPrice,
		SpanSlots:  m.SpanSlots,
	}
}
