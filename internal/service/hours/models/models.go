package models

import (
	"time"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/pkg/types"
)

// Request модели

// RuleRequest правило рабочих часов на один день недели
// Weekday: 0 = воскресенье ... 6 = суббота
type RuleRequest struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"openTime"`  // "HH:MM"
	CloseTime string `json:"closeTime"` // "HH:MM"
	IsClosed  bool   `json:"isClosed"`
}

// UpdateWeekRequest запрос на обновление расписания тенанта
type UpdateWeekRequest struct {
	TenantID int64         `json:"-"`
	Rules    []RuleRequest `json:"rules"`
}

// ToDomainRule конвертирует request в domain модель
func (r *RuleRequest) ToDomainRule(tenantID int64) (domain.BusinessHoursRule, error) {
	rule := domain.BusinessHoursRule{
		TenantID: tenantID,
		Weekday:  time.Weekday(r.Weekday),
		IsClosed: r.IsClosed,
	}

	if r.IsClosed {
		return rule, nil
	}

	open, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return rule, err
	}
	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return rule, err
	}

	rule.OpenTime = open
	rule.CloseTime = closeTime
	return rule, nil
}

// Response модели

// RuleResponse правило рабочих часов в ответе
type RuleResponse struct {
	Weekday       int    `json:"weekday"`
	OpenTime      string `json:"openTime,omitempty"`
	CloseTime     string `json:"closeTime,omitempty"`
	IsClosed      bool   `json:"isClosed"`
	SpansMidnight bool   `json:"spansMidnight"`
}

// WeekResponse расписание тенанта на неделю, всегда 7 правил
type WeekResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainWeek конвертирует расписание в DTO
// Дни без правила отдаются как закрытые
func FromDomainWeek(schedule domain.WeekSchedule) *WeekResponse {
	rules := make([]RuleResponse, 0, 7)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		rule := schedule.RuleFor(weekday)

		resp := RuleResponse{
			Weekday:  int(weekday),
			IsClosed: rule.IsClosed || rule.OpenTime.IsZero(),
		}
		if !resp.IsClosed {
			resp.OpenTime = rule.OpenTime.String()
			resp.CloseTime = rule.CloseTime.String()
			resp.SpansMidnight = rule.SpansMidnight()
		}
		rules = append(rules, resp)
	}
	return &WeekResponse{Rules: rules}
}
