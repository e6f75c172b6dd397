package hours

import (
	"context"
	"fmt"

	"github.com/samueljai120/boom-booking-service/internal/domain"
	"github.com/samueljai120/boom-booking-service/internal/service/hours/models"
)

// Service сервис для работы с расписанием рабочих часов
type Service struct {
	hoursRepo HoursRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(hoursRepo HoursRepository, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		logger:    logger,
	}
}

// GetWeek получает расписание тенанта на неделю
// Дни без правила считаются закрытыми
func (s *Service) GetWeek(ctx context.Context, tenantID int64) (*models.WeekResponse, error) {
	schedule, err := s.hoursRepo.GetWeek(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWeek(schedule), nil
}

// UpdateWeek сохраняет правила рабочих часов тенанта
// На каждый день недели допускается не более одного правила.
// Правило с close < open трактуется как окно через полночь (например 20:00-02:00)
func (s *Service) UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekResponse, error) {
	rules, err := s.validateRules(req)
	if err != nil {
		s.logger.Warn("UpdateWeek: invalid rules for tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	if err := s.hoursRepo.Upsert(ctx, req.TenantID, rules); err != nil {
		s.logger.Error("UpdateWeek: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: UpdateWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeek: saved %d rules for tenant=%d", len(rules), req.TenantID)
	return s.GetWeek(ctx, req.TenantID)
}

func (s *Service) validateRules(req *models.UpdateWeekRequest) ([]domain.BusinessHoursRule, error) {
	if len(req.Rules) == 0 {
		return nil, fmt.Errorf("%w: at least one rule is required", ErrInvalidInput)
	}

	seen := make(map[int]bool, len(req.Rules))
	rules := make([]domain.BusinessHoursRule, 0, len(req.Rules))

	for _, ruleReq := range req.Rules {
		if ruleReq.Weekday < 0 || ruleReq.Weekday > 6 {
			return nil, fmt.Errorf("%w: weekday must be between 0 and 6, got %d", ErrInvalidInput, ruleReq.Weekday)
		}
		if seen[ruleReq.Weekday] {
			return nil, fmt.Errorf("%w: weekday %d", ErrDuplicateWeekday, ruleReq.Weekday)
		}
		seen[ruleReq.Weekday] = true

		rule, err := ruleReq.ToDomainRule(req.TenantID)
		if err != nil {
			return nil, fmt.Errorf("%w: weekday %d: %v", ErrInvalidInput, ruleReq.Weekday, err)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
