package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/expense_ledger_app/internal/dto"
	"github.com/SscSPs/expense_ledger_app/internal/validation"
	"github.com/shopspring/decimal"
)

type forecastService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	forecastRepo portsrepo.ForecastRepository
	refRepo      portsrepo.ReferenceReader
	calendar     domain.FiscalCalendar
}

// NewForecastService creates the forecast chain manager.
func NewForecastService(
	txManager portsrepo.TransactionManager,
	forecastRepo portsrepo.ForecastRepository,
	refRepo portsrepo.ReferenceReader,
	calendar domain.FiscalCalendar,
	options ...ServiceOption,
) portssvc.ForecastSvcFacade {
	svc := &forecastService{
		BaseService:  newBaseService(),
		txManager:    txManager,
		forecastRepo: forecastRepo,
		refRepo:      refRepo,
		calendar:     calendar,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ForecastSvcFacade = (*forecastService)(nil)

func (s *forecastService) checkRefs(ctx context.Context, categoryID, subCategoryID, companyID string, staffID *string) error {
	if _, err := s.refRepo.FindExpenseCategoryByID(ctx, categoryID); err != nil {
		return err
	}
	if _, err := s.refRepo.FindExpenseSubCategoryByID(ctx, subCategoryID); err != nil {
		return err
	}
	if _, err := s.refRepo.FindCompanyByID(ctx, companyID); err != nil {
		return err
	}
	if staffID != nil {
		if _, err := s.refRepo.FindUserByID(ctx, *staffID); err != nil {
			return err
		}
	}
	return nil
}

// CreateForecast stores one forecast, or twelve monthly forecasts sharing a
// group key equal to the id of the first (April) record.
func (s *forecastService) CreateForecast(ctx context.Context, req dto.CreateForecastRequest, actorID string) ([]domain.Forecast, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor id is required", apperrors.ErrUnauthorized)
	}
	if err := s.checkRefs(ctx, req.ExpenseCategoryID, req.ExpenseSubCategoryID, req.CompanyID, req.StaffID); err != nil {
		return nil, err
	}

	now := s.Now()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: actorID, LastUpdatedAt: now, LastUpdatedBy: actorID}
	base := domain.Forecast{
		Amount:               req.Amount,
		Comment:              req.Comment,
		ExpenseCategoryID:    req.ExpenseCategoryID,
		ExpenseSubCategoryID: req.ExpenseSubCategoryID,
		CompanyID:            req.CompanyID,
		StaffID:              req.StaffID,
		AuditFields:          audit,
	}

	var forecasts []domain.Forecast
	if req.IsGenerateForAllMonth {
		dates := s.calendar.GroupDates(req.PayDate)
		forecasts = make([]domain.Forecast, len(dates))
		groupID := s.NewID()
		for i, d := range dates {
			f := base
			if i == 0 {
				f.ForecastID = groupID
			} else {
				f.ForecastID = s.NewID()
			}
			f.PayDate = d
			f.RelatedForecastID = strPtr(groupID)
			forecasts[i] = f
		}
	} else {
		f := base
		f.ForecastID = s.NewID()
		f.PayDate = s.calendar.SingleDate(req.PayDate)
		forecasts = []domain.Forecast{f}
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		return s.forecastRepo.SaveForecasts(ctx, forecasts)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create forecast", slog.Int("count", len(forecasts)))
		return nil, err
	}

	s.LogInfo(ctx, "Forecast created",
		slog.String("forecast_id", forecasts[0].ForecastID),
		slog.Int("count", len(forecasts)))
	return forecasts, nil
}

// UpdateForecast replaces the editable fields of the target, or of its whole
// group when updateWholeGroup is set and the target is grouped. Every row
// keeps its own month and year and takes the day of req.PayDate.
func (s *forecastService) UpdateForecast(ctx context.Context, forecastID string, req dto.UpdateForecastRequest, updateWholeGroup bool, actorID string) ([]domain.Forecast, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor id is required", apperrors.ErrUnauthorized)
	}

	var updated []domain.Forecast
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		target, err := s.forecastRepo.FindForecastForUpdate(ctx, forecastID)
		if err != nil {
			return err
		}
		if err := s.checkRefs(ctx, req.ExpenseCategoryID, req.ExpenseSubCategoryID, req.CompanyID, req.StaffID); err != nil {
			return err
		}

		rows := []domain.Forecast{*target}
		if updateWholeGroup && target.IsGrouped() {
			rows, err = s.forecastRepo.FindGroupForUpdate(ctx, *target.RelatedForecastID)
			if err != nil {
				return err
			}
		}

		now := s.Now()
		for i := range rows {
			rows[i].Amount = req.Amount
			rows[i].Comment = req.Comment
			rows[i].ExpenseCategoryID = req.ExpenseCategoryID
			rows[i].ExpenseSubCategoryID = req.ExpenseSubCategoryID
			rows[i].CompanyID = req.CompanyID
			rows[i].StaffID = req.StaffID
			rows[i].PayDate = domain.WithDay(rows[i].PayDate, req.PayDate)
			rows[i].LastUpdatedAt = now
			rows[i].LastUpdatedBy = actorID
		}
		if err := s.forecastRepo.UpdateForecasts(ctx, rows); err != nil {
			return err
		}
		updated = rows
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update forecast",
			slog.String("forecast_id", forecastID),
			slog.Bool("whole_group", updateWholeGroup))
		return nil, err
	}

	s.LogInfo(ctx, "Forecast updated", slog.String("forecast_id", forecastID), slog.Int("count", len(updated)))
	return updated, nil
}

// RemoveForecast deletes the whole group of a grouped forecast, otherwise the
// single row, and returns the number of rows removed.
func (s *forecastService) RemoveForecast(ctx context.Context, forecastID string) (int64, error) {
	var removed int64
	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		target, err := s.forecastRepo.FindForecastForUpdate(ctx, forecastID)
		if err != nil {
			return err
		}
		if target.IsGrouped() {
			removed, err = s.forecastRepo.DeleteGroup(ctx, *target.RelatedForecastID)
		} else {
			removed, err = s.forecastRepo.DeleteForecast(ctx, forecastID)
		}
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to remove forecast", slog.String("forecast_id", forecastID))
		return 0, err
	}

	s.LogInfo(ctx, "Forecast removed", slog.String("forecast_id", forecastID), slog.Int64("removed", removed))
	return removed, nil
}

func (s *forecastService) CalculateForecast(ctx context.Context, month *int, companyID *string) (decimal.Decimal, error) {
	if month != nil && (*month < 1 || *month > 12) {
		return decimal.Zero, apperrors.ValidationErrors{{Field: "month", Rule: "range", Message: "month must be between 1 and 12"}}
	}
	total, err := s.forecastRepo.SumForecasts(ctx, month, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate forecast total")
		return decimal.Zero, err
	}
	return total, nil
}

func (s *forecastService) GetForecastByID(ctx context.Context, forecastID string) (*domain.Forecast, error) {
	return s.forecastRepo.FindForecastByID(ctx, forecastID)
}

func (s *forecastService) ListForecasts(ctx context.Context, params dto.ListForecastsParams) ([]domain.Forecast, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := max(params.Offset, 0)
	return s.forecastRepo.ListForecasts(ctx, params.CompanyID, limit, offset)
}
