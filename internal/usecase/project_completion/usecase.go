package project_completion

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	courseRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/course"
	"github.com/m04kA/SMC-CourseService/pkg/ptr"
)

const projectionKind = "preview"

// UseCase use case предварительного прогноза даты завершения
type UseCase struct {
	courseRepo   CourseRepository
	aggregator   Aggregator
	projector    Projector
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courseRepo CourseRepository,
	aggregator Aggregator,
	projector Projector,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		courseRepo:   courseRepo,
		aggregator:   aggregator,
		projector:    projector,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute считает недельную нагрузку расписания и прогнозирует дату завершения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProjectCompletion: course=%v, totalHours=%d", req.CourseID, req.TotalHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ProjectCompletion: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		CourseID:   req.CourseID,
		TotalHours: req.TotalHours,
		StartDate:  domain.DateOnly(uc.timeProvider.Now()),
	}

	// 2. Загружаем курс, если он указан
	if req.CourseID != nil {
		course, err := uc.courseRepo.GetByID(ctx, *req.CourseID)
		if err != nil {
			if errors.Is(err, courseRepo.ErrCourseNotFound) {
				uc.logger.Warn("ProjectCompletion: course=%s not found", *req.CourseID)
				return nil, ErrCourseNotFound
			}
			uc.logger.Error("ProjectCompletion: failed to get course=%s: %v", *req.CourseID, err)
			return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
		}
		if resp.TotalHours == 0 {
			resp.TotalHours = course.TotalHours
		}
		resp.StartDate = domain.DateOnly(course.StartDate)
		endDate := domain.DateOnly(course.EndDate)
		resp.CourseEndDate = &endDate
	}
	resp.StartDate = domain.DateOnly(ptr.Deref(req.StartDate, resp.StartDate))

	// 3. Недельная нагрузка; пустое расписание дает 0 и непрогнозируемый результат
	weekly, err := uc.aggregator.WeeklyHours(req.Schedule)
	if err != nil {
		uc.metrics.ObserveInconsistentSchedule()
		uc.logger.Warn("ProjectCompletion: inconsistent schedule: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInconsistentSchedule, err)
	}
	resp.WeeklyHours = weekly

	byDay, err := uc.aggregator.Breakdown(req.Schedule)
	if err != nil {
		uc.logger.Error("ProjectCompletion: breakdown failed after weekly hours resolved: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	resp.HoursByDay = byDay

	// 4. Прогноз
	resp.Projection = uc.projector.Project(resp.StartDate, resp.TotalHours, resp.WeeklyHours)
	uc.metrics.ObserveProjection(projectionKind, resp.Projection.Outcome())
	if resp.CourseEndDate != nil {
		resp.BehindSchedule = resp.Projection.After(*resp.CourseEndDate)
	}

	uc.logger.Info("ProjectCompletion: weekly=%d, weeks=%d, skipped=%d, outcome=%s",
		resp.WeeklyHours, resp.Projection.Weeks, resp.Projection.SkippedWeeks, resp.Projection.Outcome())

	return resp, nil
}
