package get_slot_occupancy

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/internal/engine/catalog"
	"github.com/m04kA/SMC-CourseService/internal/engine/occupancy"
)

// UseCase use case расчета заполненности слотов
type UseCase struct {
	studentRepo StudentRepository
	ledger      CapacityLedger
	calculator  Calculator
	metrics     Metrics
	options     Options
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	studentRepo StudentRepository,
	ledger CapacityLedger,
	calculator Calculator,
	metrics Metrics,
	options Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		studentRepo: studentRepo,
		ledger:      ledger,
		calculator:  calculator,
		metrics:     metrics,
		options:     options,
		logger:      logger,
	}
}

// Execute считает заполненность по одному снимку студентов и реестра
// Отсутствующая строка реестра дает "вместимость неизвестна", а не ошибку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotOccupancy: day=%q, slot=%q", req.Day, req.SlotID)

	// 1. Валидация входных данных
	days, err := parseDays(req)
	if err != nil {
		uc.logger.Warn("GetSlotOccupancy: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем студентов и реестр параллельно
	roster, snapshot, err := uc.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Считаем заполненность: один слот или все слоты дней
	compute := func(capacities map[string]int) (occupancy.Report, error) {
		if req.SlotID != "" {
			return uc.calculator.ForSlot(roster, req.SlotID, occupancy.Snapshot(capacities))
		}
		return uc.calculator.Compute(roster, occupancy.Snapshot(capacities), days...), nil
	}

	report, err := compute(snapshot)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownSlot) {
			uc.logger.Warn("GetSlotOccupancy: slot=%s is not in catalog", req.SlotID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("GetSlotOccupancy: failed to compute occupancy: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Реестр не заполнен: заполняем недостающие строки и пересчитываем
	initialized := 0
	if uc.options.AutoInitialize && hasUnknownCapacity(report) {
		report, initialized = uc.autoInitialize(ctx, compute, report)
	}

	// 5. Студенты с некорректным расписанием только помечаются
	warnings := make([]StudentWarning, 0, len(report.Skipped))
	for _, skipped := range report.Skipped {
		uc.metrics.ObserveInconsistentSchedule()
		uc.logger.Warn("GetSlotOccupancy: student=%s skipped: %v", skipped.StudentID, skipped.Err)
		warnings = append(warnings, StudentWarning{
			StudentID: skipped.StudentID,
			Message:   skipped.Err.Error(),
		})
	}

	uc.logger.Info("GetSlotOccupancy: %d slots, %d students, %d skipped",
		len(report.Slots), len(roster), len(warnings))

	return &Response{
		Slots:       toSlots(report.Slots),
		Warnings:    warnings,
		Initialized: initialized,
	}, nil
}

// autoInitialize заполняет недостающие строки реестра и пересчитывает отчет
// Ошибка заполнения не прерывает запрос: возвращается исходный отчет с "вместимость неизвестна"
func (uc *UseCase) autoInitialize(
	ctx context.Context,
	compute func(capacities map[string]int) (occupancy.Report, error),
	report occupancy.Report,
) (occupancy.Report, int) {
	uc.logger.Warn("GetSlotOccupancy: capacity ledger is incomplete, filling defaults (%d seats)",
		uc.options.DefaultSeats)

	filled, err := uc.ledger.FillMissingDefaults(ctx, uc.options.DefaultSeats)
	if err != nil {
		uc.logger.Warn("GetSlotOccupancy: failed to fill defaults, keeping unknown capacities: %v", err)
		return report, 0
	}

	snapshot, err := uc.ledger.Snapshot(ctx)
	if err != nil {
		uc.logger.Warn("GetSlotOccupancy: failed to reload capacities, keeping unknown capacities: %v", err)
		return report, filled.Written
	}

	refreshed, err := compute(snapshot)
	if err != nil {
		uc.logger.Warn("GetSlotOccupancy: failed to recompute occupancy, keeping first report: %v", err)
		return report, filled.Written
	}
	return refreshed, filled.Written
}

func (uc *UseCase) loadSnapshot(ctx context.Context) ([]*domain.Student, map[string]int, error) {
	var (
		roster   []*domain.Student
		snapshot map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = uc.studentRepo.GetAll(gctx, domain.StudentFilter{ActiveOnly: true})
		if err != nil {
			return fmt.Errorf("load students: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		snapshot, err = uc.ledger.Snapshot(gctx)
		if err != nil {
			return fmt.Errorf("load capacities: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetSlotOccupancy: %v", err)
		return nil, nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return roster, snapshot, nil
}

func hasUnknownCapacity(report occupancy.Report) bool {
	for _, slot := range report.Slots {
		if !slot.CapacityKnown {
			return true
		}
	}
	return false
}

func toSlots(rows []occupancy.SlotOccupancy) []Slot {
	slots := make([]Slot, 0, len(rows))
	for _, row := range rows {
		slots = append(slots, Slot{
			SlotID:           row.Slot.ID,
			Day:              row.Slot.Day,
			DisplayTime:      row.Slot.DisplayTime(),
			DurationHours:    row.Slot.DurationHours,
			Enrolled:         row.Enrolled,
			CapacityKnown:    row.CapacityKnown,
			TotalVacancies:   row.TotalVacancies,
			AvailableSeats:   row.AvailableSeats,
			OccupancyPercent: row.OccupancyPercent,
			IsFull:           row.IsFull(),
			IsOverCapacity:   row.IsOverCapacity(),
		})
	}
	return slots
}
