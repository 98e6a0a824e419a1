package capacity

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	capacityRepo "github.com/m04kA/SMC-CourseService/internal/infra/storage/capacity"
	"github.com/m04kA/SMC-CourseService/internal/service/capacity/models"
)

// Операции записи для метрик
const (
	opSet         = "set"
	opFillMissing = "fill_missing"
	opResetAll    = "reset_all"
)

// Service реестр вместимости слотов
// Единственный компонент, который пишет вместимость
type Service struct {
	repo    CapacityRepository
	catalog Catalog
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса вместимости
func NewService(
	repo CapacityRepository,
	catalog Catalog,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// GetCapacity возвращает вместимость слота
// Если строки нет, возвращается ErrNotInitialized
func (s *Service) GetCapacity(ctx context.Context, slotID string) (*models.CapacityResponse, error) {
	if _, err := s.catalog.LookupByID(slotID); err != nil {
		s.logger.Warn("GetCapacity: slot=%s is not in catalog", slotID)
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}

	c, err := s.repo.GetBySlotID(ctx, slotID)
	if err != nil {
		if errors.Is(err, capacityRepo.ErrCapacityNotFound) {
			s.logger.Warn("GetCapacity: slot=%s has no capacity row", slotID)
			return nil, fmt.Errorf("%w: %s", ErrNotInitialized, slotID)
		}
		s.logger.Error("GetCapacity: repository error for slot=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetCapacity - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCapacity(c), nil
}

// SetCapacity перезаписывает вместимость слота (создает строку, если ее нет)
// Неположительное значение отклоняется, прежнее значение сохраняется
func (s *Service) SetCapacity(ctx context.Context, slotID string, totalVacancies int) (*models.CapacityResponse, error) {
	if err := validateSeats(totalVacancies); err != nil {
		s.logger.Warn("SetCapacity: slot=%s rejected: %v", slotID, err)
		return nil, err
	}

	slot, err := s.catalog.LookupByID(slotID)
	if err != nil {
		s.logger.Warn("SetCapacity: slot=%s is not in catalog", slotID)
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, slotID)
	}

	saved, err := s.repo.Upsert(ctx, domain.NewTimeSlotCapacity(slot, totalVacancies))
	if err != nil {
		s.logger.Error("SetCapacity: repository error for slot=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: SetCapacity - repository error: %v", ErrInternal, err)
	}
	s.metrics.ObserveCapacityWrites(opSet, 1)

	s.logger.Info("SetCapacity: slot=%s set to %d seats", slotID, totalVacancies)
	return models.FromDomainCapacity(saved), nil
}

// FillMissingDefaults создает строки только для слотов каталога без строки
// Существующие значения не меняются; повторный вызов ничего не пишет
func (s *Service) FillMissingDefaults(ctx context.Context, defaultSeats int) (*models.InitializeResponse, error) {
	if err := validateSeats(defaultSeats); err != nil {
		s.logger.Warn("FillMissingDefaults: rejected: %v", err)
		return nil, err
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("FillMissingDefaults: failed to list capacities: %v", err)
		return nil, fmt.Errorf("%w: FillMissingDefaults - list: %v", ErrInternal, err)
	}

	present := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		present[c.SlotID] = struct{}{}
	}

	slots := s.catalog.All()
	missing := make([]*domain.TimeSlotCapacity, 0)
	for _, slot := range slots {
		if _, ok := present[slot.ID]; ok {
			continue
		}
		missing = append(missing, domain.NewTimeSlotCapacity(slot, defaultSeats))
	}

	resp := &models.InitializeResponse{
		DefaultSeats: defaultSeats,
		CatalogSlots: len(slots),
	}
	if len(missing) == 0 {
		s.logger.Info("FillMissingDefaults: all %d slots already initialized", len(slots))
		return resp, nil
	}

	// ON CONFLICT DO NOTHING: строки, созданные параллельно, не перезаписываются
	inserted, err := s.repo.InsertMissing(ctx, missing)
	if err != nil {
		s.logger.Error("FillMissingDefaults: failed to insert %d rows: %v", len(missing), err)
		return nil, fmt.Errorf("%w: FillMissingDefaults - insert: %v", ErrInternal, err)
	}
	resp.Written = int(inserted)
	s.metrics.ObserveCapacityWrites(opFillMissing, resp.Written)

	s.logger.Info("FillMissingDefaults: inserted %d rows with %d seats", inserted, defaultSeats)
	return resp, nil
}

// ResetAllToDefault устанавливает defaultSeats для каждого слота каталога и для
// каждой строки реестра, даже если ее слота уже нет в каталоге
// Каждая строка пишется отдельным upsert: строка либо обновлена целиком, либо не тронута
func (s *Service) ResetAllToDefault(ctx context.Context, defaultSeats int) (*models.InitializeResponse, error) {
	if err := validateSeats(defaultSeats); err != nil {
		s.logger.Warn("ResetAllToDefault: rejected: %v", err)
		return nil, err
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ResetAllToDefault: failed to list capacities: %v", err)
		return nil, fmt.Errorf("%w: ResetAllToDefault - list: %v", ErrInternal, err)
	}

	slots := s.catalog.All()
	targets := make([]*domain.TimeSlotCapacity, 0, len(slots)+len(existing))
	inCatalog := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		inCatalog[slot.ID] = struct{}{}
		targets = append(targets, domain.NewTimeSlotCapacity(slot, defaultSeats))
	}

	// строки слотов, удаленных из каталога, тоже перезаписываются
	orphans := 0
	for _, c := range existing {
		if _, ok := inCatalog[c.SlotID]; ok {
			continue
		}
		row := *c
		row.TotalVacancies = defaultSeats
		targets = append(targets, &row)
		orphans++
	}
	if orphans > 0 {
		s.logger.Warn("ResetAllToDefault: %d ledger rows are not in catalog, resetting them too", orphans)
	}

	resp := &models.InitializeResponse{
		DefaultSeats: defaultSeats,
		CatalogSlots: len(slots),
	}

	for _, row := range targets {
		if _, err := s.repo.Upsert(ctx, row); err != nil {
			s.metrics.ObserveCapacityWrites(opResetAll, resp.Written)
			s.logger.Error("ResetAllToDefault: stopped at slot=%s after %d of %d rows: %v",
				row.SlotID, resp.Written, len(targets), err)
			return nil, fmt.Errorf("%w: ResetAllToDefault - slot %s (%d of %d written): %v",
				ErrInternal, row.SlotID, resp.Written, len(targets), err)
		}
		resp.Written++
	}
	s.metrics.ObserveCapacityWrites(opResetAll, resp.Written)

	s.logger.Info("ResetAllToDefault: %d rows set to %d seats", resp.Written, defaultSeats)
	return resp, nil
}

// List возвращает все строки реестра в порядке каталога
func (s *Service) List(ctx context.Context) (*models.CapacityListResponse, error) {
	capacities, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.sortByCatalog(capacities)
	return models.FromDomainCapacityList(capacities), nil
}

// ListByDay возвращает строки реестра одного дня
func (s *Service) ListByDay(ctx context.Context, day domain.WeekDay) (*models.CapacityListResponse, error) {
	capacities, err := s.repo.ListByDay(ctx, day)
	if err != nil {
		s.logger.Error("ListByDay: repository error for day=%s: %v", day, err)
		return nil, fmt.Errorf("%w: ListByDay - repository error: %v", ErrInternal, err)
	}

	s.sortByCatalog(capacities)
	return models.FromDomainCapacityList(capacities), nil
}

// Snapshot возвращает вместимость всех инициализированных слотов: slot id -> места
func (s *Service) Snapshot(ctx context.Context) (map[string]int, error) {
	capacities, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Snapshot: repository error: %v", err)
		return nil, fmt.Errorf("%w: Snapshot - repository error: %v", ErrInternal, err)
	}

	snapshot := make(map[string]int, len(capacities))
	for _, c := range capacities {
		snapshot[c.SlotID] = c.TotalVacancies
	}
	return snapshot, nil
}

// sortByCatalog упорядочивает строки как в каталоге; строки вне каталога идут в конце
func (s *Service) sortByCatalog(capacities []*domain.TimeSlotCapacity) {
	order := make(map[string]int)
	for i, slot := range s.catalog.All() {
		order[slot.ID] = i
	}

	rank := func(id string) int {
		if i, ok := order[id]; ok {
			return i
		}
		return len(order)
	}

	sort.SliceStable(capacities, func(i, j int) bool {
		ri, rj := rank(capacities[i].SlotID), rank(capacities[j].SlotID)
		if ri != rj {
			return ri < rj
		}
		return capacities[i].SlotID < capacities[j].SlotID
	})
}

func validateSeats(seats int) error {
	if seats < domain.MinSeatsPerSlot {
		return fmt.Errorf("%w: %d seats, must be at least %d",
			ErrInvalidCapacity, seats, domain.MinSeatsPerSlot)
	}
	return nil
}
