package capacity

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-CourseService/internal/domain"
	"github.com/m04kA/SMC-CourseService/pkg/cache"
)

// ledgerKey ключ кэша со всеми строками реестра
const ledgerKey = "capacity:ledger"

// Store операции хранилища реестра
type Store interface {
	GetBySlotID(ctx context.Context, slotID string) (*domain.TimeSlotCapacity, error)
	List(ctx context.Context) ([]*domain.TimeSlotCapacity, error)
	ListByDay(ctx context.Context, day domain.WeekDay) ([]*domain.TimeSlotCapacity, error)
	Upsert(ctx context.Context, c *domain.TimeSlotCapacity) (*domain.TimeSlotCapacity, error)
	InsertMissing(ctx context.Context, rows []*domain.TimeSlotCapacity) (int64, error)
}

// Cache JSON кэш
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// CachedRepository кэширует реестр целиком и сбрасывает кэш при каждой записи
// Ошибки кэша не влияют на результат: чтение уходит в базу
// Запись другого экземпляра сервиса может быть не видна до истечения ttl
type CachedRepository struct {
	store  Store
	cache  Cache
	ttl    time.Duration
	logger Logger

	// generation увеличивается при каждой записи этого экземпляра
	generation atomic.Uint64
}

// NewCachedRepository создает кэширующую обертку над хранилищем
func NewCachedRepository(store Store, cache Cache, ttl time.Duration, logger Logger) *CachedRepository {
	return &CachedRepository{
		store:  store,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// GetBySlotID получает строку вместимости слота
func (r *CachedRepository) GetBySlotID(ctx context.Context, slotID string) (*domain.TimeSlotCapacity, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range rows {
		if c.SlotID == slotID {
			return c, nil
		}
	}
	return nil, ErrCapacityNotFound
}

// List получает все строки реестра, сначала из кэша
func (r *CachedRepository) List(ctx context.Context) ([]*domain.TimeSlotCapacity, error) {
	var cached []*domain.TimeSlotCapacity
	err := r.cache.Get(ctx, ledgerKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn("capacity cache read failed: %v", err)
	}

	gen := r.generation.Load()
	rows, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, ledgerKey, rows, r.ttl); err != nil {
		r.logger.Warn("capacity cache write failed: %v", err)
		return rows, nil
	}

	// запись прошла между чтением из базы и Set: прочитанные строки могли устареть
	if r.generation.Load() != gen {
		r.invalidate(ctx)
	}

	return rows, nil
}

// ListByDay получает строки реестра одного дня
func (r *CachedRepository) ListByDay(ctx context.Context, day domain.WeekDay) ([]*domain.TimeSlotCapacity, error) {
	rows, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.TimeSlotCapacity, 0)
	for _, c := range rows {
		if c.Day == day {
			out = append(out, c)
		}
	}
	return out, nil
}

// Upsert записывает строку и сбрасывает кэш
func (r *CachedRepository) Upsert(ctx context.Context, c *domain.TimeSlotCapacity) (*domain.TimeSlotCapacity, error) {
	r.generation.Add(1)
	saved, err := r.store.Upsert(ctx, c)
	r.generation.Add(1)
	r.invalidate(ctx)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// InsertMissing вставляет недостающие строки и сбрасывает кэш
func (r *CachedRepository) InsertMissing(ctx context.Context, rows []*domain.TimeSlotCapacity) (int64, error) {
	r.generation.Add(1)
	inserted, err := r.store.InsertMissing(ctx, rows)
	r.generation.Add(1)
	r.invalidate(ctx)
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *CachedRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, ledgerKey); err != nil {
		r.logger.Warn("capacity cache invalidation failed: %v", err)
	}
}
