package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/infra/slotstorage"
)

// Store карта ключ слота -> бронирование, синхронизированная со слотом хранилища.
// Каждая мутация сразу записывается в слот, без буферизации.
// Проверка занятости и запись не объединены в транзакцию: два экземпляра,
// делящие один слот, могут перезаписать друг друга (последняя запись побеждает)
type Store struct {
	mu       sync.RWMutex
	records  map[domain.BookingKey]domain.BookingRecord
	storage  SlotStorage
	slotName string
	mode     domain.Mode
	metrics  MetricsCollector
	logger   Logger
}

// NewStore создает пустое хранилище. Для чтения сохраненных данных вызовите Load
func NewStore(storage SlotStorage, slotName string, mode domain.Mode, metrics MetricsCollector, logger Logger) *Store {
	return &Store{
		records:  make(map[domain.BookingKey]domain.BookingRecord),
		storage:  storage,
		slotName: slotName,
		mode:     mode,
		metrics:  metrics,
		logger:   logger,
	}
}

// Open создает хранилище и сразу загружает сохраненные бронирования
func Open(ctx context.Context, storage SlotStorage, slotName string, mode domain.Mode, metrics MetricsCollector, logger Logger) *Store {
	s := NewStore(storage, slotName, mode, metrics, logger)
	s.Load(ctx)
	return s
}

// Mode возвращает режим ключей хранилища
func (s *Store) Mode() domain.Mode {
	return s.mode
}

// Load полностью заменяет содержимое памяти данными слота.
// Отсутствующий, битый или нечитаемый слот дает пустое хранилище: ошибка только логируется
func (s *Store) Load(ctx context.Context) {
	records := s.read(ctx)

	s.mu.Lock()
	s.records = records
	count := len(records)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SetBookingsStored(count)
	}
	s.logger.Info("BookingStore: loaded %d bookings from slot %s", count, s.slotName)
}

// Has проверяет, занят ли слот
func (s *Store) Has(key domain.BookingKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.records[key]
	return ok
}

// Get возвращает копию бронирования по ключу
func (s *Store) Get(key domain.BookingKey) (*domain.BookingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[key]
	if !ok {
		return nil, false
	}
	return &record, true
}

// Put безусловно записывает бронирование (last-write-wins) и сразу сохраняет слот.
// Ошибка возвращается только при нарушении инварианта ключ == (date, time) записи
func (s *Store) Put(ctx context.Context, key domain.BookingKey, record domain.BookingRecord) error {
	if !record.HasSlot(s.mode) {
		return fmt.Errorf("%w: Put - missing date or time for key %s", ErrInvalidRecord, key)
	}
	expected, err := record.Key(s.mode)
	if err != nil {
		return fmt.Errorf("%w: Put - %v", ErrInvalidRecord, err)
	}
	if expected != key {
		return fmt.Errorf("%w: Put - key %s, record %s", ErrKeyMismatch, key, expected)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = record
	s.persistLocked(ctx)
	return nil
}

// Remove удаляет бронирование, если оно есть. Слот сохраняется только при изменении
func (s *Store) Remove(ctx context.Context, key domain.BookingKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; !ok {
		return false
	}

	delete(s.records, key)
	s.persistLocked(ctx)
	return true
}

// List возвращает все бронирования, отсортированные по дате и времени
func (s *Store) List() []domain.BookingRecord {
	s.mu.RLock()
	result := make([]domain.BookingRecord, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Before(&result[j])
	})
	return result
}

// Len возвращает количество бронирований
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// Persist сериализует всю карту в слот. Ошибка записи только логируется:
// состояние в памяти остаётся верным до конца сессии
func (s *Store) Persist(ctx context.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) {
	if s.metrics != nil {
		s.metrics.SetBookingsStored(len(s.records))
	}

	payload := make(map[string]domain.BookingRecord, len(s.records))
	for key, record := range s.records {
		payload[string(key)] = record
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.softFail("persist", "BookingStore: could not serialize bookings: %v", err)
		return
	}

	if err := s.storage.Set(ctx, s.slotName, data); err != nil {
		s.softFail("persist", "BookingStore: could not save bookings to slot %s: %v", s.slotName, err)
		return
	}
}

func (s *Store) read(ctx context.Context) map[domain.BookingKey]domain.BookingRecord {
	records := make(map[domain.BookingKey]domain.BookingRecord)

	data, err := s.storage.Get(ctx, s.slotName)
	if errors.Is(err, slotstorage.ErrSlotEmpty) {
		return records
	}
	if err != nil {
		s.softFail("load", "BookingStore: could not read saved bookings: %v", err)
		return records
	}
	if len(data) == 0 {
		return records
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.softFail("load", "BookingStore: could not parse saved bookings: %v", err)
		return records
	}

	for rawKey, rawRecord := range raw {
		key, err := domain.ParseBookingKey(s.mode, rawKey)
		if err != nil {
			s.logger.Warn("BookingStore: skipping entry with malformed key %q: %v", rawKey, err)
			continue
		}

		var record domain.BookingRecord
		if err := json.Unmarshal(rawRecord, &record); err != nil {
			s.logger.Warn("BookingStore: skipping unparsable entry %s: %v", key, err)
			continue
		}

		// Запись обязана лежать под своим ключом
		if expected, err := record.Key(s.mode); err != nil || expected != key {
			s.logger.Warn("BookingStore: skipping entry %s whose date/time does not match its key", key)
			continue
		}

		records[key] = record
	}

	return records
}

func (s *Store) softFail(operation, format string, v ...interface{}) {
	if s.metrics != nil {
		s.metrics.ObserveStorageError(operation)
	}
	s.logger.Warn(format, v...)
}
