package slotstorage

import (
	"context"
	"database/sql"
)

// Storage именованные слоты ключ-значение, в одном из которых хранится
// сериализованная карта бронирований
type Storage interface {
	// Get возвращает значение слота или ErrSlotEmpty, если слот не записан
	Get(ctx context.Context, name string) ([]byte, error)
	// Set перезаписывает значение слота целиком
	Set(ctx context.Context, name string, value []byte) error
}

// DBExecutor минимальный интерфейс БД для PostgresStorage
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
