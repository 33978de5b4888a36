package slotstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotScheduler/pkg/psqlbuilder"
)

// DefaultTable таблица слотов по умолчанию
//
//	CREATE TABLE storage_slots (
//	    name       TEXT PRIMARY KEY,
//	    value      TEXT NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
const DefaultTable = "storage_slots"

// PostgresStorage хранит слоты строками таблицы (name -> value)
type PostgresStorage struct {
	db    DBExecutor
	table string
}

// NewPostgresStorage создает хранилище поверх подключения к PostgreSQL
func NewPostgresStorage(db DBExecutor, table string) *PostgresStorage {
	if table == "" {
		table = DefaultTable
	}
	return &PostgresStorage{db: db, table: table}
}

func (s *PostgresStorage) Get(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, ErrInvalidSlotName
	}

	query, args, err := psqlbuilder.Select("value").
		From(s.table).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan value: %v", ErrRead, err)
	}
	return []byte(value), nil
}

// Set выполняет upsert: последняя запись побеждает
func (s *PostgresStorage) Set(ctx context.Context, name string, value []byte) error {
	if name == "" {
		return ErrInvalidSlotName
	}

	query, args, err := psqlbuilder.Insert(s.table).
		Columns("name", "value").
		Values(name, string(value)).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %v", ErrWrite, err)
	}
	return nil
}
