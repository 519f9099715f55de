package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTables(tables ...any) error {
	err := f.DB.AutoMigrate(tables...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Create(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// CreateIgnoreConflicts inserts records, silently skipping rows that collide
// with an existing row on the given conflict columns. Returns the number of
// rows actually written so callers can tell how many inserts were suppressed.
func (f *PostgresDB) CreateIgnoreConflicts(ctx context.Context, records any, conflictColumns ...string) (int64, error) {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}

	tx := f.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   cols,
		DoNothing: true,
	}).Create(records)
	if tx.Error != nil {
		return 0, fmt.Errorf("insert with conflict ignore: %w", tx.Error)
	}

	return tx.RowsAffected, nil
}

// Upsert inserts the record or, on conflict over conflictColumns, updates the
// listed updateColumns of the existing row.
func (f *PostgresDB) Upsert(ctx context.Context, record any, conflictColumns []string, updateColumns []string) error {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}

	err := f.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   cols,
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, dest any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, values any, dest any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), values).Find(dest)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// Find loads records matching the equality conditions in where, optionally
// ordered and paginated. A limit of 0 disables pagination.
func (f *PostgresDB) Find(ctx context.Context, dest any, where map[string]any, order string, limit, offset int) error {
	tx := f.DB.WithContext(ctx)
	if len(where) > 0 {
		tx = tx.Where(where)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}

	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

// SearchLike loads records where any of the given columns matches term as a
// case-insensitive substring, further narrowed by the equality conditions in
// where.
func (f *PostgresDB) SearchLike(ctx context.Context, dest any, columns []string, term string, where map[string]any, limit, offset int) error {
	if len(columns) == 0 {
		return errors.New("at least one search column is required")
	}

	pattern := "%" + term + "%"
	cond := f.DB.Where(fmt.Sprintf("%s ILIKE ?", columns[0]), pattern)
	for _, column := range columns[1:] {
		cond = cond.Or(fmt.Sprintf("%s ILIKE ?", column), pattern)
	}

	tx := f.DB.WithContext(ctx).Where(cond)
	if len(where) > 0 {
		tx = tx.Where(where)
	}
	if limit > 0 {
		tx = tx.Limit(limit).Offset(offset)
	}

	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("searching records: %w", err)
	}
	return nil
}

// IncrementColumn atomically adds one to a numeric column on all rows
// matching where.
func (f *PostgresDB) IncrementColumn(ctx context.Context, model any, where map[string]any, column string) error {
	err := f.DB.WithContext(ctx).Model(model).Where(where).
		Update(column, gorm.Expr(fmt.Sprintf("%s + ?", column), 1)).Error
	if err != nil {
		return fmt.Errorf("incrementing %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) DeleteWhere(ctx context.Context, model any, where map[string]any) error {
	if err := f.DB.WithContext(ctx).Where(where).Delete(model).Error; err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}
	return nil
}

func (f *PostgresDB) CountWhere(ctx context.Context, model any, where map[string]any) (int64, error) {
	var count int64
	tx := f.DB.WithContext(ctx).Model(model)
	if len(where) > 0 {
		tx = tx.Where(where)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// CountGroupBy returns per-value row counts for a single column.
func (f *PostgresDB) CountGroupBy(ctx context.Context, model any, column string) (map[string]int64, error) {
	var rows []struct {
		Value string
		Count int64
	}

	err := f.DB.WithContext(ctx).Model(model).
		Select(fmt.Sprintf("%s AS value, count(*) AS count", column)).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("grouping by %q: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Count
	}
	return counts, nil
}
