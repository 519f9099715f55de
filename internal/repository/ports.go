package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateTables(tables ...any) error
	Create(ctx context.Context, record any) error
	CreateIgnoreConflicts(ctx context.Context, records any, conflictColumns ...string) (int64, error)
	Upsert(ctx context.Context, record any, conflictColumns []string, updateColumns []string) error
	GetOneBy(ctx context.Context, column string, value any, dest any) error
	GetAllBy(ctx context.Context, column string, values any, dest any) error
	Find(ctx context.Context, dest any, where map[string]any, order string, limit, offset int) error
	SearchLike(ctx context.Context, dest any, columns []string, term string, where map[string]any, limit, offset int) error
	IncrementColumn(ctx context.Context, model any, where map[string]any, column string) error
	DeleteWhere(ctx context.Context, model any, where map[string]any) error
	CountWhere(ctx context.Context, model any, where map[string]any) (int64, error)
	CountGroupBy(ctx context.Context, model any, column string) (map[string]int64, error)
}
