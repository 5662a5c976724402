package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/shared/dto"

	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned by Get when no row matches the filter.
var ErrNotFound = errors.New("record not found")

var (
	errRequiredFilter = errors.New("required filter")

	maxStrategyWarning sync.Once
)

// Repository holds the statements every table shares: insert by `db` tags,
// single-row lookup and the synthetic id source.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	idStrategy    string
	table         string
	entity        string
	primaryColumn string
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, cfg *config.Config, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		idStrategy:    cfg.DB.Postgres.IDStrategy,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		InsertColumns: getColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err := repo.db.NamedExec(ctx, query, model); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return nil
}

// NextID returns the id for the next synthetic-key row of the table.
// Under the max strategy two concurrent writers can receive the same id.
func (repo *Repository[T]) NextID(ctx context.Context) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.NextID", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	var query string

	switch repo.idStrategy {
	case config.IDStrategySequence:
		query = fmt.Sprintf("SELECT nextval('%s_%s_seq')", repo.table, repo.primaryColumn)
	default:
		maxStrategyWarning.Do(func() {
			log.Warn().
				Str("strategy", config.IDStrategyMax).
				Msg("synthetic ids are derived from max(id)+1 and may collide under concurrent writers")
		})

		query = fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", repo.primaryColumn, repo.table)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var id int
	if err := repo.db.Get(ctx, &id, query); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get next id (%s): %w", repo.entity, err)
	}

	return id, nil
}

// Get returns the first row matching filter ordered by the primary column.
// It fails with ErrNotFound when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	var model T

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return model, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s ORDER BY %s LIMIT 1", strings.Join(repo.InsertColumns, ", "), repo.table, where, repo.primaryColumn)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err := repo.db.NamedGet(ctx, &model, query, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, ErrNotFound
	}

	if err != nil {
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, nil
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return "WHERE " + where, args
}

func getColumns(reflectType reflect.Type) (columns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		if dbTag := field.Tag.Get("db"); dbTag != "" && dbTag != "-" {
			columns = append(columns, dbTag)
		}
	}

	return columns
}
