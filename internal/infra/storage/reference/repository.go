package reference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/OBT-TerminService/internal/domain"
	"github.com/m04kA/OBT-TerminService/pkg/dbmetrics"
	"github.com/m04kA/OBT-TerminService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий справочных данных: Terminarten и Berater.
// Справочники неизменяемы со стороны сервиса — только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочных данных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAppointmentType получает Terminart по ID
func (r *Repository) GetAppointmentType(ctx context.Context, id int) (*domain.AppointmentType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "dauer_minuten").
		From("terminarten").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointmentType - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.AppointmentType
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Name, &t.DauerMinuten)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointmentType - scan row: %v", ErrScanRow, err)
	}

	return &t, nil
}

// ListAppointmentTypes получает все Terminarten, отсортированные по ID
func (r *Repository) ListAppointmentTypes(ctx context.Context) ([]*domain.AppointmentType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "dauer_minuten").
		From("terminarten").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointmentTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointmentTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]*domain.AppointmentType, 0)
	for rows.Next() {
		var t domain.AppointmentType
		if err := rows.Scan(&t.ID, &t.Name, &t.DauerMinuten); err != nil {
			return nil, fmt.Errorf("%w: ListAppointmentTypes - scan row: %v", ErrScanRow, err)
		}
		types = append(types, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAppointmentTypes - rows error: %v", ErrScanRow, err)
	}

	return types, nil
}

// GetAdvisor получает Berater по ID
func (r *Repository) GetAdvisor(ctx context.Context, id int64) (*domain.Advisor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("berater").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAdvisor - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Advisor
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdvisorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAdvisor - scan row: %v", ErrScanRow, err)
	}

	return &a, nil
}

// ListAdvisors получает всех Berater, отсортированных по ID.
// Порядок стабилен — от него зависит порядок консультантов в выдаче
// свободных слотов при совпадающем времени начала
func (r *Repository) ListAdvisors(ctx context.Context) ([]*domain.Advisor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("berater").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAdvisors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAdvisors - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	advisors := make([]*domain.Advisor, 0)
	for rows.Next() {
		var a domain.Advisor
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("%w: ListAdvisors - scan row: %v", ErrScanRow, err)
		}
		advisors = append(advisors, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAdvisors - rows error: %v", ErrScanRow, err)
	}

	return advisors, nil
}
