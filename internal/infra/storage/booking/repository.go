package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/OBT-TerminService/internal/domain"
	"github.com/m04kA/OBT-TerminService/pkg/dbmetrics"
	"github.com/m04kA/OBT-TerminService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL, означающие нарушение ограничения занятости слота
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

var bookingColumns = []string{
	"id",
	"berater_id",
	"terminart_id",
	"start_zeit",
	"ende_zeit",
	"kunden_name",
	"kunden_vertragsnummer",
	"kunden_email",
	"kunden_gesamtbeitrag",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями (Termine)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value),
// использует её — так create_booking держит проверку доступности и вставку
// в одной сериализуемой транзакции.
//
// Таблица termine несет exclusion constraint на (berater_id, tsrange):
// даже если проверка доступности перед вставкой проиграла гонку, БД
// отклонит пересекающееся бронирование. Такое нарушение транслируется
// в ErrSlotTaken, а не в общий сбой
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("termine").
		Columns(
			"berater_id",
			"terminart_id",
			"start_zeit",
			"ende_zeit",
			"kunden_name",
			"kunden_vertragsnummer",
			"kunden_email",
			"kunden_gesamtbeitrag",
		).
		Values(
			booking.BeraterID,
			booking.TerminartID,
			booking.Start,
			booking.Ende,
			booking.KundenName,
			booking.KundenVertragsnummer,
			booking.KundenEmail,
			booking.KundenGesamtbeitrag,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isSlotConstraintViolation(err) {
			return nil, fmt.Errorf("%w: berater=%d, start=%s", ErrSlotTaken,
				booking.BeraterID, booking.Start.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("termine").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetOverlappingRange получает все бронирования, пересекающие полуинтервал
// [from, to), отсортированные по началу. Это снимок занятости всех
// консультантов, по которому строится выдача свободных слотов
func (r *Repository) GetOverlappingRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("termine").
		Where(squirrel.Lt{"start_zeit": to}).
		Where(squirrel.Gt{"ende_zeit": from}).
		OrderBy("start_zeit ASC, berater_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetOverlappingForBerater получает бронирования одного консультанта,
// пересекающие полуинтервал [from, to).
//
// Внутри транзакции добавляет FOR UPDATE: create_booking блокирует
// затронутые строки на время проверки доступности и вставки
func (r *Repository) GetOverlappingForBerater(ctx context.Context, beraterID int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("termine").
		Where(squirrel.Eq{"berater_id": beraterID}).
		Where(squirrel.Lt{"start_zeit": to}).
		Where(squirrel.Gt{"ende_zeit": from}).
		OrderBy("start_zeit ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingForBerater - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingForBerater - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BeraterID,
		&booking.TerminartID,
		&booking.Start,
		&booking.Ende,
		&booking.KundenName,
		&booking.KundenVertragsnummer,
		&booking.KundenEmail,
		&booking.KundenGesamtbeitrag,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isSlotConstraintViolation проверяет, что ошибка БД — нарушение
// ограничения занятости слота (exclusion или unique constraint)
func isSlotConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pgExclusionViolation || code == pgUniqueViolation
	}
	return false
}
