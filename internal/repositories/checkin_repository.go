package repositories

import (
	"context"
	"errors"

	"cloakroom-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const checkinColumns = `id, token_no, passenger_name, passenger_mobile, pnr_number, aadhar_number,
	 check_in_time, one_unit, two_unit, three_unit, locker,
	 one_unit_amount, two_unit_amount, three_unit_amount, locker_amount, total_amount,
	 status, created_at, updated_at`

type CheckinRepository struct {
	DB *pgxpool.Pool
}

func NewCheckinRepository(db *pgxpool.Pool) *CheckinRepository {
	return &CheckinRepository{DB: db}
}

// IsDuplicateToken reports whether err is the unique-constraint violation
// raised when an insert collides on token_no.
func IsDuplicateToken(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsNotFound reports whether err means no matching row.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func scanCheckin(row pgx.Row) (*models.CheckIn, error) {
	var c models.CheckIn
	err := row.Scan(&c.ID, &c.TokenNo, &c.PassengerName, &c.PassengerMobile, &c.PNRNumber, &c.AadharNumber,
		&c.CheckInTime, &c.Luggage.OneUnit, &c.Luggage.TwoUnit, &c.Luggage.ThreeUnit, &c.Luggage.Locker,
		&c.Amount.OneUnitAmount, &c.Amount.TwoUnitAmount, &c.Amount.ThreeUnitAmount, &c.Amount.LockerAmount, &c.Amount.TotalAmount,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CheckinRepository) Create(ctx context.Context, c *models.CheckIn) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO checkins(token_no, passenger_name, passenger_mobile, pnr_number, aadhar_number,
		     check_in_time, one_unit, two_unit, three_unit, locker,
		     one_unit_amount, two_unit_amount, three_unit_amount, locker_amount, total_amount, status)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
         RETURNING id, created_at, updated_at`,
		c.TokenNo, c.PassengerName, c.PassengerMobile, c.PNRNumber, c.AadharNumber,
		c.CheckInTime, c.Luggage.OneUnit, c.Luggage.TwoUnit, c.Luggage.ThreeUnit, c.Luggage.Locker,
		c.Amount.OneUnitAmount, c.Amount.TwoUnitAmount, c.Amount.ThreeUnitAmount, c.Amount.LockerAmount, c.Amount.TotalAmount,
		c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CheckinRepository) GetByToken(ctx context.Context, token string) (*models.CheckIn, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+checkinColumns+` FROM checkins WHERE token_no=$1`, token)
	return scanCheckin(row)
}

func (r *CheckinRepository) GetByID(ctx context.Context, id int) (*models.CheckIn, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+checkinColumns+` FROM checkins WHERE id=$1`, id)
	return scanCheckin(row)
}

// List returns all records, newest check-in first.
func (r *CheckinRepository) List(ctx context.Context) ([]*models.CheckIn, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+checkinColumns+` FROM checkins ORDER BY check_in_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCheckins(rows)
}

// ListByStatus returns records in the given status, most recently updated first.
func (r *CheckinRepository) ListByStatus(ctx context.Context, status string) ([]*models.CheckIn, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+checkinColumns+` FROM checkins WHERE status=$1 ORDER BY updated_at DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCheckins(rows)
}

// Search matches records whose token or PNR equals q.
func (r *CheckinRepository) Search(ctx context.Context, q string) ([]*models.CheckIn, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+checkinColumns+` FROM checkins
         WHERE token_no=$1 OR pnr_number=$1 ORDER BY check_in_time DESC`, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCheckins(rows)
}

// Update persists every mutable field of c and refreshes updated_at.
func (r *CheckinRepository) Update(ctx context.Context, c *models.CheckIn) error {
	return r.DB.QueryRow(ctx,
		`UPDATE checkins SET passenger_name=$1, passenger_mobile=$2, pnr_number=$3, aadhar_number=$4,
		     check_in_time=$5, one_unit=$6, two_unit=$7, three_unit=$8, locker=$9,
		     one_unit_amount=$10, two_unit_amount=$11, three_unit_amount=$12, locker_amount=$13, total_amount=$14,
		     status=$15, updated_at=CURRENT_TIMESTAMP
         WHERE id=$16
         RETURNING updated_at`,
		c.PassengerName, c.PassengerMobile, c.PNRNumber, c.AadharNumber,
		c.CheckInTime, c.Luggage.OneUnit, c.Luggage.TwoUnit, c.Luggage.ThreeUnit, c.Luggage.Locker,
		c.Amount.OneUnitAmount, c.Amount.TwoUnitAmount, c.Amount.ThreeUnitAmount, c.Amount.LockerAmount, c.Amount.TotalAmount,
		c.Status, c.ID,
	).Scan(&c.UpdatedAt)
}

func (r *CheckinRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM checkins WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectCheckins(rows pgx.Rows) ([]*models.CheckIn, error) {
	var out []*models.CheckIn
	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
