package postgres

import (
	"context"
	"database/sql"
	"time"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/logger"
	"apnrghor-backend/internal/repository"
)

type apartmentRepository struct {
	db *sql.DB
}

func NewApartmentRepository(db *sql.DB) repository.ApartmentRepository {
	return &apartmentRepository{db: db}
}

func (r *apartmentRepository) Create(ctx context.Context, a *domain.Apartment) error {
	query := `INSERT INTO apartments (floor_no, block_name, apartment_no, rent, available, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	a.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, a.FloorNo, a.BlockName, a.ApartmentNo, a.Rent, a.Available, a.CreatedOn).Scan(&a.ID)
}

func (r *apartmentRepository) GetByID(ctx context.Context, id int32) (*domain.Apartment, error) {
	a := &domain.Apartment{}
	query := `SELECT id, floor_no, block_name, apartment_no, rent, available, created_on FROM apartments WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.FloorNo, &a.BlockName, &a.ApartmentNo, &a.Rent, &a.Available, &createdOn)
	if err != nil {
		return nil, err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	return a, nil
}

func (r *apartmentRepository) List(ctx context.Context, page, limit, minRent, maxRent int32) ([]domain.Apartment, int32, error) {
	// maxRent <= 0 means unbounded; a negative sentinel keeps one query shape.
	bound := maxRent
	if bound <= 0 {
		bound = -1
	}
	countQuery := `SELECT COUNT(*) FROM apartments WHERE available = true AND rent >= $1 AND ($2 < 0 OR rent <= $2)`
	logger.DatabaseCall("SELECT", "apartments count", "minRent", minRent, "maxRent", maxRent)
	var total int32
	if err := r.db.QueryRowContext(ctx, countQuery, minRent, bound).Scan(&total); err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := `SELECT id, floor_no, block_name, apartment_no, rent, available, created_on
	          FROM apartments
	          WHERE available = true AND rent >= $1 AND ($2 < 0 OR rent <= $2)
	          ORDER BY id
	          LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, minRent, bound, limit, offset)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, 0, err
	}
	defer rows.Close()

	var apartments []domain.Apartment
	for rows.Next() {
		var a domain.Apartment
		var createdOn time.Time
		if err := rows.Scan(&a.ID, &a.FloorNo, &a.BlockName, &a.ApartmentNo, &a.Rent, &a.Available, &createdOn); err != nil {
			return nil, 0, err
		}
		a.CreatedOn = createdOn.Format("2006-01-02")
		apartments = append(apartments, a)
	}
	logger.DatabaseResult("SELECT", int64(len(apartments)), rows.Err(), "total", total)
	return apartments, total, rows.Err()
}

func (r *apartmentRepository) SetAvailability(ctx context.Context, id int32, available bool) error {
	query := `UPDATE apartments SET available=$1 WHERE id=$2`
	_, err := r.db.ExecContext(ctx, query, available, id)
	return err
}

func (r *apartmentRepository) Count(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM apartments`).Scan(&count)
	return count, err
}

func (r *apartmentRepository) CountAvailable(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM apartments WHERE available = true`).Scan(&count)
	return count, err
}

func (r *apartmentRepository) ListOrphanedUnavailable(ctx context.Context) ([]int32, error) {
	query := `SELECT a.id FROM apartments a
	          WHERE a.available = false
	            AND NOT EXISTS (SELECT 1 FROM agreements g WHERE g.apartment_id = a.id)`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
