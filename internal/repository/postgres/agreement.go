package postgres

import (
	"context"
	"database/sql"
	"time"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/repository"
)

type agreementRepository struct {
	db *sql.DB
}

func NewAgreementRepository(db *sql.DB) repository.AgreementRepository {
	return &agreementRepository{db: db}
}

const agreementColumns = `id, name, email, apartment_id, floor_no, block_name, apartment_no, rent, status, created_on`

func (r *agreementRepository) Create(ctx context.Context, g *domain.Agreement) error {
	query := `INSERT INTO agreements (name, email, apartment_id, floor_no, block_name, apartment_no, rent, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	g.CreatedOn = time.Now().Format("2006-01-02")
	if g.Status == "" {
		g.Status = domain.AgreementStatusPending
	}
	return r.db.QueryRowContext(ctx, query, g.Name, g.Email, g.ApartmentID, g.FloorNo, g.BlockName, g.ApartmentNo, g.Rent, g.Status, g.CreatedOn).Scan(&g.ID)
}

func (r *agreementRepository) GetByID(ctx context.Context, id int32) (*domain.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *agreementRepository) GetByEmail(ctx context.Context, email string) (*domain.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *agreementRepository) GetCheckedByEmail(ctx context.Context, email string) (*domain.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE LOWER(email) = LOWER($1) AND status = $2`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email, domain.AgreementStatusChecked))
}

func (r *agreementRepository) scanOne(row *sql.Row) (*domain.Agreement, error) {
	g := &domain.Agreement{}
	var createdOn time.Time
	err := row.Scan(&g.ID, &g.Name, &g.Email, &g.ApartmentID, &g.FloorNo, &g.BlockName, &g.ApartmentNo, &g.Rent, &g.Status, &createdOn)
	if err != nil {
		return nil, err
	}
	g.CreatedOn = createdOn.Format("2006-01-02")
	return g, nil
}

func (r *agreementRepository) ListByStatus(ctx context.Context, status domain.AgreementStatus) ([]domain.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE status = $1`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agreements []domain.Agreement
	for rows.Next() {
		var g domain.Agreement
		var createdOn time.Time
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.ApartmentID, &g.FloorNo, &g.BlockName, &g.ApartmentNo, &g.Rent, &g.Status, &createdOn); err != nil {
			return nil, err
		}
		g.CreatedOn = createdOn.Format("2006-01-02")
		agreements = append(agreements, g)
	}
	return agreements, rows.Err()
}

func (r *agreementRepository) SetStatus(ctx context.Context, id int32, status domain.AgreementStatus) error {
	query := `UPDATE agreements SET status=$1 WHERE id=$2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *agreementRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM agreements WHERE id=$1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *agreementRepository) DeleteStaleChecked(ctx context.Context) (int64, error) {
	query := `DELETE FROM agreements g
	          WHERE g.status = $1
	            AND NOT EXISTS (
	                SELECT 1 FROM users u
	                WHERE LOWER(u.email) = LOWER(g.email) AND u.role = $2
	            )`
	res, err := r.db.ExecContext(ctx, query, domain.AgreementStatusChecked, domain.UserRoleMember)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
