package postgres

import (
	"context"
	"database/sql"
	"time"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (name, email, agreement_id, amount, month, year, coupon, discount, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	p.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, p.Name, p.Email, p.AgreementID, p.Amount, p.Month, p.Year, p.Coupon, p.Discount, p.CreatedOn).Scan(&p.ID)
}

func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	// Month names do not sort lexically; the service layer reorders
	// by year then calendar month.
	query := `SELECT id, name, email, agreement_id, amount, month, year, COALESCE(coupon, ''), discount, created_on
	          FROM payments WHERE LOWER(email) = LOWER($1)`
	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var createdOn time.Time
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.AgreementID, &p.Amount, &p.Month, &p.Year, &p.Coupon, &p.Discount, &createdOn); err != nil {
			return nil, err
		}
		p.CreatedOn = createdOn.Format("2006-01-02")
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) CouponUsedBy(ctx context.Context, email, code string) (bool, error) {
	query := `SELECT COUNT(*) FROM payments WHERE LOWER(email) = LOWER($1) AND coupon = $2`
	var count int32
	if err := r.db.QueryRowContext(ctx, query, email, code).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
