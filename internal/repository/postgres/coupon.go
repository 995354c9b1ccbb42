package postgres

import (
	"context"
	"database/sql"
	"time"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/repository"
)

type couponRepository struct {
	db *sql.DB
}

func NewCouponRepository(db *sql.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, c *domain.Coupon) error {
	query := `INSERT INTO coupons (code, discount, description, created_by, expires_on, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	c.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, c.Code, c.Discount, c.Description, c.CreatedBy, c.ExpiresOn, c.CreatedOn).Scan(&c.ID)
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	c := &domain.Coupon{}
	query := `SELECT id, code, discount, COALESCE(description, ''), COALESCE(created_by, ''), expires_on, created_on FROM coupons WHERE code = $1`
	var expiresOn sql.NullTime
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, code).Scan(&c.ID, &c.Code, &c.Discount, &c.Description, &c.CreatedBy, &expiresOn, &createdOn)
	if err != nil {
		return nil, err
	}
	if expiresOn.Valid {
		dateStr := expiresOn.Time.Format("2006-01-02")
		c.ExpiresOn = &dateStr
	}
	c.CreatedOn = createdOn.Format("2006-01-02")
	return c, nil
}

func (r *couponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	query := `SELECT id, code, discount, COALESCE(description, ''), COALESCE(created_by, ''), expires_on, created_on FROM coupons ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		var c domain.Coupon
		var expiresOn sql.NullTime
		var createdOn time.Time
		if err := rows.Scan(&c.ID, &c.Code, &c.Discount, &c.Description, &c.CreatedBy, &expiresOn, &createdOn); err != nil {
			return nil, err
		}
		if expiresOn.Valid {
			dateStr := expiresOn.Time.Format("2006-01-02")
			c.ExpiresOn = &dateStr
		}
		c.CreatedOn = createdOn.Format("2006-01-02")
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}
