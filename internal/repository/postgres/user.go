package postgres

import (
	"context"
	"database/sql"
	"time"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, name, photo_url, photo_id, role, apartment_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	u.CreatedOn = time.Now().Format("2006-01-02")
	if u.Role == "" {
		u.Role = domain.UserRoleUser
	}
	return r.db.QueryRowContext(ctx, query, u.Email, u.Name, u.PhotoURL, u.PhotoID, u.Role, u.ApartmentID, u.CreatedOn).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT id, email, name, COALESCE(photo_url, ''), COALESCE(photo_id, ''), role, apartment_id, created_on FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, name, COALESCE(photo_url, ''), COALESCE(photo_id, ''), role, apartment_id, created_on FROM users WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var apartmentID sql.NullInt32
	var createdOn time.Time
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.PhotoID, &u.Role, &apartmentID, &createdOn)
	if err != nil {
		return nil, err
	}
	if apartmentID.Valid {
		id := apartmentID.Int32
		u.ApartmentID = &id
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) SetRole(ctx context.Context, userID int32, role domain.UserRole, apartmentID *int32) error {
	query := `UPDATE users SET role=$1, apartment_id=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, role, apartmentID, userID)
	return err
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	query := `SELECT id, email, name, COALESCE(photo_url, ''), COALESCE(photo_id, ''), role, apartment_id, created_on FROM users WHERE role = $1`
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var apartmentID sql.NullInt32
		var createdOn time.Time
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.PhotoID, &u.Role, &apartmentID, &createdOn); err != nil {
			return nil, err
		}
		if apartmentID.Valid {
			id := apartmentID.Int32
			u.ApartmentID = &id
		}
		u.CreatedOn = createdOn.Format("2006-01-02")
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) CountByRole(ctx context.Context, role domain.UserRole) (int32, error) {
	query := `SELECT COUNT(*) FROM users WHERE role = $1`
	var count int32
	err := r.db.QueryRowContext(ctx, query, role).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
