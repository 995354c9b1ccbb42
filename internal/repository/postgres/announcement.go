package postgres

import (
	"context"
	"database/sql"
	"time"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/repository"
)

type announcementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) repository.AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	query := `INSERT INTO announcements (title, description, created_by, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	a.CreatedOn = time.Now().Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, a.Title, a.Description, a.CreatedBy, a.CreatedOn).Scan(&a.ID)
}

func (r *announcementRepository) List(ctx context.Context) ([]domain.Announcement, error) {
	query := `SELECT id, title, description, COALESCE(created_by, ''), created_on FROM announcements ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		var createdOn time.Time
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.CreatedBy, &createdOn); err != nil {
			return nil, err
		}
		a.CreatedOn = createdOn.Format("2006-01-02")
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
