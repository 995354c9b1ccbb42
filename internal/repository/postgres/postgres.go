package postgres

import (
	"database/sql"

	"apnrghor-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ApartmentRepository
	repository.AgreementRepository
	repository.CouponRepository
	repository.PaymentRepository
	repository.AnnouncementRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		ApartmentRepository:    NewApartmentRepository(db),
		AgreementRepository:    NewAgreementRepository(db),
		CouponRepository:       NewCouponRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
	}
}
