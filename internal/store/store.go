package store

import (
	"context"

	"gorm.io/gorm"
)

// Store is the access context over the finance schema. It exposes a typed
// collection per entity; every operation scopes itself to the caller's
// context, so one Store is safely shared across requests while isolation
// stays with the database engine.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() *Users               { return &Users{db: s.db} }
func (s *Store) CreditCards() *CreditCards   { return &CreditCards{db: s.db} }
func (s *Store) Transactions() *Transactions { return &Transactions{db: s.db} }
func (s *Store) Categories() *Categories     { return &Categories{db: s.db} }
func (s *Store) Rewards() *Rewards           { return &Rewards{db: s.db} }

// Ping verifies the underlying connection, for health checks.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
