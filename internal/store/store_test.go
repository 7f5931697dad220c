package store

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/santoshmanaguli/finpay-dashboard/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// StoreTestSuite runs every test against a fresh in-memory database with
// foreign key enforcement on, so cascade and set-null rules behave as they
// would on PostgreSQL.
type StoreTestSuite struct {
	suite.Suite
	db    *gorm.DB
	store *Store
	ctx   context.Context
}

func (s *StoreTestSuite) SetupTest() {
	db, err := gorm.Open(
		sqlite.Open("file::memory:?_pragma=foreign_keys(1)"),
		&gorm.Config{TranslateError: true},
	)
	require.NoError(s.T(), err, "failed to open test database")
	require.NoError(s.T(), Migrate(db))

	s.db = db
	s.store = New(db)
	s.ctx = context.Background()
}

func (s *StoreTestSuite) TearDownTest() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (s *StoreTestSuite) newUser(email string) *models.User {
	u := &models.User{Email: email, FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(s.T(), s.store.Users().Create(s.ctx, u))
	return u
}

func (s *StoreTestSuite) newCard(userID string) *models.CreditCard {
	c := &models.CreditCard{
		UserID:             userID,
		CardNumberLastFour: "4242",
		CardHolderName:     "Ada Lovelace",
		ExpiryDate:         time.Now().AddDate(3, 0, 0),
		CardType:           "Visa",
		CreditLimit:        decimal.RequireFromString("5000.00"),
		AvailableBalance:   decimal.RequireFromString("4250.50"),
		CurrentBalance:     decimal.RequireFromString("749.50"),
		IsActive:           true,
	}
	require.NoError(s.T(), s.store.CreditCards().Create(s.ctx, c))
	return c
}

func (s *StoreTestSuite) newTransaction(cardID string, categoryID *string) *models.Transaction {
	t := &models.Transaction{
		CardID:          cardID,
		Amount:          decimal.RequireFromString("42.17"),
		Description:     "Coffee",
		CategoryID:      categoryID,
		MerchantName:    "Blue Bottle",
		TransactionDate: time.Now(),
	}
	require.NoError(s.T(), s.store.Transactions().Create(s.ctx, t))
	return t
}

func (s *StoreTestSuite) TestCreateUserAssignsID() {
	u := s.newUser("ada@example.com")
	assert.NotEmpty(s.T(), u.ID)
	assert.False(s.T(), u.CreatedAt.IsZero())
}

func (s *StoreTestSuite) TestDuplicateEmailIsConflict() {
	s.newUser("ada@example.com")

	dup := &models.User{Email: "ada@example.com", FirstName: "Grace", LastName: "Hopper"}
	err := s.store.Users().Create(s.ctx, dup)
	require.Error(s.T(), err)

	var conflict *ConflictError
	require.ErrorAs(s.T(), err, &conflict)
	assert.Equal(s.T(), "email", conflict.Field)

	// A differing email is fine.
	other := &models.User{Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"}
	assert.NoError(s.T(), s.store.Users().Create(s.ctx, other))
}

func (s *StoreTestSuite) TestGetMissingUserIsNotFound() {
	_, err := s.store.Users().Get(s.ctx, "no-such-id")
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *StoreTestSuite) TestUserDeleteCascades() {
	u := s.newUser("ada@example.com")
	card := s.newCard(u.ID)
	tx := s.newTransaction(card.ID, nil)

	reward := &models.Reward{
		UserID:        u.ID,
		TransactionID: &tx.ID,
		PointsEarned:  42,
		RewardType:    models.RewardPurchase,
	}
	require.NoError(s.T(), s.store.Rewards().Create(s.ctx, reward))

	require.NoError(s.T(), s.store.Users().Delete(s.ctx, u.ID))

	_, err := s.store.CreditCards().Get(s.ctx, card.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound, "card should cascade with its user")
	_, err = s.store.Transactions().Get(s.ctx, tx.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound, "transaction should cascade with its card")
	_, err = s.store.Rewards().Get(s.ctx, reward.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound, "reward should cascade with its user")
}

func (s *StoreTestSuite) TestCardDeleteCascadesTransactions() {
	u := s.newUser("ada@example.com")
	card := s.newCard(u.ID)
	tx := s.newTransaction(card.ID, nil)

	require.NoError(s.T(), s.store.CreditCards().Delete(s.ctx, card.ID))

	_, err := s.store.Transactions().Get(s.ctx, tx.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)

	// Owner untouched.
	_, err = s.store.Users().Get(s.ctx, u.ID)
	assert.NoError(s.T(), err)
}

func (s *StoreTestSuite) TestCategoryDeleteDetachesTransactions() {
	u := s.newUser("ada@example.com")
	card := s.newCard(u.ID)

	cat := &models.Category{Name: "Coffee Shops", Color: "#112233", IsActive: true}
	require.NoError(s.T(), s.store.Categories().Create(s.ctx, cat))

	tx := s.newTransaction(card.ID, &cat.ID)

	require.NoError(s.T(), s.store.Categories().Delete(s.ctx, cat.ID))

	got, err := s.store.Transactions().Get(s.ctx, tx.ID)
	require.NoError(s.T(), err, "transaction must survive category deletion")
	assert.Nil(s.T(), got.CategoryID, "category reference should be nulled")
}

func (s *StoreTestSuite) TestTransactionDeleteNullifiesRewardLink() {
	u := s.newUser("ada@example.com")
	card := s.newCard(u.ID)
	tx := s.newTransaction(card.ID, nil)

	reward := &models.Reward{
		UserID:        u.ID,
		TransactionID: &tx.ID,
		PointsEarned:  100,
		RewardType:    models.RewardBonus,
	}
	require.NoError(s.T(), s.store.Rewards().Create(s.ctx, reward))

	require.NoError(s.T(), s.store.Transactions().Delete(s.ctx, tx.ID))

	got, err := s.store.Rewards().Get(s.ctx, reward.ID)
	require.NoError(s.T(), err, "reward must outlive its transaction")
	assert.Nil(s.T(), got.TransactionID)
	assert.Equal(s.T(), 100, got.PointsEarned)
}

func (s *StoreTestSuite) TestTransactionWithUnknownCardRejected() {
	tx := &models.Transaction{
		CardID:      "no-such-card",
		Amount:      decimal.RequireFromString("10.00"),
		Description: "orphan",
	}
	err := s.store.Transactions().Create(s.ctx, tx)
	require.Error(s.T(), err)

	var ref *ReferenceError
	assert.ErrorAs(s.T(), err, &ref)
}

func (s *StoreTestSuite) TestMoneyBoundaryRoundTrips() {
	u := s.newUser("ada@example.com")
	card := s.newCard(u.ID)

	// 16 integer digits + 2 fractional: the decimal(18,2) boundary.
	boundary := decimal.RequireFromString("12345678901234.56")
	tx := &models.Transaction{
		CardID:      card.ID,
		Amount:      boundary,
		Description: "boundary",
	}
	require.NoError(s.T(), s.store.Transactions().Create(s.ctx, tx))

	got, err := s.store.Transactions().Get(s.ctx, tx.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), got.Amount.Equal(boundary),
		"expected %s, got %s", boundary, got.Amount)
}

func (s *StoreTestSuite) TestMoneyOutOfRangeRejected() {
	u := s.newUser("ada@example.com")
	card := s.newCard(u.ID)

	tx := &models.Transaction{
		CardID:      card.ID,
		Amount:      decimal.RequireFromString("12345678901234567.89"),
		Description: "too big",
	}
	err := s.store.Transactions().Create(s.ctx, tx)

	var fieldErr *models.FieldError
	require.ErrorAs(s.T(), err, &fieldErr)
	assert.Equal(s.T(), "amount", fieldErr.Field)
}

func (s *StoreTestSuite) TestMoneyExcessScaleRejected() {
	u := s.newUser("ada@example.com")
	card := s.newCard(u.ID)

	tx := &models.Transaction{
		CardID:      card.ID,
		Amount:      decimal.RequireFromString("10.555"),
		Description: "three decimals",
	}
	err := s.store.Transactions().Create(s.ctx, tx)

	var fieldErr *models.FieldError
	require.ErrorAs(s.T(), err, &fieldErr)
	assert.Equal(s.T(), "amount", fieldErr.Field)
}

func (s *StoreTestSuite) TestOverlongFieldRejectedBeforePersistence() {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	u := &models.User{Email: string(long), FirstName: "Ada", LastName: "Lovelace"}
	err := s.store.Users().Create(s.ctx, u)

	var fieldErr *models.FieldError
	require.ErrorAs(s.T(), err, &fieldErr)
	assert.Equal(s.T(), "email", fieldErr.Field)

	var count int64
	require.NoError(s.T(), s.db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(s.T(), count, "nothing should have been persisted")
}

func (s *StoreTestSuite) TestUpdateTouchesUpdatedAt() {
	u := s.newUser("ada@example.com")
	created := u.UpdatedAt

	time.Sleep(50 * time.Millisecond)

	u.FirstName = "Augusta"
	require.NoError(s.T(), s.store.Users().Update(s.ctx, u))

	got, err := s.store.Users().Get(s.ctx, u.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Augusta", got.FirstName)
	assert.True(s.T(), got.UpdatedAt.After(created), "UpdatedAt should be refreshed on update")
}

func (s *StoreTestSuite) TestListByUserScopesRows() {
	u1 := s.newUser("ada@example.com")
	u2 := s.newUser("grace@example.com")
	s.newCard(u1.ID)
	s.newCard(u1.ID)
	s.newCard(u2.ID)

	cards, err := s.store.CreditCards().ListByUser(s.ctx, u1.ID)
	require.NoError(s.T(), err)
	assert.Len(s.T(), cards, 2)

	cards, err = s.store.CreditCards().ListByUser(s.ctx, "nobody")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), cards)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
