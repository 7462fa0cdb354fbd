package repositories

import (
	"errors"
	"fmt"

	"boardapp/app/apperrors"
	"boardapp/app/models"

	"github.com/dgraph-io/badger/v4"
)

// accountRecord is the stored form of an account. It differs from
// models.Account only in that it serializes the password digest.
type accountRecord struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

func toAccountRecord(a *models.Account) accountRecord {
	return accountRecord{ID: a.ID, Username: a.Username, PasswordHash: a.PasswordHash}
}

func (r accountRecord) model() *models.Account {
	return &models.Account{ID: r.ID, Username: r.Username, PasswordHash: r.PasswordHash}
}

// BadgerAccountRepository implements AccountRepository using BadgerDB.
// Usernames are indexed under their own key so uniqueness is checked in the
// same transaction that writes the account.
type BadgerAccountRepository struct {
	db *badger.DB
}

// NewBadgerAccountRepository creates a new BadgerAccountRepository
func NewBadgerAccountRepository(db *badger.DB) *BadgerAccountRepository {
	return &BadgerAccountRepository{db: db}
}

// Create stores a new account and assigns its ID. It fails with
// apperrors.ErrConflict when the username is taken.
func (r *BadgerAccountRepository) Create(account *models.Account) error {
	id, err := newID()
	if err != nil {
		return err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(usernameKey(account.Username))
		if err == nil {
			return fmt.Errorf("%w: username %q already exists", apperrors.ErrConflict, account.Username)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		record := toAccountRecord(account)
		record.ID = id
		if err := record.model().Validate(); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		data, err := marshalEntity(record)
		if err != nil {
			return err
		}

		if err := txn.Set(accountKey(id), data); err != nil {
			return err
		}
		return txn.Set(usernameKey(account.Username), []byte(id))
	})
	if err != nil {
		return err
	}

	account.ID = id
	return nil
}

// GetByID retrieves an account by ID
func (r *BadgerAccountRepository) GetByID(id string) (*models.Account, error) {
	var account *models.Account
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		account, err = getAccount(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetByUsername retrieves an account through the username index
func (r *BadgerAccountRepository) GetByUsername(username string) (*models.Account, error) {
	var account *models.Account
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		account, err = getAccount(txn, string(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes an account and its username index entry
func (r *BadgerAccountRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		account, err := getAccount(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(usernameKey(account.Username)); err != nil {
			return err
		}
		return txn.Delete(accountKey(id))
	})
}

func getAccount(txn *badger.Txn, id string) (*models.Account, error) {
	item, err := txn.Get(accountKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var record accountRecord
	err = item.Value(func(val []byte) error {
		return unmarshalEntity(val, &record)
	})
	if err != nil {
		return nil, err
	}
	return record.model(), nil
}
