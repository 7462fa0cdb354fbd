package services

import (
	"errors"
	"fmt"
	"log"

	"boardapp/app/apperrors"
	"boardapp/app/auth"
	"boardapp/app/models"
	"boardapp/app/repositories"
)

// TokenIssuer mints bearer tokens for an account id.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// AccountService handles registration, login and account removal
type AccountService struct {
	accountRepo repositories.AccountRepository
	postRepo    repositories.PostRepository
	hasher      auth.PasswordHasher
	tokens      TokenIssuer
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo repositories.AccountRepository, postRepo repositories.PostRepository,
	hasher auth.PasswordHasher, tokens TokenIssuer) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		postRepo:    postRepo,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// Register creates an account with a hashed password. A taken username fails
// with apperrors.ErrConflict.
func (s *AccountService) Register(creds models.Credentials) (*models.Account, error) {
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	digest, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Username:     creds.Username,
		PasswordHash: digest,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// Login checks the credentials and returns a freshly issued token.
func (s *AccountService) Login(creds models.Credentials) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	account, err := s.accountRepo.GetByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: no account named %q", apperrors.ErrNotFound, creds.Username)
		}
		return "", err
	}

	if !s.hasher.Verify(creds.Password, account.PasswordHash) {
		return "", fmt.Errorf("%w: password does not match", apperrors.ErrBadCredential)
	}

	return s.tokens.Issue(account.ID)
}

// Delete removes the account and every post it authored. Comments written by
// the account, and comments on its posts, are kept.
func (s *AccountService) Delete(accountID string) error {
	if err := s.accountRepo.Delete(accountID); err != nil {
		return err
	}

	deleted, err := s.postRepo.DeleteByAuthor(accountID)
	if err != nil {
		return fmt.Errorf("failed to delete posts of account %s: %w", accountID, err)
	}
	log.Printf("Deleted account %s and %d post(s)", accountID, deleted)
	return nil
}
