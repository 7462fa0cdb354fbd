package controllers

import (
	"net/http"

	"boardapp/app/apperrors"
	"boardapp/app/models"
	"boardapp/app/services"
)

// AccountController handles registration, login and account removal
type AccountController struct {
	accountService *services.AccountService
}

// NewAccountController creates a new AccountController
func NewAccountController(accountService *services.AccountService) *AccountController {
	return &AccountController{accountService: accountService}
}

// Register creates an account. Duplicate usernames answer 500.
func (ac *AccountController) Register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		sendError(w, "Registration failed", err, http.StatusBadRequest)
		return
	}

	account, err := ac.accountService.Register(creds)
	if err != nil {
		sendError(w, "Registration failed", err, statusFor(err, []errorStatus{
			{apperrors.ErrValidation, http.StatusBadRequest},
		}))
		return
	}

	sendJSON(w, http.StatusCreated, messageResponse{Message: "Registration successful", ID: account.ID})
}

// Login exchanges credentials for a bearer token
func (ac *AccountController) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		sendError(w, "Login failed", err, http.StatusBadRequest)
		return
	}

	token, err := ac.accountService.Login(creds)
	if err != nil {
		sendError(w, "Login failed", err, statusFor(err, []errorStatus{
			{apperrors.ErrValidation, http.StatusBadRequest},
			{apperrors.ErrNotFound, http.StatusBadRequest},
			{apperrors.ErrBadCredential, http.StatusBadRequest},
		}))
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Delete removes the authenticated account and its posts
func (ac *AccountController) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := subject(w, r)
	if !ok {
		return
	}

	if err := ac.accountService.Delete(accountID); err != nil {
		sendError(w, "Failed to delete account", err, statusFor(err, []errorStatus{
			{apperrors.ErrNotFound, http.StatusNotFound},
		}))
		return
	}

	sendJSON(w, http.StatusOK, messageResponse{Message: "Account deleted"})
}
