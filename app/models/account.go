package models

// Credentials is the body of the register and login requests.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate checks that both fields are present.
func (c *Credentials) Validate() error {
	return validate.Struct(c)
}

// Validate checks the stored shape of an account.
func (a *Account) Validate() error {
	return validate.Struct(a)
}

// Ref returns the public projection of the account.
func (a *Account) Ref() *AuthorRef {
	if a == nil {
		return nil
	}
	return &AuthorRef{ID: a.ID, Username: a.Username}
}
