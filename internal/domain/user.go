package domain

import "time"

// UserType classifies an account (e.g. "Standard", "Premium").
type UserType struct {
	ID   uint   `json:"ID"`
	Name string `json:"Name"`
}

// UserProfile is the identity and profile record of the logged-in user.
// It is owned exclusively by the session store; other components read it
// through the session state and request mutations through the store.
type UserProfile struct {
	ID           uint       `json:"ID"`
	FirstName    string     `json:"FirstName"`
	LastName     string     `json:"LastName"`
	EmailAddress string     `json:"EmailAddress"`
	DateOfBirth  *time.Time `json:"DataOfBirth,omitempty"`
	CreatedAt    time.Time  `json:"CreatedAt"`
	LastLogin    *time.Time `json:"LastLogin,omitempty"`
	IsActive     bool       `json:"IsActive"`
	UserType     *UserType  `json:"UserType,omitempty"`
}

// FullName returns the user's display name.
func (p UserProfile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// AuthStatus is the payload of the authenticated-context probe. The profile
// fields are flattened into the top level of the response alongside the
// authenticated flag.
type AuthStatus struct {
	Authenticated bool `json:"authenticated"`
	UserProfile
}

// ProfileUpdate carries the fields a user may change about themselves.
type ProfileUpdate struct {
	UserID      uint   `json:"userId"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
}
