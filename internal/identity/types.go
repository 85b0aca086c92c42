// Package identity adapts the identity service's user directory. Every
// call carries a bearer token supplied by an injected credential provider.
package identity

import "encoding/json"

// UserAddress is one postal address on a user profile.
type UserAddress struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	Primary    bool   `json:"primary"`
}

// UserRole is a role grant; permissions are passed through opaquely.
type UserRole struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Permissions []json.RawMessage `json:"permissions,omitempty"`
}

// User as returned by the identity service.
type User struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"`
	Email       string        `json:"email"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	DOB         string        `json:"dob,omitempty"`
	PhoneNumber string        `json:"phoneNumber,omitempty"`
	Points      int           `json:"points"`
	Roles       []UserRole    `json:"roles,omitempty"`
	Addresses   []UserAddress `json:"addresses,omitempty"`
	CreatedAt   string        `json:"createdAt,omitempty"`
	UpdatedAt   string        `json:"updatedAt,omitempty"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u User) IsAdmin() bool {
	for _, r := range u.Roles {
		if r.Name == "ADMIN" {
			return true
		}
	}
	return false
}

// MembershipLevel derives the loyalty tier shown in the customer list.
func (u User) MembershipLevel() string {
	switch {
	case u.IsAdmin():
		return "Platinum"
	case u.Points > 1000:
		return "Gold"
	case u.Points > 500:
		return "Silver"
	default:
		return "Bronze"
	}
}

// FullName joins the first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
