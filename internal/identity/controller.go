package identity

import (
	"shopadmin/internal/list"
)

// ControllerOptions tune the customer list controller.
type ControllerOptions struct {
	PageSize   int
	GuardStale bool
}

// NewController builds the customer list controller. An empty page is a
// neutral state here (unlike products); a response that is not the
// identity {code, result} shape is an error. The phone number matches by
// raw substring, everything else case-insensitively.
func NewController(svc *Service, opts ControllerOptions) *list.Controller[User] {
	size := opts.PageSize
	if size <= 0 {
		size = 10
	}
	return list.New(list.Config[User]{
		Name:     "customers",
		PageSize: size,
		Fetch:    svc.List,
		Delete:   svc.Delete,
		ID:       func(u User) string { return u.ID },
		SearchFields: func(u User) []string {
			return []string{u.FirstName, u.LastName, u.Email, u.Username}
		},
		RawSearchFields: func(u User) []string {
			if u.PhoneNumber == "" {
				return nil
			}
			return []string{u.PhoneNumber}
		},
		Status:              func(u User) string { return u.MembershipLevel() },
		CreatedAt:           func(u User) string { return u.CreatedAt },
		Normalize:           NormalizeUsers,
		EmptyPolicy:         list.EmptyNeutral,
		UnrecognizedIsError: true,
		GuardStale:          opts.GuardStale,
	})
}
