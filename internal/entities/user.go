package entities

import "errors"

type Role string

const (
	RoleMaster   Role = "MASTER"
	RoleStore    Role = "STORE"
	RoleDelivery Role = "DELIVERY"
	RoleClient   Role = "CLIENT"
)

// User carries the collaborator-read slice of the accounts table: role and
// ownership checks, store colony for fee calculation, and the running rating
// the review aggregator maintains.
type User struct {
	ID        string
	Role      Role
	FirstName string
	LastName  string

	// Store-specific fields, zero for other roles.
	StoreName     string
	StoreColonyID string
	AverageRating float64
	RatingCount   int
}

func (u User) DisplayName() string {
	if u.Role == RoleStore && u.StoreName != "" {
		return u.StoreName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreNotFound is returned when the referenced account exists but does
	// not carry the STORE role.
	ErrStoreNotFound = errors.New("store not found")
)
