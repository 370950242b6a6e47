package orders

import (
	"fmt"
	"strings"
)

type User struct {
	ID    uint32
	Name  string
	Email string
}

// HasValidEmail is the shape check applied to a user before accepting an order.
func (u *User) HasValidEmail() bool {
	return strings.Contains(u.Email, "@")
}

// Registry maps user ids to users. It is filled once by NewRegistry and only
// read afterwards.
type Registry struct {
	users map[uint32]*User
}

func NewRegistry(users ...User) (*Registry, error) {
	r := &Registry{users: make(map[uint32]*User, len(users))}
	for i := range users {
		u := users[i]
		if _, exists := r.users[u.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateUser, u.ID)
		}
		r.users[u.ID] = &u
	}
	return r, nil
}

// Find returns the user stored under id, or false if there is none.
func (r *Registry) Find(id uint32) (*User, bool) {
	u, ok := r.users[id]
	return u, ok
}

// EmailOr returns the email of user id, or fallback when the user is unknown.
func (r *Registry) EmailOr(id uint32, fallback string) string {
	if u, ok := r.Find(id); ok {
		return u.Email
	}
	return fallback
}

func (r *Registry) Len() int {
	return len(r.users)
}
