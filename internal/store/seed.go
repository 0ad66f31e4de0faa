package store

import (
	"fmt"

	"github.com/techhive/userdir/internal/model"
)

// Seed fills the store with count deterministic test users. Seeding goes
// through the regular create path, so the allocator ends up consistent
// with the seeded id range. Even-numbered users are admins.
func (s *Store) Seed(count int) error {
	for i := 1; i <= count; i++ {
		role := model.RoleUser
		if i%2 == 0 {
			role = model.RoleAdmin
		}
		u := model.User{
			FirstName: fmt.Sprintf("testFirstName%d", i),
			LastName:  fmt.Sprintf("testLastName%d", i),
			Email:     fmt.Sprintf("testEmail%d@example.com", i),
			Role:      role,
		}
		if _, err := s.Create(u); err != nil {
			return fmt.Errorf("failed to seed user %d: %w", i, err)
		}
	}
	return nil
}
