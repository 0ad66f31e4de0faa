// Package store implements the concurrent in-memory user directory: a
// record map keyed by id composed with an email uniqueness index. Every
// mutating operation leaves the pair consistent, so at any observable
// instant each stored record's normalized email maps back to its own id
// and no two records share an address.
package store

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/techhive/userdir/internal/model"
	"github.com/techhive/userdir/internal/validation"
)

// Store holds user records and their email uniqueness index. Both maps
// support atomic single-key operations and no lock spans the two, so the
// mutating operations order their steps to keep the pair consistent: the
// index is written before the record on create, and the new address is
// claimed before the old one is released on an email-changing update.
type Store struct {
	users  sync.Map // int64 id -> model.User
	emails emailIndex
	nextID atomic.Int64
}

// New creates an empty Store whose first assigned id is startID.
func New(startID int64) *Store {
	s := &Store{}
	s.nextID.Store(startID - 1)
	return s
}

// Get returns the record stored at id.
func (s *Store) Get(id int64) (model.User, error) {
	v, ok := s.users.Load(id)
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return v.(model.User), nil
}

// List returns the stored records ordered by id. The enumeration is weakly
// consistent: each returned entry was present at some point during the
// call, and concurrent writers are safe.
func (s *Store) List() []model.StoredUser {
	out := make([]model.StoredUser, 0)
	s.users.Range(func(k, v any) bool {
		out = append(out, model.StoredUser{ID: k.(int64), User: v.(model.User)})
		return true
	})
	slices.SortFunc(out, func(a, b model.StoredUser) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Create validates the candidate, claims its email and stores it under the
// next id. The email is claimed before the record is written: two racing
// creates for the same address both pass the pre-check, but only the one
// that wins tryInsert writes a record. An id allocated for the loser is
// skipped for good; the allocator never rolls back.
func (s *Store) Create(u model.User) (int64, error) {
	if err := validation.User(u); err != nil {
		return 0, err
	}
	if s.emails.wouldCollide(u.Email, 0) {
		return 0, model.ErrDuplicateEmail
	}
	id := s.nextID.Add(1)
	if !s.emails.tryInsert(u.Email, id) {
		return 0, model.ErrDuplicateEmail
	}
	if _, bound := s.users.LoadOrStore(id, u); bound {
		// The id was already bound to a record, which the allocator is
		// supposed to make impossible. Release the email before reporting
		// failure so the index never points at a foreign record.
		s.emails.remove(u.Email)
		return 0, model.ErrStoreFailed
	}
	return id, nil
}

// Update replaces the record at id with the candidate. When the normalized
// email is unchanged the index is not touched at all. When it changes, the
// new address is claimed before the old one is released, and losing the
// claim to a concurrent writer is reported as a duplicate.
func (s *Store) Update(id int64, u model.User) (model.User, error) {
	if err := validation.User(u); err != nil {
		return model.User{}, err
	}
	current, err := s.Get(id)
	if err != nil {
		return model.User{}, err
	}
	if normalizeEmail(u.Email) != normalizeEmail(current.Email) {
		if s.emails.wouldCollide(u.Email, id) {
			return model.User{}, model.ErrDuplicateEmail
		}
		if !s.emails.tryInsert(u.Email, id) {
			return model.User{}, model.ErrDuplicateEmail
		}
		s.emails.remove(current.Email)
	}
	s.users.Store(id, u)
	return u, nil
}

// Delete removes the record at id together with its index entry. The email
// used for the index removal is taken from the removed record itself.
func (s *Store) Delete(id int64) error {
	v, ok := s.users.LoadAndDelete(id)
	if !ok {
		return model.ErrNotFound
	}
	s.emails.remove(v.(model.User).Email)
	return nil
}

// Len counts stored records.
func (s *Store) Len() int {
	n := 0
	s.users.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
