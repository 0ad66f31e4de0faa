package store

import (
	"strings"
	"sync"
)

// emailIndex maps a normalized email address to the id of the record that
// owns it. It backs the duplicate check on every create and email-changing
// update, so neither has to scan the record map.
type emailIndex struct {
	m sync.Map // normalized email -> int64 id
}

// normalizeEmail lowercases an address for case-insensitive comparison.
func normalizeEmail(email string) string {
	return strings.ToLower(email)
}

// lookup returns the id owning the address, if any.
func (i *emailIndex) lookup(email string) (int64, bool) {
	v, ok := i.m.Load(normalizeEmail(email))
	if !ok {
		return 0, false
	}
	return v.(int64), true
}

// wouldCollide reports whether the address is owned by an id other than
// exclude. Pass 0 on create; assigned ids start at 1, so 0 excludes nobody.
// A non-zero exclude lets an update keep its own unchanged address.
func (i *emailIndex) wouldCollide(email string, exclude int64) bool {
	id, ok := i.lookup(email)
	return ok && id != exclude
}

// tryInsert claims the address for id. It reports false without touching
// the index when the address is already claimed, which makes it the
// deciding step when two writers race for the same address.
func (i *emailIndex) tryInsert(email string, id int64) bool {
	_, loaded := i.m.LoadOrStore(normalizeEmail(email), id)
	return !loaded
}

// remove releases the address. Releasing an unclaimed address is a no-op.
func (i *emailIndex) remove(email string) {
	i.m.Delete(normalizeEmail(email))
}

// len counts claimed addresses.
func (i *emailIndex) len() int {
	n := 0
	i.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
