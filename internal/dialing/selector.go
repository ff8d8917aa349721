package dialing

import (
	"sort"

	"github.com/sgfroerer/swift-dialer-nexus/internal/entity"
)

// SelectNext picks the pending contact that should be called next. Candidates
// are ordered by ascending call count; at equal call counts a contact that
// has never been called comes before one that has, and among previously
// called contacts the oldest last-called wins. The sort is stable, so ties
// beyond that fall back to the order contacts were supplied in, keeping the
// selection deterministic for an unchanged contact set.
//
// The second return value is false when no pending contact exists. An empty
// queue is a normal terminal condition for a session, not an error.
func SelectNext(contacts []entity.Contact) (entity.Contact, bool) {
	var pending []entity.Contact
	for _, c := range contacts {
		if c.Status == entity.StatusPending {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		return entity.Contact{}, false
	}

	sort.SliceStable(pending, func(i, j int) bool {
		a, b := pending[i], pending[j]
		if a.CallCount != b.CallCount {
			return a.CallCount < b.CallCount
		}
		switch {
		case a.LastCalled == nil && b.LastCalled == nil:
			return false
		case a.LastCalled == nil:
			return true
		case b.LastCalled == nil:
			return false
		default:
			return a.LastCalled.Before(*b.LastCalled)
		}
	})

	return pending[0], true
}
