// Package accounts provides the ordered, persisted collection of stored accounts.
package accounts

import (
	"github.com/flow-hydraulics/account-keeper/marks"
)

// Account struct represents a stored credential-like record.
// A nil Pass means no password is set. A nil Mark means the account has no
// marks at all, which is different from an empty list.
type Account struct {
	ID    string       `json:"id"`
	Type  string       `json:"type"`
	Login string       `json:"login"`
	Pass  *string      `json:"pass"`
	Mark  []marks.Mark `json:"mark"`
}

// Clone returns a deep copy of the account.
func (a Account) Clone() Account {
	c := a
	if a.Pass != nil {
		p := *a.Pass
		c.Pass = &p
	}
	if a.Mark != nil {
		c.Mark = make([]marks.Mark, len(a.Mark))
		copy(c.Mark, a.Mark)
	}
	return c
}

// snapshot is the persisted form of the collection, keyed the same way the
// collection is named.
type snapshot struct {
	Accounts []Account `json:"accounts"`
}
