// Package authstate persists the client's authentication record between
// process runs. The record is stored as a small JSON document wrapped in a
// versioned envelope so that incompatible layouts written by older builds
// are discarded rather than misread.
package authstate

import "github.com/dmitrijs2005/admingate/internal/models"

// Version is the current envelope schema version. Envelopes with any other
// version are treated as empty state.
const Version = 1

// Record is the authentication state the client keeps on disk: the signed-in
// user and the opaque token issued at sign-in. Both fields are set together
// or not at all.
type Record struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Authenticated reports whether the record holds a signed-in user.
func (r Record) Authenticated() bool {
	return r.User != nil
}

// normalize enforces the pairing invariant between user and token: a record
// missing either half is reduced to the empty record.
func (r Record) normalize() Record {
	if r.User == nil || r.Token == "" {
		return Record{}
	}
	return r
}

type envelope struct {
	State   Record `json:"state"`
	Version int    `json:"version"`
}
