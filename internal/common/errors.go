// Package common — errors.go defines the sentinel errors shared across
// features. Handlers match on these to pick a user-facing reply instead
// of treating expected conditions as system faults.
package common

import "errors"

// ErrNoScores — a board or player lookup matched no rows. Handlers turn
// it into the friendly "nobody played yet" replies.
var ErrNoScores = errors.New("no scores recorded")
