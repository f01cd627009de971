// Package repo implements the entity repositories. Every mutation follows a
// snapshot-replace discipline: load the collection, build a new value, persist
// it whole. Stored records are never mutated in place.
package repo

import (
	"errors"

	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/logger"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

// ErrNoUser is returned by mutators when no user is signed in. Reads treat
// the collections as absent and return empty values instead.
var ErrNoUser = errors.New("no user signed in")

type base struct {
	store  storage.Provider
	userID string
	clock  clockwork.Clock
}

func (b base) signedIn() bool { return b.userID != "" }

func (b base) key(name string) string { return storage.UserKey(name, b.userID) }

// put persists a collection value. Write failures are logged and the write is
// skipped; they never block the caller.
func (b base) put(name string, v any) {
	if err := b.store.Put(b.key(name), v); err != nil {
		logger.Error("write skipped", "key", name, "error", err)
	}
}
