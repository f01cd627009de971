package reset

import (
	"time"

	"github.com/joeldevian/myday-rutinas/internal/logger"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

// Evaluate is the core boundary test: a reset is due exactly when the current
// period identifier differs from the stored marker. A missing marker (empty
// string) never equals a real identifier, so it conservatively forces a
// reset evaluation rather than silently skipping one.
func Evaluate(nowMarker, storedMarker string) bool {
	return nowMarker != storedMarker
}

// Engine binds one period function to its persisted marker. Checking never
// mutates; the caller commits the new marker after its reset work succeeded,
// which is what makes re-checking within the same period a no-op.
type Engine struct {
	store     storage.Provider
	markerKey string // already user-scoped
	period    PeriodFunc
}

func NewEngine(store storage.Provider, userID, markerBase string, period PeriodFunc) *Engine {
	return &Engine{
		store:     store,
		markerKey: storage.UserKey(markerBase, userID),
		period:    period,
	}
}

// Check compares the identifier for now against the stored marker. It returns
// whether the boundary was crossed, the current identifier, and the outgoing
// marker ("" when none was stored). Marker read failures are logged and read
// as "no marker".
func (e *Engine) Check(now time.Time) (crossed bool, current, outgoing string) {
	current = e.period(now)
	if e.markerKey == "" {
		// No user: treat as inert, nothing to reset.
		return false, current, ""
	}
	var stored string
	if _, err := e.store.Get(e.markerKey, &stored); err != nil {
		logger.Error("failed to read period marker", "key", e.markerKey, "error", err)
		stored = ""
	}
	return Evaluate(current, stored), current, stored
}

// Commit persists the identifier as the processed marker for the new period.
func (e *Engine) Commit(marker string) {
	if e.markerKey == "" {
		return
	}
	if err := e.store.Put(e.markerKey, marker); err != nil {
		logger.Error("write skipped", "key", e.markerKey, "error", err)
	}
}
