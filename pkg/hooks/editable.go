package hooks

import "github.com/go-drift/statehooks/pkg/core"

// EditableStatus says whether an Editable follows its observed value.
type EditableStatus int

const (
	// StatusObserved means the tracked value follows the observed value.
	StatusObserved EditableStatus = iota
	// StatusEdited means the tracked value was set locally and no longer
	// follows the observed value until reset.
	StatusEdited
)

func (s EditableStatus) String() string {
	switch s {
	case StatusObserved:
		return "observed"
	case StatusEdited:
		return "edited"
	default:
		return "unknown"
	}
}

// EditableOptions configures an Editable.
type EditableOptions[T any] struct {
	// Equal overrides change detection on the observed value. Defaults to
	// Same.
	Equal func(a, b T) bool
}

// EditableHelpers is returned from Editable.Use alongside the value.
type EditableHelpers[T any] struct {
	// Status is the status at the time of the build.
	Status EditableStatus
	// Reset returns to StatusObserved keeping the current value.
	Reset func()
	// ResetWithValue returns to StatusObserved with value v.
	ResetWithValue func(v T)
}

// Editable tracks a value that mirrors an externally observed value until
// it is edited locally. Typical use is a form field pre-filled from server
// data: while the user has not typed, refreshed data flows in; once they
// have, it no longer overwrites their input.
type Editable[T any] struct {
	base *core.StateBase
	id   identity
	same func(a, b T) bool

	value  T
	status EditableStatus
	// observed is the observed value seen by the last commit.
	observed T
	seeded   bool
}

// NewEditable creates an Editable owned by host. The first call to Use
// seeds the tracked value.
func NewEditable[T any](host core.StateHost, opts EditableOptions[T]) *Editable[T] {
	return &Editable[T]{
		base: host.Base(),
		id:   newIdentity("editable"),
		same: equalOrSame(opts.Equal),
	}
}

// Use reads this build's observed value and returns the tracked value, its
// setter and the reset helpers.
func (e *Editable[T]) Use(observed T) (T, func(Update[T]), EditableHelpers[T]) {
	if !e.seeded {
		e.value = observed
		e.observed = observed
		e.seeded = true
	}
	e.base.OnCommit(func() {
		e.follow(observed)
	})
	return e.value, e.Set, EditableHelpers[T]{
		Status:         e.status,
		Reset:          e.Reset,
		ResetWithValue: e.ResetWithValue,
	}
}

// follow runs once per distinct observed value.
func (e *Editable[T]) follow(observed T) {
	if e.same(observed, e.observed) {
		return
	}
	e.observed = observed
	if e.status == StatusEdited {
		return
	}
	e.base.SetState(func() {
		e.value = observed
	})
}

// Value returns the tracked value.
func (e *Editable[T]) Value() T {
	return e.value
}

// Status returns the current status.
func (e *Editable[T]) Status() EditableStatus {
	return e.status
}

// Set applies u to the tracked value and marks it edited.
func (e *Editable[T]) Set(u Update[T]) {
	e.base.SetState(func() {
		e.value = u.Apply(e.value)
		e.transition(StatusEdited)
	})
}

// Reset marks the value observed again without changing it. Observed
// values arriving afterwards are followed.
func (e *Editable[T]) Reset() {
	e.base.SetState(func() {
		e.transition(StatusObserved)
	})
}

// ResetWithValue replaces the tracked value and marks it observed.
func (e *Editable[T]) ResetWithValue(v T) {
	e.base.SetState(func() {
		e.value = v
		e.transition(StatusObserved)
	})
}

func (e *Editable[T]) transition(to EditableStatus) {
	from := e.status
	e.status = to
	e.id.emitStatus(from, to)
}
