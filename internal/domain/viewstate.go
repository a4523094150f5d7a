package domain

// ViewState is the single visible state of the results surface. Exactly one
// state is active at any time; activating one deactivates the rest.
type ViewState string

const (
	ViewIdle    ViewState = "idle"
	ViewLoading ViewState = "loading"
	ViewResults ViewState = "results"
	ViewEmpty   ViewState = "empty"
	ViewError   ViewState = "error"
)

// Valid reports whether s is one of the known view states.
func (s ViewState) Valid() bool {
	switch s {
	case ViewIdle, ViewLoading, ViewResults, ViewEmpty, ViewError:
		return true
	}
	return false
}
