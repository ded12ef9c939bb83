// Package viewmodel holds the per-screen owners of fetched state and the
// operations that mutate it. Each view model is owned by exactly one active
// screen instance; nothing here is safe for concurrent use and nothing needs
// to be. Re-entry contract for list screens: entering the screen calls Load
// once, and returning to a previously shown list screen calls Load exactly
// once more; the list is always re-fetched whole, never merged.
package viewmodel

// Phase is the screen lifecycle state.
type Phase string

const (
	// PhaseLoading covers the initial state and any in-flight fetch.
	PhaseLoading Phase = "loading"
	// PhaseReady means data is present and no error is pending.
	PhaseReady Phase = "ready"
	// PhaseError means the last fetch failed; data is stale or empty.
	PhaseError Phase = "error"
	// PhaseSubmitting is the form sub-state while a write is in flight.
	PhaseSubmitting Phase = "submitting"
)
