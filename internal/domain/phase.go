package domain

// Phase identifies a stage in the operation lifecycle
type Phase string

const (
	PhaseLoading            Phase = "loading"
	PhaseSetup              Phase = "setup"
	PhasePicking            Phase = "picking"
	PhaseAwaitingResolution Phase = "awaiting-resolution"
	PhaseReadyToComplete    Phase = "ready-to-complete"
	PhaseCompleting         Phase = "completing"
	PhaseCompleted          Phase = "completed"
	PhaseAborted            Phase = "aborted"
)

// phaseTransitions lists the forward edges of the lifecycle. Aborted is
// reachable from every non-terminal phase and is handled in ValidTransition.
var phaseTransitions = map[Phase][]Phase{
	PhaseLoading:            {PhaseSetup},
	PhaseSetup:              {PhasePicking},
	PhasePicking:            {PhaseAwaitingResolution, PhaseReadyToComplete},
	PhaseAwaitingResolution: {PhasePicking, PhaseReadyToComplete},
	PhaseReadyToComplete:    {PhaseCompleting},
	PhaseCompleting:         {PhaseCompleted},
}

// Valid reports whether p is a known phase
func (p Phase) Valid() bool {
	switch p {
	case PhaseLoading, PhaseSetup, PhasePicking, PhaseAwaitingResolution,
		PhaseReadyToComplete, PhaseCompleting, PhaseCompleted, PhaseAborted:
		return true
	}
	return false
}

// Terminal reports whether p is a final phase
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseAborted
}

// CanAbort reports whether an operation in phase p may still be aborted
func (p Phase) CanAbort() bool {
	return p.Valid() && !p.Terminal()
}

// ValidTransition reports whether moving from one phase to another is allowed
func ValidTransition(from, to Phase) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if to == PhaseAborted {
		return from.CanAbort()
	}
	for _, next := range phaseTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
