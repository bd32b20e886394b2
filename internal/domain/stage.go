package domain

import "fmt"

// Stage is the state a push has reached in the build pipeline
type Stage string

const (
	StagePending               Stage = "pending"
	StageFetching              Stage = "fetching"
	StageCheckedOut            Stage = "checked_out"
	StageAncestorResolved      Stage = "ancestor_resolved"
	StageDependenciesInstalled Stage = "dependencies_installed"
	StageBuilt                 Stage = "built"
	StageAnalyzed              Stage = "analyzed"
	StagePersisted             Stage = "persisted"
	StageProcessed             Stage = "processed"
)

// Step is a unit of work in the per-push pipeline
type Step string

const (
	StepFetch           Step = "fetch"
	StepCheckout        Step = "checkout"
	StepResolveAncestor Step = "resolve-ancestor"
	StepInstall         Step = "install"
	StepBuild           Step = "build"
	StepAnalyze         Step = "analyze"
	StepPersist         Step = "persist"
	StepCleanup         Step = "cleanup"
)

// Begins returns the stage entered when the step starts.
// Only fetch has an in-progress stage.
func (s Step) Begins() (Stage, bool) {
	if s == StepFetch {
		return StageFetching, true
	}
	return "", false
}

// Reaches returns the stage entered when the step completes.
// Fetch has already moved the push on start; cleanup does not move it at all.
func (s Step) Reaches() (Stage, bool) {
	switch s {
	case StepCheckout:
		return StageCheckedOut, true
	case StepResolveAncestor:
		return StageAncestorResolved, true
	case StepInstall:
		return StageDependenciesInstalled, true
	case StepBuild:
		return StageBuilt, true
	case StepAnalyze:
		return StageAnalyzed, true
	case StepPersist:
		return StagePersisted, true
	default:
		return "", false
	}
}

// transitions lists the forward edges of the push state machine.
// StageProcessed is reachable from every stage and handled separately.
var transitions = map[Stage][]Stage{
	StagePending:               {StageFetching},
	StageFetching:              {StageCheckedOut},
	StageCheckedOut:            {StageAncestorResolved, StageDependenciesInstalled},
	StageAncestorResolved:      {StageDependenciesInstalled},
	StageDependenciesInstalled: {StageBuilt},
	StageBuilt:                 {StageAnalyzed},
	StageAnalyzed:              {StagePersisted},
}

// Outcome is the terminal result of a push run
type Outcome string

const (
	OutcomeSucceeded   Outcome = "succeeded"
	OutcomeFailed      Outcome = "failed"
	OutcomeInterrupted Outcome = "interrupted"
)

// PushRun tracks one push through the pipeline
type PushRun struct {
	Failure       *PushFailure
	History       []Stage
	Push          Push
	Stage         Stage
	StatsRecorded int
}

// NewPushRun starts tracking a pending push
func NewPushRun(push Push) *PushRun {
	return &PushRun{
		History: []Stage{StagePending},
		Push:    push,
		Stage:   StagePending,
	}
}

// Advance moves the run to the given stage if the transition is allowed
func (r *PushRun) Advance(to Stage) error {
	if r.Stage == StageProcessed {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, r.Stage)
	}

	if to == StageProcessed {
		if r.Failure == nil && r.Stage != StagePersisted {
			return fmt.Errorf("%w: %s -> %s without failure", ErrInvalidTransition, r.Stage, to)
		}
		r.enter(to)
		return nil
	}

	if r.Failure != nil {
		return fmt.Errorf("%w: run failed at %s", ErrInvalidTransition, r.Failure.Stage)
	}

	for _, allowed := range transitions[r.Stage] {
		if allowed == to {
			r.enter(to)
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Stage, to)
}

// Begin enters the in-progress stage of the given step, if it has one
func (r *PushRun) Begin(step Step) error {
	to, ok := step.Begins()
	if !ok {
		return nil
	}
	return r.Advance(to)
}

// Complete advances the run to the stage reached by the given step
func (r *PushRun) Complete(step Step) error {
	to, ok := step.Reaches()
	if !ok {
		return nil
	}
	return r.Advance(to)
}

// Fail records a step failure and returns it as a StageError
func (r *PushRun) Fail(step Step, err error) error {
	r.Failure = &PushFailure{
		Reason: err.Error(),
		Stage:  r.Stage,
		Step:   step,
	}
	return &StageError{
		Err:   err,
		SHA:   r.Push.SHA,
		Stage: r.Stage,
		Step:  step,
	}
}

// Outcome returns the terminal outcome of the run
func (r *PushRun) Outcome() Outcome {
	if r.Failure != nil {
		return OutcomeFailed
	}
	return OutcomeSucceeded
}

func (r *PushRun) enter(stage Stage) {
	r.Stage = stage
	r.History = append(r.History, stage)
}
