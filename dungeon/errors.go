package dungeon

import (
	"errors"
	"fmt"
)

// Sentinel errors for dungeon generation.
var (
	// ErrInvalidConfig indicates bad parameters or a degenerate room size.
	// It is reported by New before any stage runs.
	ErrInvalidConfig = errors.New("dungeon: invalid configuration")
	// ErrPlacement indicates the planner could not place every room.
	ErrPlacement = errors.New("dungeon: room placement failed")
	// ErrInvariant indicates an internal invariant was broken. It always
	// points at a bug, never at bad input.
	ErrInvariant = errors.New("dungeon: invariant violated")
	// ErrUnknownRoom indicates a coordinate that holds no room.
	ErrUnknownRoom = errors.New("dungeon: no room at coordinate")
)

// Stage names one step of the generation pipeline.
type Stage string

// Pipeline stages in execution order.
const (
	StagePlan     Stage = "plan"
	StageCarve    Stage = "carve"
	StageCorridor Stage = "corridor"
	StageBridge   Stage = "bridge"
	StageWalls    Stage = "walls"
	StageContour  Stage = "contour"
	StageNavMesh  Stage = "navmesh"
)

// StageError reports the stage that failed. Err wraps one of the package
// sentinels, so errors.Is works on a *StageError directly.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("dungeon: %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage Stage, sentinel, cause error) error {
	if cause == nil {
		return &StageError{Stage: stage, Err: sentinel}
	}
	return &StageError{Stage: stage, Err: fmt.Errorf("%w: %w", sentinel, cause)}
}

var (
	errDisconnected = errors.New("room graph is not connected")
	errOverlap      = errors.New("floor and wall cells overlap")
)
