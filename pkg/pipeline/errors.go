package pipeline

import "github.com/pkg/errors"

var (
	// ErrNoStages is returned by Run on a graph without stages.
	ErrNoStages = errors.New("pipeline: graph has no stages")

	// ErrInvalidStage is returned by AddStage for a stage missing its name,
	// input queue or ProcessFunc.
	ErrInvalidStage = errors.New("pipeline: invalid stage")
)
