package domain

import (
	"context"
	"time"
)

// StageName identifies one pipeline phase for observability purposes.
type StageName string

const (
	StageNormalize           StageName = "normalize"
	StageDecideClarification StageName = "decide_clarification"
	StageMergeClarification  StageName = "merge_clarification"
	StageSynthesize          StageName = "synthesize"
)

// StageEvent describes the start or end of a pipeline stage.
type StageEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Stage     StageName     `json:"stage"`
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability. All hooks are
// optional; a zero value disables them.
type LifecycleHooks struct {
	OnStageStart func(context.Context, *StageEvent)
	OnStageEnd   func(context.Context, *StageEvent)
}
