package recorder

import "ZombieFighters/internal/model"

// NoopRecorder is used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordEvent(_ *Event) error             { return nil }
func (n *NoopRecorder) RecordSnapshot(_ *model.Snapshot) error { return nil }
func (n *NoopRecorder) RecentEvents(_ int) ([]Event, error)    { return nil, nil }
func (n *NoopRecorder) Close() error                           { return nil }
