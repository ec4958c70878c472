package driver

import "time"

// Stage describes what the driver is doing with a file.
type Stage string

const (
	StageLoad  Stage = "load"
	StageLex   Stage = "lex"
	StageCache Stage = "cache"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// ProgressEvent reports progress for a file (or for the whole run when File is empty).
type ProgressEvent struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Directory runs call OnEvent from
// worker goroutines.
type ProgressSink interface {
	OnEvent(ProgressEvent)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- ProgressEvent
}

func (s ChannelSink) OnEvent(evt ProgressEvent) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// ProgressFunc adapts a plain function to ProgressSink.
type ProgressFunc func(ProgressEvent)

func (f ProgressFunc) OnEvent(evt ProgressEvent) {
	if f != nil {
		f(evt)
	}
}

func emit(sink ProgressSink, evt ProgressEvent) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
