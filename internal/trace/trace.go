package trace

import (
	"fmt"
	"strings"
	"time"
)

// Tracer receives driver events. Implementations must be safe for
// concurrent Emit calls.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	// Close flushes and releases the output.
	Close() error
	Level() Level
	// Enabled is Level() > LevelOff.
	Enabled() bool
}

// Level controls how much of the scope tree is recorded.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // reserved for crash dumps, nothing is streamed
	LevelPhase        // driver + pass boundaries
	LevelDetail       // plus per-file events
	LevelDebug        // everything including tokens
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts the names printed by String in any case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// deepestScope is the finest scope each level lets through; 0 blocks all.
var deepestScope = [...]Scope{
	LevelOff:    0,
	LevelError:  0,
	LevelPhase:  ScopePass,
	LevelDetail: ScopeFile,
	LevelDebug:  ScopeToken,
}

// ShouldEmit reports whether events of scope pass this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(deepestScope) {
		return false
	}
	return scope != 0 && scope <= deepestScope[l]
}

// Kind tells span boundaries from instant events.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat // liveness signal, ignores the level gate
)

var kindNames = [...]string{"unknown", "begin", "end", "point", "heartbeat"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[0]
}

// Scope is the granularity of an event; smaller is coarser.
type Scope uint8

const (
	// ScopeDriver covers a whole CLI command.
	ScopeDriver Scope = iota + 1
	// ScopePass covers one pass over one file (load, lex, cache).
	ScopePass
	// ScopeFile marks per-file bookkeeping inside a directory run.
	ScopeFile
	ScopeToken
)

var scopeNames = [...]string{"unknown", "driver", "pass", "file", "token"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return scopeNames[0]
}

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // assigned by the sink, monotonic per process
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	GID      uint64 // goroutine that emitted the event
	Name     string // "lex", "tokenize-dir", ...
	Detail   string
	Extra    map[string]string
}
