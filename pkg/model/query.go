package model

type QueryKind string

const (
	QueryPID  QueryKind = "pid"
	QueryName QueryKind = "name"
)

// Query is what the user asked fdmonitor to inspect: either a literal PID or
// a process name to search for.
type Query struct {
	Kind  QueryKind
	Value string
}
