package model

import "time"

// FdTable is one raw snapshot of a process's descriptor table: the valid
// observations in enumeration order plus the entries that could not be read.
type FdTable struct {
	Records   []Descriptor
	Anomalies []string
}

// Report is the output of one complete enumerate-group pass. It is rebuilt
// from scratch on every refresh; nothing is carried between passes.
type Report struct {
	PID     int       `json:"PID"`
	Command string    `json:"Command"`
	TakenAt time.Time `json:"TakenAt"`

	Groups    []Group  `json:"Groups"`
	Anomalies []string `json:"Anomalies,omitempty"`

	// Descriptors is the number of raw table entries the pass saw,
	// including the skipped enumeration artifact.
	Descriptors int `json:"Descriptors"`
}
