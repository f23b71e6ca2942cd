package gateway

import "time"

// Row is one ordered result row, keyed by output column name.
type Row map[string]string

// Response is the result of a successfully executed command.
type Response struct {
	Rows          []Row
	Screen        string
	Elapsed       time.Duration
	CorrelationID string
}

// CommandOptions are per-call overrides for RunCommand. The zero value uses
// the gateway default timeout and a generated correlation id.
type CommandOptions struct {
	TimeoutMS     int64
	CorrelationID string
}
