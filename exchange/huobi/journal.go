package huobi

import (
	"time"
)

//
// Entry records the outcome of one completed request.
//
type Entry struct {
	ID       string
	Key      string
	Method   string
	Path     string
	Started  time.Time
	Duration time.Duration
	Err      error
}

//
// Succeeded returns whether or not the request resolved with usable data.
//
func (o Entry) Succeeded() bool {
	return o.Err == nil
}
