package lox

import (
	"time"
)

/////////////////// build in function

// -------- clock ----------------------------------------------------------------------
func NewClock() LoxCallable {
	return &Clock{now: time.Now}
}

// Clock returns seconds since the Unix epoch.
type Clock struct {
	now func() time.Time
}

func (this *Clock) Arity() int {
	return 0
}

func (this *Clock) Call(interpreter *Interpreter, arguments []interface{}) (interface{}, error) {
	return float64(this.now().UnixNano()) / float64(time.Second), nil
}

func (this *Clock) String() string {
	return "<native fn>"
}
