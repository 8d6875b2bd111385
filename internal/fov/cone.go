package fov

import (
	"fmt"

	"github.com/Ko-stant/hex-fov-engine/internal/geometry"
)

// RiseRun is an exact slope carried along with a cone.
type RiseRun struct {
	Rise int `json:"rise"`
	Run  int `json:"run"`
}

func (r RiseRun) GreaterThan(o RiseRun) bool {
	return r.Rise*o.Run > o.Rise*r.Run
}

func (r RiseRun) String() string {
	return fmt.Sprintf("%d/%d", r.Rise, r.Run)
}

// Cone is the span between Bottom and Top still to be scanned, starting at
// row Range. A cone is never changed after it is built.
type Cone struct {
	Range   int                  `json:"range"`
	Top     geometry.IntVector2D `json:"top"`
	Bottom  geometry.IntVector2D `json:"bottom"`
	RiseRun RiseRun              `json:"riseRun"`
}

func (c Cone) String() string {
	return fmt.Sprintf("Cone{range:%d top:%s bottom:%s riseRun:%s}", c.Range, c.Top, c.Bottom, c.RiseRun)
}

func (c Cone) Degenerate() bool {
	return geometry.LessOrEqual(c.Top, c.Bottom)
}

// Validate checks the dodecant precondition on both bounds and rejects
// degenerate cones.
func (c Cone) Validate() error {
	if c.Range < 0 {
		return fmt.Errorf("%s: negative range", c)
	}
	if err := geometry.CheckDodecant(c.Top, c.Bottom); err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	if c.Degenerate() {
		return fmt.Errorf("%s: degenerate", c)
	}
	return nil
}

// Sink receives each cone produced by Enqueue. It runs synchronously.
type Sink func(Cone)

// Code tags the site that split a cone. It only shows up in traces.
type Code int

const (
	CodeBlocked Code = iota + 1
	CodeRowEnd
)

func (c Code) String() string {
	switch c {
	case CodeBlocked:
		return "blocked"
	case CodeRowEnd:
		return "row-end"
	default:
		return fmt.Sprintf("code-%d", int(c))
	}
}

// Tracer receives the diagnostic cone trace.
type Tracer interface {
	Printf(format string, v ...interface{})
}

// Enqueue closes the span from top down to bottom at row rng. A non-degenerate
// span goes to sink as a cone one row further out and bottom is returned.
// A degenerate span is dropped and top is returned.
func Enqueue(sink Sink, rng int, top, bottom geometry.IntVector2D, riseRun RiseRun, code Code) geometry.IntVector2D {
	return enqueue(nil, sink, rng, top, bottom, riseRun, code)
}

func enqueue(tracer Tracer, sink Sink, rng int, top, bottom geometry.IntVector2D, riseRun RiseRun, code Code) geometry.IntVector2D {
	if geometry.GreaterThan(top, bottom) {
		cone := Cone{Range: rng + 1, Top: top, Bottom: bottom, RiseRun: riseRun}
		if tracer != nil {
			tracer.Printf("fov: EQ %s code: %s", cone, code)
		}
		sink(cone)
		return bottom
	}
	return top
}

// Queue is a FIFO of cones owned by the caller of the sweep.
type Queue struct {
	items []Cone
	head  int
}

func (q *Queue) Push(c Cone) {
	q.items = append(q.items, c)
}

func (q *Queue) Pop() (Cone, bool) {
	if q.head >= len(q.items) {
		return Cone{}, false
	}
	c := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return c, true
}

func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Sink returns a Sink that pushes onto q.
func (q *Queue) Sink() Sink {
	return q.Push
}
