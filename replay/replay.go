// Package replay steps back and forth through a recorded Prim history.
//
// A Controller holds the replay state explicitly: the current step index and
// an exit flag. Whatever delivers user input (a terminal UI, a test, a
// script) translates it into Commands and calls Apply; the controller knows
// nothing about how commands are received or how steps are drawn.
package replay

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/primstep/prim_kruskal"
)

// Command is a discrete replay instruction.
type Command int

const (
	// Next advances one step (clamped at the last step).
	Next Command = iota
	// Prev goes back one step (clamped at the first step).
	Prev
	// Quit ends the replay.
	Quit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case Next:
		return "next"
	case Prev:
		return "prev"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// KeyCommand maps a key name to a Command: right/d → Next, left/a → Prev,
// q/ctrl+c → Quit. Unknown keys report false.
func KeyCommand(key string) (Command, bool) {
	switch strings.ToLower(key) {
	case "right", "d":
		return Next, true
	case "left", "a":
		return Prev, true
	case "q", "ctrl+c":
		return Quit, true
	default:
		return 0, false
	}
}

// Controller is the replay state over an immutable slice of steps.
// It is not safe for concurrent use.
type Controller struct {
	steps  []prim_kruskal.Step
	index  int
	exited bool
}

// New returns a controller positioned on the first step.
func New(steps []prim_kruskal.Step) *Controller {
	return &Controller{steps: steps}
}

// Apply executes cmd and reports whether the visible state changed
// (index moved or the replay exited). Commands after Quit are ignored.
func (c *Controller) Apply(cmd Command) bool {
	if c.exited {
		return false
	}
	switch cmd {
	case Next:
		if c.index < len(c.steps)-1 {
			c.index++
			return true
		}
	case Prev:
		if c.index > 0 {
			c.index--
			return true
		}
	case Quit:
		c.exited = true
		return true
	}

	return false
}

// Index returns the zero-based current step.
func (c *Controller) Index() int { return c.index }

// Len returns the number of steps.
func (c *Controller) Len() int { return len(c.steps) }

// Exited reports whether Quit was applied.
func (c *Controller) Exited() bool { return c.exited }

// AtEnd reports whether the current step is the last one.
func (c *Controller) AtEnd() bool { return c.index >= len(c.steps)-1 }

// Current returns the current step; false when there are no steps.
func (c *Controller) Current() (prim_kruskal.Step, bool) {
	if len(c.steps) == 0 {
		return prim_kruskal.Step{}, false
	}

	return c.steps[c.index], true
}

// Caption describes the current step (see Describe); empty without steps.
func (c *Controller) Caption() string {
	st, ok := c.Current()
	if !ok {
		return ""
	}

	return Describe(st, c.index, len(c.steps))
}
