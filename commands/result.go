// This file is part of Golem.
//
// Golem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Golem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Golem.  If not, see <https://www.gnu.org/licenses/>.

package commands

import "fmt"

// Outcome of a command.
type Outcome int

// List of valid Outcome values.
const (
	OutcomeOk Outcome = iota
	OutcomeFailed
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOk:
		return "ok"
	case OutcomeFailed:
		return "failed"
	case OutcomeQuit:
		return "quit"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result is returned by ShortcutCommand.Execute(). Message is the error
// message for the OutcomeFailed outcome. For other outcomes it is optional
// information.
type Result struct {
	Outcome Outcome
	Message string
}

// Ok is a successful Result.
func Ok(message string) Result {
	return Result{Outcome: OutcomeOk, Message: message}
}

// Failed is an unsuccessful Result with a formatted message.
func Failed(format string, args ...any) Result {
	return Result{Outcome: OutcomeFailed, Message: fmt.Sprintf(format, args...)}
}

// Quit is the Result that stops the execution loop.
func Quit() Result {
	return Result{Outcome: OutcomeQuit}
}

func (r Result) String() string {
	if r.Message == "" {
		return r.Outcome.String()
	}
	return fmt.Sprintf("%s: %s", r.Outcome, r.Message)
}
