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

package prefs

// Notifier is a single-slot signal. Send() never blocks: if a signal is
// already pending the new one is folded into it, which for a signal that
// carries no data is the same as replacing it. Poll() never blocks either.
//
// A Notifier is meant for one consumer. The consumer sees at most one pending
// signal no matter how many times Send() was called since the previous Poll().
type Notifier struct {
	ch chan struct{}
}

// NewNotifier is the preferred method of initialisation for the Notifier type.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

// Send a change signal.
func (n *Notifier) Send() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Poll returns true if a signal was pending. The signal is consumed.
func (n *Notifier) Poll() bool {
	select {
	case <-n.ch:
		return true
	default:
		return false
	}
}

// C returns the underlying channel for use in a select statement.
func (n *Notifier) C() <-chan struct{} {
	return n.ch
}
