// This file is part of Padbind.
//
// Padbind is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padbind is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padbind.  If not, see <https://www.gnu.org/licenses/>.

package notifications

import (
	"time"
)

// Notify is used for fire-and-forget communication from the input subsystem
// to whatever is presenting messages to the user (a HUD overlay, a terminal,
// etc). Implementations must not block.
type Notify interface {
	Notify(message string)
}

// how long a queued message remains pending before it expires
const messageDuration = 4 * time.Second

// Entry is a single queued message.
type Entry struct {
	Timestamp time.Time
	Message   string
}

// Queue is a simple implementation of the Notify interface. Messages are
// retained for a short duration and can be read back by the display layer.
//
// The Queue is not safe for concurrent use. Like the rest of the input
// subsystem it is expected to be used from a single thread.
type Queue struct {
	entries []Entry
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		entries: make([]Entry, 0, 10),
	}
}

// Notify implements the Notify interface.
func (q *Queue) Notify(message string) {
	q.entries = append(q.entries, Entry{
		Timestamp: time.Now(),
		Message:   message,
	})
}

// Pending returns the list of messages that have not yet expired. Expired
// messages are discarded as a side effect.
func (q *Queue) Pending() []Entry {
	for len(q.entries) > 0 && time.Since(q.entries[0].Timestamp) > messageDuration {
		q.entries = q.entries[1:]
	}
	return q.entries
}

// Drain returns all queued messages and empties the queue, regardless of the
// age of the messages.
func (q *Queue) Drain() []Entry {
	e := q.entries
	q.entries = nil
	return e
}
