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

package notifications_test

import (
	"testing"

	"github.com/rgrieve/padbind/notifications"
	"github.com/rgrieve/padbind/test"
)

func TestQueue(t *testing.T) {
	q := notifications.NewQueue()
	test.ExpectEquality(t, len(q.Pending()), 0)

	q.Notify("first message")
	q.Notify("second message")

	p := q.Pending()
	test.ExpectEquality(t, len(p), 2)
	test.ExpectEquality(t, p[0].Message, "first message")
	test.ExpectEquality(t, p[1].Message, "second message")

	// draining empties the queue
	d := q.Drain()
	test.ExpectEquality(t, len(d), 2)
	test.ExpectEquality(t, len(q.Pending()), 0)
}
