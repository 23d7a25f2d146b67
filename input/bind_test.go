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

package input

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/rgrieve/padbind/notifications"
	"github.com/rgrieve/padbind/test"
	"github.com/rgrieve/padbind/vbus"
)

func TestBindAndBound(t *testing.T) {
	h := newHarness(t)

	var pads [NumPorts]*Device
	for i := range pads {
		pads[i] = h.connectPad(t, i, "Test Pad", "guid", int32(i), false)
	}

	for i, d := range pads {
		h.inp.Bind(i, d, false)
	}

	for i, d := range pads {
		test.ExpectEquality(t, h.inp.Bound(i), d, "port", i)
		test.ExpectEquality(t, d.Port(), i)
	}
}

func TestBindPersists(t *testing.T) {
	h := newHarness(t)

	d := h.connectPad(t, 0, "Test Pad", "aaaa", 1, false)
	h.inp.Bind(0, d, true)

	// re-read the settings file to confirm the binding reached storage
	set, err := NewSettings(h.set.Path())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, set.Port(0), "aaaa")
	for i := 1; i < NumPorts; i++ {
		test.ExpectEquality(t, set.Port(i), "", "port", i)
	}
}

func TestUnbindPersists(t *testing.T) {
	h := newHarness(t)

	d := h.connectPad(t, 0, "Test Pad", "aaaa", 1, false)
	h.inp.Bind(0, d, true)

	// explicitly unbinding with save records the port as deliberately empty
	h.inp.Bind(0, nil, true)

	test.ExpectEquality(t, h.inp.Bound(0) == nil, true)
	test.ExpectEquality(t, d.Port(), Unbound)

	set, err := NewSettings(h.set.Path())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, set.Port(0), "")
}

func TestRehoming(t *testing.T) {
	h := newHarness(t)

	d := h.connectPad(t, 0, "Test Pad", "aaaa", 1, false)
	h.inp.Bind(0, d, true)

	// moving an already bound device releases the old port first and records
	// the release
	h.inp.Bind(2, d, true)

	test.ExpectEquality(t, h.inp.Bound(0) == nil, true)
	test.ExpectEquality(t, h.inp.Bound(2), d)
	test.ExpectEquality(t, d.Port(), 2)

	test.ExpectEquality(t, h.set.Port(0), "")
	test.ExpectEquality(t, h.set.Port(2), "aaaa")
}

func TestRebindSamePort(t *testing.T) {
	h := newHarness(t)

	d := h.connectPad(t, 0, "Test Pad", "aaaa", 1, false)
	h.inp.Bind(1, d, true)
	h.inp.Bind(1, d, true)

	test.ExpectEquality(t, h.inp.Bound(1), d)
	test.ExpectEquality(t, d.Port(), 1)
	test.ExpectEquality(t, h.set.Port(1), "aaaa")
}

func TestBindReplacesOccupant(t *testing.T) {
	h := newHarness(t)

	a := h.connectPad(t, 0, "Pad A", "aaaa", 1, false)
	b := h.connectPad(t, 1, "Pad B", "bbbb", 2, false)

	h.inp.Bind(0, a, true)
	h.inp.Bind(0, b, true)

	test.ExpectEquality(t, h.inp.Bound(0), b)
	test.ExpectEquality(t, a.Port(), Unbound)
	test.ExpectEquality(t, b.Port(), 0)
	test.ExpectEquality(t, h.set.Port(0), "bbbb")
}

func TestDisconnectKeepsPersistedIdentity(t *testing.T) {
	h := newHarness(t)

	d := h.connectPad(t, 0, "Test Pad", "G1", 1, false)
	h.inp.Bind(1, d, true)

	// disconnecting unbinds the port but does not touch the persisted mapping
	h.inp.HandleDeviceRemoved(1)

	test.ExpectEquality(t, h.inp.Bound(1) == nil, true)
	test.ExpectEquality(t, h.set.Port(1), "G1")

	p := h.q.Drain()
	test.ExpectEquality(t, p[len(p)-1].Message, "Port 2 disconnected")

	// reconnecting the same controller restores the binding
	d = h.connectPad(t, 0, "Test Pad", "G1", 2, false)
	test.ExpectEquality(t, h.inp.Bound(1), d)
	test.ExpectEquality(t, d.Port(), 1)

	p = h.q.Drain()
	test.ExpectEquality(t, p[len(p)-1].Message, "Connected 'Test Pad' to port 2")
}

func TestDuplicateIdentities(t *testing.T) {
	h := newHarness(t)

	// a wireless receiver reports the same GUID for every controller behind
	// it. each connection should settle on the next free port persisting the
	// identity
	h.set.SetPort(0, "dup")
	h.set.SetPort(3, "dup")
	test.ExpectSuccess(t, h.set.Save())

	a := h.connectPad(t, 0, "Pad A", "dup", 1, false)
	b := h.connectPad(t, 1, "Pad B", "dup", 2, false)

	test.ExpectEquality(t, h.inp.Bound(0), a)
	test.ExpectEquality(t, h.inp.Bound(3), b)

	// a third controller with the same identity finds no free port
	c := h.connectPad(t, 2, "Pad C", "dup", 3, false)
	test.ExpectEquality(t, c.Port(), Unbound)
}

func TestDefaultBindPort(t *testing.T) {
	h := newHarness(t)

	h.set.SetPort(1, "aaaa")
	h.set.SetPort(3, "aaaa")

	d := h.connectPad(t, 0, "Test Pad", "aaaa", 1, false)

	// the connection itself has consumed port 1
	test.ExpectEquality(t, d.Port(), 1)

	test.ExpectEquality(t, h.inp.DefaultBindPort(d, 0), 1)
	test.ExpectEquality(t, h.inp.DefaultBindPort(d, 2), 3)

	e := h.connectPad(t, 1, "Other Pad", "eeee", 2, false)
	test.ExpectEquality(t, h.inp.DefaultBindPort(e, 0), -1)
}

func TestPhysicalPortMapping(t *testing.T) {
	h := newHarness(t)

	// the logical port order does not match the socket numbering on the hub
	expectedSocket := [NumPorts]int{3, 4, 1, 2}

	for i := 0; i < NumPorts; i++ {
		d := h.connectPad(t, i, "Test Pad", "guid", int32(i), false)
		h.inp.Bind(i, d, false)
		test.ExpectInequality(t, h.hub.Plugged(expectedSocket[i]), "", "logical port", i)
	}
}

func TestBindBadPort(t *testing.T) {
	h := newHarness(t)

	defer expectPanic(t)
	h.inp.Bind(NumPorts, nil, false)
}

// a vbus.Bus implementation that can be set up to refuse plug or unplug
// operations
type flakyBus struct {
	plugErr   error
	unplugErr error
}

type stubPeripheral string

func (p stubPeripheral) ID() string {
	return string(p)
}

func (b *flakyBus) Plug(desc vbus.Descriptor) (vbus.Peripheral, error) {
	if b.plugErr != nil {
		return nil, b.plugErr
	}
	return stubPeripheral(desc.ID), nil
}

func (b *flakyBus) Unplug(p vbus.Peripheral) error {
	return b.unplugErr
}

func expectPanic(t *testing.T) {
	t.Helper()
	if recover() == nil {
		t.Errorf("expected panic")
	}
}

func flakyBusInput(t *testing.T, bus vbus.Bus) (*Input, *Device) {
	t.Helper()

	set, err := NewSettings(filepath.Join(t.TempDir(), "settings.ini"))
	if err != nil {
		t.Fatalf("error preparing settings: %v", err)
	}

	inp := NewInput(&fakeSystem{}, make(fakeKeyboard), bus, set, notifications.NewQueue())

	d := &Device{
		Type:     GamepadDevice,
		Name:     "Test Pad",
		guid:     "aaaa",
		effectID: noEffect,
		bound:    Unbound,
	}
	return inp, d
}

func TestPlugFailurePanics(t *testing.T) {
	inp, d := flakyBusInput(t, &flakyBus{plugErr: errors.New("bus fault")})

	defer expectPanic(t)
	inp.Bind(0, d, false)
}

func TestUnplugFailurePanics(t *testing.T) {
	bus := &flakyBus{}
	inp, d := flakyBusInput(t, bus)
	inp.Bind(0, d, false)

	bus.unplugErr = errors.New("bus fault")

	defer expectPanic(t)
	inp.Bind(0, nil, false)
}
