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
	"time"

	"github.com/rgrieve/padbind/notifications"
	"github.com/rgrieve/padbind/test"
	"github.com/rgrieve/padbind/vbus"
)

// a controllable time source so that tests can step over the minimum update
// interval precisely
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	return c.t
}

func (c *testClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type fakeKeyboard map[Key]bool

func (k fakeKeyboard) Pressed(key Key) bool {
	return k[key]
}

type fakeHaptic struct {
	newCt      int
	updateCt   int
	runCt      int
	lastEffect Effect
	closed     bool
}

func (h *fakeHaptic) NewEffect(e Effect) (int, error) {
	h.newCt++
	h.lastEffect = e
	return 1, nil
}

func (h *fakeHaptic) UpdateEffect(id int, e Effect) error {
	h.updateCt++
	h.lastEffect = e
	return nil
}

func (h *fakeHaptic) RunEffect(id int) error {
	h.runCt++
	return nil
}

func (h *fakeHaptic) Close() {
	h.closed = true
}

type fakeController struct {
	name     string
	guid     string
	instance int32
	buttons  map[GamepadButton]bool
	axes     map[GamepadAxis]int16
	haptic   *fakeHaptic
	closed   bool
}

func (c *fakeController) Name() string {
	return c.name
}

func (c *fakeController) GUID() string {
	return c.guid
}

func (c *fakeController) InstanceID() int32 {
	return c.instance
}

func (c *fakeController) Button(b GamepadButton) bool {
	return c.buttons[b]
}

func (c *fakeController) Axis(a GamepadAxis) int16 {
	return c.axes[a]
}

func (c *fakeController) Haptic() Haptic {
	if c.haptic == nil {
		return nil
	}
	return c.haptic
}

func (c *fakeController) Close() {
	c.closed = true
}

type fakeSystem struct {
	controllers map[int]*fakeController
}

func (s *fakeSystem) OpenController(deviceIndex int) (Controller, error) {
	c, ok := s.controllers[deviceIndex]
	if !ok {
		return nil, errors.New("device is not a game controller")
	}
	return c, nil
}

// harness gathers an Input instance and all of its collaborators
type harness struct {
	inp *Input
	sys *fakeSystem
	kbd fakeKeyboard
	hub *vbus.Hub
	set *Settings
	q   *notifications.Queue
	clk *testClock
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	set, err := NewSettings(filepath.Join(t.TempDir(), "settings.ini"))
	if err != nil {
		t.Fatalf("error preparing settings: %v", err)
	}

	h := &harness{
		sys: &fakeSystem{controllers: make(map[int]*fakeController)},
		kbd: make(fakeKeyboard),
		hub: vbus.NewHub(),
		set: set,
		q:   notifications.NewQueue(),
		clk: &testClock{t: time.Now()},
	}

	h.inp = NewInput(h.sys, h.kbd, h.hub, h.set, h.q)
	h.inp.now = h.clk.now

	return h
}

// connect a fake controller and return the resulting Device
func (h *harness) connectPad(t *testing.T, deviceIndex int, name string, guid string, instance int32, haptic bool) *Device {
	t.Helper()

	c := &fakeController{
		name:     name,
		guid:     guid,
		instance: instance,
		buttons:  make(map[GamepadButton]bool),
		axes:     make(map[GamepadAxis]int16),
	}
	if haptic {
		c.haptic = &fakeHaptic{}
	}
	h.sys.controllers[deviceIndex] = c

	before := len(h.inp.Devices())
	h.inp.HandleDeviceAdded(deviceIndex)

	devices := h.inp.Devices()
	if len(devices) != before+1 {
		t.Fatalf("controller %s was not added to the device list", name)
	}
	return devices[len(devices)-1]
}

func (h *harness) keyboardDevice() *Device {
	return h.inp.Devices()[0]
}

func TestKeyboardAlwaysFirst(t *testing.T) {
	h := newHarness(t)

	devices := h.inp.Devices()
	test.ExpectEquality(t, len(devices), 1)
	test.ExpectEquality(t, devices[0].Type, KeyboardDevice)
	test.ExpectEquality(t, devices[0].Identity(), "keyboard")
	test.ExpectEquality(t, devices[0].Port(), Unbound)

	// a fresh settings file has no persisted bindings so the keyboard is not
	// auto-bound
	for p := 0; p < NumPorts; p++ {
		test.ExpectEquality(t, h.inp.Bound(p) == nil, true, "port", p)
	}
}

func TestKeyboardAutoBind(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.ini")

	// persist the keyboard at port 2 and save
	set, err := NewSettings(fn)
	test.ExpectSuccess(t, err)
	set.SetPort(1, "keyboard")
	err = set.Save()
	test.ExpectSuccess(t, err)

	// a new subsystem reading the same settings should auto-bind the
	// keyboard on initialisation
	set, err = NewSettings(fn)
	test.ExpectSuccess(t, err)

	q := notifications.NewQueue()
	inp := NewInput(&fakeSystem{}, make(fakeKeyboard), vbus.NewHub(), set, q)

	kbd := inp.Devices()[0]
	test.ExpectEquality(t, kbd.Port(), 1)
	test.ExpectEquality(t, inp.Bound(1) == kbd, true)

	p := q.Pending()
	test.ExpectEquality(t, len(p), 1)
	test.ExpectEquality(t, p[0].Message, "Connected 'Keyboard' to port 2")
}

func TestOpenControllerFailure(t *testing.T) {
	h := newHarness(t)

	// no controller registered at index 9. the failure is absorbed
	h.inp.HandleDeviceAdded(9)
	test.ExpectEquality(t, len(h.inp.Devices()), 1)
	test.ExpectEquality(t, len(h.q.Pending()), 0)
}

func TestRemoveUnknownInstance(t *testing.T) {
	h := newHarness(t)

	// removal of an unrecognised instance id is logged but nothing more
	h.inp.HandleDeviceRemoved(99)
	test.ExpectEquality(t, len(h.inp.Devices()), 1)
}

func TestRemoveReleasesHandles(t *testing.T) {
	h := newHarness(t)

	d := h.connectPad(t, 0, "Test Pad", "0123456789abcdef0123456789abcdef", 5, true)
	c := h.sys.controllers[0]

	h.inp.HandleDeviceRemoved(d.instanceID)

	test.ExpectEquality(t, len(h.inp.Devices()), 1)
	test.ExpectEquality(t, c.closed, true)
	test.ExpectEquality(t, c.haptic.closed, true)
}

func TestConnectNotification(t *testing.T) {
	h := newHarness(t)

	// persist the pad's identity so the connection auto-binds
	h.set.SetPort(2, "aaaa")
	test.ExpectSuccess(t, h.set.Save())

	h.connectPad(t, 0, "Test Pad", "aaaa", 1, false)

	p := h.q.Pending()
	test.ExpectEquality(t, len(p), 1)
	test.ExpectEquality(t, p[0].Message, "Connected 'Test Pad' to port 3")
}

func TestTestMode(t *testing.T) {
	h := newHarness(t)

	test.ExpectEquality(t, h.inp.TestMode(), false)
	h.inp.SetTestMode(true)
	test.ExpectEquality(t, h.inp.TestMode(), true)
	h.inp.SetTestMode(false)
	test.ExpectEquality(t, h.inp.TestMode(), false)
}
