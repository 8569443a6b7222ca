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

package notifications

// Notice describes events that change the presentation of the running core.
// These notifications can be used to present additional information to the
// user.
type Notice string

// List of defined notifications.
const (
	// a new core has been programmed and is running
	NotifyCoreLoaded Notice = "NotifyCoreLoaded"

	// the menu core has been programmed and is running
	NotifyMenuLoaded Notice = "NotifyMenuLoaded"

	// the on-screen overlay has been shown or hidden
	NotifyOverlayShown  Notice = "NotifyOverlayShown"
	NotifyOverlayHidden Notice = "NotifyOverlayHidden"

	// the toolbar should be hidden while a core is running and shown again
	// when control returns to the menu
	NotifyToolbarHidden Notice = "NotifyToolbarHidden"
	NotifyToolbarShown  Notice = "NotifyToolbarShown"

	// a screen shot is taking place
	NotifyScreenshot Notice = "NotifyScreenshot"

	// a save state has been written or read
	NotifyStateSaved  Notice = "NotifyStateSaved"
	NotifyStateLoaded Notice = "NotifyStateLoaded"
)

// Notify is implemented by anything that wants to be told about notices.
type Notify interface {
	Notify(notice Notice) error
}

// Discard is a Notify implementation that ignores every notice.
var Discard Notify = discard{}

type discard struct{}

func (discard) Notify(_ Notice) error {
	return nil
}
