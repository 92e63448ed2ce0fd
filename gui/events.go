// This file is part of Chip8-Emu.
//
// Chip8-Emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chip8-Emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chip8-Emu.  If not, see <https://www.gnu.org/licenses/>.

package gui

// EventID differentiates the types of event that can occur in the gui.
type EventID int

// List of valid EventID values.
const (
	// a keyboard key has been pressed or released. data is
	// EventDataKeyboard
	EventKeyboard EventID = iota

	// the window has been closed or the user has otherwise asked to quit.
	// no data
	EventQuit
)

// EventData represents the data that is associated with an event.
type EventData interface{}

// Event is the structure that is passed over the event channel.
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataKeyboard is the data that accompanies EventKeyboard events. Key
// is the platform-neutral name of the key: single characters are upper-case
// ("Q", "1"), special keys use their SDL names ("Escape").
type EventDataKeyboard struct {
	Key  string
	Down bool
}
