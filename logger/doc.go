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

// Package logger is the central log for the entire application. There is
// only one log and it is accessible through the package level functions,
// principally Log() and Logf().
//
// Entries are tagged with the name of the system that raised them. An entry
// that repeats the most recent entry is collapsed into it rather than
// appended.
//
// The contents of the log can be written out with Write() and Tail(). For
// interactive use the log can also be echoed to a writer as entries arrive
// with SetEcho().
package logger
