// pdf-unlock - remove password protection from PDF files
// Copyright (C) 2026  The pdf-unlock authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package unlock removes the password protection from PDF files.
//
// The main entry point is [Unlock], which reads an encrypted PDF file,
// authenticates with a password and writes an unencrypted copy of all pages.
// The result of every call is summarised as an [Outcome], which maps directly
// to the exit code of the pdf-unlock command.
//
// All PDF parsing and serialisation is done by the [seehuhn.de/go/pdf]
// library.
package unlock
