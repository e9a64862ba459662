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

package unlock

import (
	"errors"
	"io/fs"

	"seehuhn.de/go/pdf"
)

// Outcome describes the result of an [Unlock] call.
type Outcome int

// These are the possible outcomes of [Unlock].
const (
	// Written means that an unencrypted copy was written to the output file.
	Written Outcome = iota

	// NotEncrypted means that the input was not encrypted and that no
	// output was requested.  Nothing was written.
	NotEncrypted

	// WrongPassword means that the password did not open the file.
	WrongPassword

	// FileNotFound means that the input file does not exist.
	FileNotFound

	// Failed covers all other errors, for example I/O errors
	// or malformed PDF files.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "written"
	case NotEncrypted:
		return "not encrypted"
	case WrongPassword:
		return "wrong password"
	case FileNotFound:
		return "file not found"
	case Failed:
		return "failed"
	default:
		return "unknown outcome"
	}
}

// ExitCode returns the process exit status for the outcome.
//
// Unencrypted input without a requested output file counts as success.
func (o Outcome) ExitCode() int {
	switch o {
	case Written, NotEncrypted:
		return 0
	case FileNotFound:
		return 2
	case WrongPassword:
		return 3
	default:
		return 1
	}
}

// Classify maps an error returned by this package or by the PDF library
// to an outcome.  A nil error is classified as [Written].
func Classify(err error) Outcome {
	if err == nil {
		return Written
	}

	var authErr *pdf.AuthenticationError
	switch {
	case errors.As(err, &authErr):
		return WrongPassword
	case errors.Is(err, fs.ErrNotExist):
		return FileNotFound
	default:
		return Failed
	}
}
