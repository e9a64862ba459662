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

import "testing"

func TestOutputName(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"bill.pdf", "bill.unlocked.pdf"},
		{"dir/bill.pdf", "dir/bill.unlocked.pdf"},
		{"scan.PDF", "scan.unlocked.PDF"},
		{"statement.2025.pdf", "statement.2025.unlocked.pdf"},
		{"notes", "notes.unlocked.pdf"},
		{"notes.txt", "notes.txt.unlocked.pdf"},
		{".pdf", ".pdf.unlocked.pdf"},
	}
	for _, tc := range testCases {
		if got := OutputName(tc.in); got != tc.out {
			t.Errorf("OutputName(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
