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
	"path/filepath"
	"strings"
)

// OutputName returns the default output file name for the input file fname.
//
// The string ".unlocked" is inserted before a ".pdf" extension,
// for example "bill.pdf" becomes "bill.unlocked.pdf".  If fname does not end
// in ".pdf" (in any capitalisation), ".unlocked.pdf" is appended instead.
func OutputName(fname string) string {
	ext := filepath.Ext(fname)
	if strings.EqualFold(ext, ".pdf") && len(ext) < len(filepath.Base(fname)) {
		return strings.TrimSuffix(fname, ext) + ".unlocked" + ext
	}
	return fname + ".unlocked.pdf"
}
