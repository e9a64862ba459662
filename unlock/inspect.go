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
	"fmt"

	"seehuhn.de/go/pdf"
)

// Info summarises a PDF file.
type Info struct {
	Encrypted bool
	Version   pdf.Version
	Pages     int
}

// Inspect reads a PDF file and reports whether it is encrypted, together
// with its version and number of pages.  The password is only needed for
// files which cannot be opened with the empty password.
func Inspect(fname, password string) (*Info, error) {
	doc, err := openFile(fname, password)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages, err := readPages(doc.r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	info := &Info{
		Encrypted: doc.Encrypted(),
		Version:   doc.Version(),
		Pages:     len(pages),
	}
	return info, nil
}
