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

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

var errNoPageTree = errors.New("document has no page tree")

// sourcePage is a page of the input document.
type sourcePage struct {
	// Ref is the reference of the page object in the input file.
	Ref pdf.Reference

	// Dict is the page dictionary, with inherited attributes filled in
	// and the Parent entry removed.
	Dict pdf.Dict
}

// readPages lists the pages of r in document order.
//
// The resulting page dictionaries are self-contained: all inheritable
// attributes found on ancestor nodes are copied onto the pages.
func readPages(r pdf.Getter) ([]sourcePage, error) {
	if r.GetMeta().Catalog.Pages == 0 {
		return nil, errNoPageTree
	}

	var pages []sourcePage
	it := pagetree.NewIterator(r)
	for ref, dict := range it.All() {
		pages = append(pages, sourcePage{Ref: ref, Dict: dict})
	}
	if it.Err != nil {
		return nil, it.Err
	}
	return pages, nil
}
