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
	"bytes"
	"fmt"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// copyPages writes the given pages into a new, unencrypted PDF file and
// returns the file contents.
//
// The document information dictionary and the file identifier are taken
// over from the input.  All other document-level structure (outlines, named
// destinations, forms, ...) is dropped.
func copyPages(r *pdf.Reader, src []sourcePage) ([]byte, error) {
	meta := r.GetMeta()

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, meta.Version, nil)
	if err != nil {
		return nil, err
	}

	rm := pdf.NewResourceManager(w)
	tree := pagetree.NewWriter(w, rm)
	copier := pdf.NewCopier(w, r)

	// All pages get their new references up front, so that links between
	// pages (for example the /P entries of annotations) point into the
	// new file.
	pageRefs := make([]pdf.Reference, len(src))
	for i, page := range src {
		pageRefs[i] = w.Alloc()
		copier.Redirect(page.Ref, pageRefs[i])
	}

	for i, page := range src {
		dict, err := copier.CopyDict(page.Dict)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		err = tree.AppendPageDict(pageRefs[i], dict)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
	}

	treeRef, err := tree.Close()
	if err != nil {
		return nil, err
	}
	err = rm.Close()
	if err != nil {
		return nil, err
	}

	out := w.GetMeta()
	out.Catalog.Pages = treeRef
	out.Info = meta.Info
	out.ID = meta.ID

	err = w.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
