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

// Package testpdf generates small PDF files for use in tests.
package testpdf

import (
	"bytes"
	"fmt"
	"os"

	"seehuhn.de/go/pdf"
)

// PageKey is a custom page dictionary entry which holds the zero-based
// page number.  Tests use it to check the page order after copying.
const PageKey pdf.Name = "Quir:N"

// Options describes the file to generate.
// The zero value gives an unencrypted, single-page PDF 1.7 file.
type Options struct {
	Version pdf.Version
	Pages   int

	UserPassword  string
	OwnerPassword string

	// Nested places the pages below intermediate page tree nodes,
	// two pages per node.
	Nested bool

	// Inherit stores the media box on the root of the page tree
	// instead of on the individual pages.
	Inherit bool

	// Title, if set, is stored in the document information dictionary.
	Title string
}

// MediaBox returns the media box used for page i.
// Pages are 200 units high and 100+i units wide, so that the page order can
// also be checked via the page size.
func MediaBox(i int) pdf.Array {
	return pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(100 + i), pdf.Integer(200)}
}

// InheritedMediaBox is the media box stored on the root node when
// Options.Inherit is set.
var InheritedMediaBox = pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(612), pdf.Integer(792)}

// Generate returns the contents of a new PDF file.
func Generate(opt *Options) ([]byte, error) {
	if opt == nil {
		opt = &Options{}
	}
	v := opt.Version
	if v == 0 {
		v = pdf.V1_7
	}
	numPages := opt.Pages
	if numPages <= 0 {
		numPages = 1
	}

	wopt := &pdf.WriterOptions{
		UserPassword:  opt.UserPassword,
		OwnerPassword: opt.OwnerPassword,
	}
	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, v, wopt)
	if err != nil {
		return nil, err
	}

	rootRef := w.Alloc()
	root := pdf.Dict{
		"Type": pdf.Name("Pages"),
	}
	if opt.Inherit {
		root["MediaBox"] = InheritedMediaBox
	}

	var rootKids pdf.Array
	var node pdf.Dict
	var nodeRef pdf.Reference
	flushNode := func() error {
		if node == nil {
			return nil
		}
		node["Count"] = pdf.Integer(len(node["Kids"].(pdf.Array)))
		err := w.Put(nodeRef, node)
		node = nil
		return err
	}

	for i := range numPages {
		parent := rootRef
		if opt.Nested {
			if node == nil {
				nodeRef = w.Alloc()
				node = pdf.Dict{
					"Type":   pdf.Name("Pages"),
					"Parent": rootRef,
					"Kids":   pdf.Array{},
				}
				rootKids = append(rootKids, nodeRef)
			}
			parent = nodeRef
		}

		contentRef := w.Alloc()
		stm, err := w.OpenStream(contentRef, nil, pdf.FilterCompress{})
		if err != nil {
			return nil, err
		}
		_, err = fmt.Fprintf(stm, "%d 0 0 RG 10 10 m %d 190 l S\n", i%2, 90+i)
		if err != nil {
			return nil, err
		}
		err = stm.Close()
		if err != nil {
			return nil, err
		}

		pageRef := w.Alloc()
		page := pdf.Dict{
			"Type":     pdf.Name("Page"),
			"Parent":   parent,
			"Contents": contentRef,
			PageKey:    pdf.Integer(i),
		}
		if !opt.Inherit {
			page["MediaBox"] = MediaBox(i)
		}
		err = w.Put(pageRef, page)
		if err != nil {
			return nil, err
		}

		if opt.Nested {
			node["Kids"] = append(node["Kids"].(pdf.Array), pageRef)
			if len(node["Kids"].(pdf.Array)) == 2 {
				err = flushNode()
				if err != nil {
					return nil, err
				}
			}
		} else {
			rootKids = append(rootKids, pageRef)
		}
	}
	err = flushNode()
	if err != nil {
		return nil, err
	}

	root["Kids"] = rootKids
	root["Count"] = pdf.Integer(numPages)
	err = w.Put(rootRef, root)
	if err != nil {
		return nil, err
	}
	w.GetMeta().Catalog.Pages = rootRef
	if opt.Title != "" {
		w.GetMeta().Info = &pdf.Info{Title: pdf.TextString(opt.Title)}
	}

	err = w.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile generates a PDF file and stores it under the given name.
func WriteFile(fname string, opt *Options) error {
	data, err := Generate(opt)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, data, 0o644)
}
