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
	"log/slog"
	"os"

	"seehuhn.de/go/pdf"
)

// Options controls the behaviour of [Unlock].
// The zero value is ready to use.
type Options struct {
	// WriteUnencrypted requests an output file even if the input file is
	// not encrypted.  The pdf-unlock command sets this when an output file
	// name is given explicitly.
	WriteUnencrypted bool

	// Prompt, if set, is called at most once to ask for a password,
	// in case no password was given and the file cannot be opened
	// with the empty password.
	Prompt func() (string, error)

	// Logger receives one line describing the outcome of the operation,
	// together with debug messages for the individual steps.
	// If this is nil, log messages are discarded.
	Logger *slog.Logger
}

func (opt *Options) logger() *slog.Logger {
	if opt.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return opt.Logger
}

// Unlock reads the PDF file inPath and, if it is encrypted, writes an
// unencrypted copy of all pages to outPath.  The password is tried exactly
// once.  An existing file at outPath is overwritten.
//
// Unencrypted files are only copied if opt.WriteUnencrypted is set;
// otherwise [NotEncrypted] is returned.  The output file is only written if
// the returned outcome is [Written].
//
// The returned error, if any, gives details about the failure.  Unlock does
// not panic on malformed input.
func Unlock(inPath, outPath, password string, opt *Options) (res Outcome, err error) {
	if opt == nil {
		opt = &Options{}
	}
	log := opt.logger()

	defer func() {
		if p := recover(); p != nil {
			res = Failed
			err = fmt.Errorf("%s: unexpected failure: %v", inPath, p)
		}
		report(log, inPath, outPath, res, err)
	}()

	if password != "" {
		log.Debug("trying supplied password")
	}
	doc, err := openFile(inPath, password)
	if Classify(err) == WrongPassword && password == "" && opt.Prompt != nil {
		passwd, perr := opt.Prompt()
		if perr != nil {
			log.Debug("cannot read password", "error", perr)
		} else {
			doc, err = openFile(inPath, passwd)
		}
	}
	if err != nil {
		return Classify(err), err
	}
	defer doc.Close()
	log.Debug("opened input",
		"file", inPath,
		"version", doc.Version(),
		"encrypted", doc.Encrypted())

	pages, err := readPages(doc.r)
	if err != nil {
		return Classify(err), fmt.Errorf("%s: %w", inPath, err)
	}
	log.Debug("found pages", "count", len(pages))

	if !doc.Encrypted() && !opt.WriteUnencrypted {
		return NotEncrypted, nil
	}

	body, err := copyPages(doc.r, pages)
	if err != nil {
		return Classify(err), fmt.Errorf("%s: %w", inPath, err)
	}
	log.Debug("serialised output", "bytes", len(body))

	err = replaceFile(outPath, body)
	if err != nil {
		return Failed, err
	}
	return Written, nil
}

// report logs the human-readable summary line for an outcome.
func report(log *slog.Logger, inPath, outPath string, res Outcome, err error) {
	switch res {
	case Written:
		log.Info("unencrypted copy saved", "file", inPath, "output", outPath)
	case NotEncrypted:
		log.Warn("file was not encrypted, nothing written", "file", inPath)
	case WrongPassword:
		log.Error("incorrect password", "file", inPath)
	case FileNotFound:
		log.Error("input file not found", "file", inPath)
	default:
		log.Error("cannot unlock file", "file", inPath, "error", err)
	}
}

// document is a PDF file held in memory.
type document struct {
	r         *pdf.Reader
	encrypted bool
}

// openFile reads and parses a PDF file.  The empty password is always tried
// first, the given password only if this fails.
func openFile(fname, password string) (*document, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	opt := &pdf.ReaderOptions{
		Password: password,
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)), opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	_, encrypted := r.GetMeta().Trailer["Encrypt"]
	doc := &document{
		r:         r,
		encrypted: encrypted,
	}
	return doc, nil
}

// Encrypted reports whether the file uses PDF encryption.
func (doc *document) Encrypted() bool {
	return doc.encrypted
}

func (doc *document) Version() pdf.Version {
	return doc.r.GetMeta().Version
}

func (doc *document) Close() error {
	return doc.r.Close()
}
