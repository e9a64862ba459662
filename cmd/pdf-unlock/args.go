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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/marcusandresus/quita-clave-pdf/internal/buildinfo"
	"github.com/marcusandresus/quita-clave-pdf/internal/config"
)

type cliArgs struct {
	input    string
	password string

	output  string
	envFile string
	debug   bool
	info    bool
	version bool

	cpuprofile string
	memprofile string
}

// parseArgs parses the command line.  Options may be given before, between
// or after the positional arguments, up to a "--" terminator.
// Errors are reported to stderr.
func parseArgs(args []string, stderr io.Writer) (*cliArgs, error) {
	a := &cliArgs{}

	fs := flag.NewFlagSet(toolName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&a.output, "o", "", "write the unlocked copy to `file`")
	fs.StringVar(&a.output, "output", "", "same as -o")
	fs.BoolVar(&a.debug, "debug", false, "enable verbose logging")
	fs.BoolVar(&a.info, "info", false, "show encryption status and page count, write nothing")
	fs.StringVar(&a.envFile, "env", "", "read settings from dotenv `file`")
	fs.BoolVar(&a.version, "version", false, "show version information and exit")
	fs.StringVar(&a.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	fs.StringVar(&a.memprofile, "memprofile", "", "write memory profile to `file`")
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "%s - remove the password from a PDF file\n", toolName)
		fmt.Fprintf(w, "%s\n\n", buildinfo.Line(toolName))
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  %s [options] <input.pdf> [password]\n\n", toolName)
		fmt.Fprintf(w, "Arguments:\n")
		fmt.Fprintf(w, "  input.pdf  the password-protected PDF file\n")
		fmt.Fprintf(w, "  password   the current password; if omitted, $%s is used,\n", config.EnvPassword)
		fmt.Fprintf(w, "             or the password is read from the terminal\n\n")
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExit status:\n")
		fmt.Fprintf(w, "  0 success, 1 error, 2 file not found, 3 wrong password\n")
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  %s bill.pdf 12345678\n", toolName)
		fmt.Fprintf(w, "  %s -o statement.pdf statement-locked.pdf\n", toolName)
	}

	var pos []string
	for {
		err := fs.Parse(args)
		if err != nil {
			return nil, err
		}
		rest := fs.Args()
		if k := len(args) - len(rest); k > 0 && args[k-1] == "--" {
			// no options after the terminator
			pos = append(pos, rest...)
			break
		}
		if len(rest) == 0 {
			break
		}
		pos = append(pos, rest[0])
		args = rest[1:]
	}

	if a.version {
		return a, nil
	}
	switch len(pos) {
	case 2:
		a.password = pos[1]
		fallthrough
	case 1:
		a.input = pos[0]
	case 0:
		return nil, usageError(fs, "no input file given")
	default:
		return nil, usageError(fs, "too many arguments")
	}
	return a, nil
}

var errUsage = errors.New("invalid usage")

func usageError(fs *flag.FlagSet, msg string) error {
	fmt.Fprintln(fs.Output(), "error:", msg)
	fs.Usage()
	return errUsage
}
