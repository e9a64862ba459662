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

// Pdf-unlock removes the password protection from a PDF file.
//
// Usage:
//
//	pdf-unlock [options] <input.pdf> [password]
//
// The unencrypted copy is written to the file given with -o, or else next to
// the input file with ".unlocked" inserted before the extension.  The exit
// status is 0 on success (also if the file was not encrypted), 1 on errors,
// 2 if the input file does not exist and 3 if the password is wrong.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/marcusandresus/quita-clave-pdf/internal/buildinfo"
	"github.com/marcusandresus/quita-clave-pdf/internal/config"
	"github.com/marcusandresus/quita-clave-pdf/internal/profile"
	"github.com/marcusandresus/quita-clave-pdf/unlock"
)

const toolName = "pdf-unlock"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	a, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 1
	}

	if a.version {
		fmt.Fprintln(stdout, buildinfo.Line(toolName))
		return 0
	}

	cfg, err := config.Load(a.envFile)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	level := slog.LevelInfo
	if a.debug || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	prof, err := profile.Start(a.cpuprofile, a.memprofile, logger)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	defer prof.Stop()

	password := a.password
	if password == "" {
		password = cfg.Password
	}

	if a.info {
		return showInfo(stdout, logger, a.input, password)
	}

	out := a.output
	if out == "" {
		out = unlock.OutputName(a.input)
	}
	opt := &unlock.Options{
		WriteUnencrypted: a.output != "",
		Logger:           logger,
	}
	if password == "" && interactive() {
		opt.Prompt = promptPassword(os.Stdin, stderr)
	}

	res, _ := unlock.Unlock(a.input, out, password, opt)
	return res.ExitCode()
}

func showInfo(stdout io.Writer, logger *slog.Logger, fname, password string) int {
	info, err := unlock.Inspect(fname, password)
	if err != nil {
		res := unlock.Classify(err)
		logger.Error("cannot inspect file", "file", fname, "error", err)
		return res.ExitCode()
	}

	encrypted := "no"
	if info.Encrypted {
		encrypted = "yes"
	}
	fmt.Fprintf(stdout, "file:      %s\n", fname)
	fmt.Fprintf(stdout, "version:   %s\n", info.Version)
	fmt.Fprintf(stdout, "encrypted: %s\n", encrypted)
	fmt.Fprintf(stdout, "pages:     %d\n", info.Pages)
	return 0
}

// interactive reports whether a password can be read from the terminal.
var interactive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptPassword returns a function which reads a password from the
// terminal without echo.
func promptPassword(in *os.File, prompt io.Writer) func() (string, error) {
	return func() (string, error) {
		fmt.Fprint(prompt, "password: ")
		passwd, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return string(passwd), nil
	}
}
