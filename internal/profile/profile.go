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

// Package profile writes CPU and memory profiles for the command line
// tools.
package profile

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is an active profiling session.
type Session struct {
	cpu     *os.File
	memName string
	log     *slog.Logger
}

// Start begins CPU profiling to cpuName and arranges for a heap profile to
// be written to memName when the session is stopped.  Empty file names
// disable the corresponding profile.
func Start(cpuName, memName string, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Session{memName: memName, log: log}

	if cpuName != "" {
		f, err := os.Create(cpuName)
		if err != nil {
			return nil, fmt.Errorf("cannot create CPU profile: %w", err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("cannot start CPU profile: %w", err)
		}
		s.cpu = f
		log.Debug("CPU profiling started", "file", cpuName)
	}
	return s, nil
}

// Stop ends the session and writes the memory profile.
// Errors are logged, since profiling must not change the exit status.
func (s *Session) Stop() {
	if s.cpu != nil {
		pprof.StopCPUProfile()
		if err := s.cpu.Close(); err != nil {
			s.log.Warn("cannot write CPU profile", "error", err)
		}
		s.cpu = nil
	}

	if s.memName == "" {
		return
	}
	err := s.writeHeap()
	if err != nil {
		s.log.Warn("cannot write memory profile", "file", s.memName, "error", err)
	}
	s.memName = ""
}

func (s *Session) writeHeap() error {
	f, err := os.Create(s.memName)
	if err != nil {
		return err
	}
	runtime.GC()
	err = pprof.Lookup("allocs").WriteTo(f, 0)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
