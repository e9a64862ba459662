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

package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSession(t *testing.T) {
	dir := t.TempDir()
	cpuName := filepath.Join(dir, "cpu.prof")
	memName := filepath.Join(dir, "mem.prof")

	s, err := Start(cpuName, memName, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Stop()
	s.Stop() // a second call is a no-op

	for _, fname := range []string{cpuName, memName} {
		fi, err := os.Stat(fname)
		if err != nil {
			t.Error(err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("%s is empty", fname)
		}
	}
}

func TestSessionDisabled(t *testing.T) {
	s, err := Start("", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Stop()
}

func TestStartError(t *testing.T) {
	_, err := Start(filepath.Join(t.TempDir(), "missing", "cpu.prof"), "", nil)
	if err == nil {
		t.Error("missing error")
	}
}
