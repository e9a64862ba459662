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
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestReplaceFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no Unix permission bits")
	}

	dir := t.TempDir()
	testCases := []struct {
		name string
		old  os.FileMode // 0 means no existing file
		want os.FileMode
	}{
		{"new.pdf", 0, 0o644},
		{"private.pdf", 0o600, 0o600},
		{"shared.pdf", 0o664, 0o664},
	}
	for _, tc := range testCases {
		fname := filepath.Join(dir, tc.name)
		if tc.old != 0 {
			err := os.WriteFile(fname, []byte("old"), tc.old)
			if err != nil {
				t.Fatal(err)
			}
			// WriteFile is subject to the umask
			err = os.Chmod(fname, tc.old)
			if err != nil {
				t.Fatal(err)
			}
		}

		err := replaceFile(fname, []byte("new"))
		if err != nil {
			t.Fatal(err)
		}

		fi, err := os.Stat(fname)
		if err != nil {
			t.Fatal(err)
		}
		if got := fi.Mode().Perm(); got != tc.want {
			t.Errorf("%s: got mode %o, want %o", tc.name, got, tc.want)
		}
		data, err := os.ReadFile(fname)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "new" {
			t.Errorf("%s: got contents %q", tc.name, data)
		}
	}
}
