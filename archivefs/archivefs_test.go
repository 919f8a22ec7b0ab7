// This file is part of Gopher65C02.
//
// Gopher65C02 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65C02 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65C02.  If not, see <https://www.gnu.org/licenses/>.

package archivefs_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher65c02/archivefs"
	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/logger"
	"github.com/jetsetilly/gopher65c02/test"
)

// createTestDir creates a directory containing a plain file and a zip
// archive. the archive contains a file at the root and a file in a
// sub-directory.
func createTestDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents\n"), 0o600)
	test.DemandSuccess(t, err)

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)

	w, err := zw.Create("archivefile1")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte("archivefile1 contents\n"))
	test.DemandSuccess(t, err)

	_, err = zw.Create("archivedir/")
	test.DemandSuccess(t, err)

	w, err = zw.Create("archivedir/archivefile2")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte{0xa9, 0x42, 0x00})
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, zw.Close())

	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := createTestDir(t)

	var afs archivefs.Path
	var pth string
	var err error

	// non-existant file
	pth = filepath.Join(dir, "foo")
	err = afs.Set(pth)
	test.ExpectSuccess(t, curated.Is(err, archivefs.NoSuchPath))
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// a real file in directory
	pth = filepath.Join(dir, "testfile")
	err = afs.Set(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), pth)
	test.ExpectEquality(t, afs.Base(), "testfile")
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// a real archive
	pth = filepath.Join(dir, "testarchive.zip")
	err = afs.Set(pth)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// file in a real archive
	pth = filepath.Join(dir, "testarchive.zip", "archivefile1")
	err = afs.Set(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), pth)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// directory in a real archive
	pth = filepath.Join(dir, "testarchive.zip", "archivedir")
	err = afs.Set(pth)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// directories cannot be opened
	_, _, err = afs.Open()
	test.ExpectSuccess(t, curated.Is(err, archivefs.IsDirectory))
	test.ExpectEquality(t, err.Error(), "archivefs: cannot open a directory ("+pth+")")

	// non-existant file in a real archive
	pth = filepath.Join(dir, "testarchive.zip", "foo")
	err = afs.Set(pth)
	test.ExpectSuccess(t, curated.Is(err, archivefs.NoSuchPath))
	test.ExpectFailure(t, afs.InArchive())

	afs.Close()
}

func TestArchivefsOpen(t *testing.T) {
	dir := createTestDir(t)

	logger.Clear()
	r, sz, err := archivefs.Open(filepath.Join(dir, "testarchive.zip", "archivefile1"))
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "archivefs: opening archivefile1 from archive\n")
	test.ExpectEquality(t, sz, 22)
	d, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile1 contents\n")

	r, sz, err = archivefs.Open(filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile2"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 3)
	d, err = io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "\xa9\x42\x00")

	r, sz, err = archivefs.Open(filepath.Join(dir, "testfile"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, 18)
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}
}
