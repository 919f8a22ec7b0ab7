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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/logger"
)

// Sentinal error patterns.
const (
	NoSuchPath  = "archivefs: no such path (%s)"
	IsDirectory = "archivefs: cannot open a directory (%s)"
	ArchiveErr  = "archivefs: %v"
)

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// the path inside the zip file. zip files always use forward slashes as
	// the path separator
	inZip string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if Path is currently set to a directory. For the
// purposes of archivefs, the root of an archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the
// Set() function.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and
// any errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.IsDir() {
		return nil, 0, curated.Errorf(IsDirectory, afs)
	}

	if afs.InArchive() {
		logger.Logf(logger.Allow, "archivefs", "opening %s from archive", afs.Base())

		f, err := afs.zf.Open(afs.inZip)
		if err != nil {
			return nil, 0, curated.Errorf(ArchiveErr, err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, curated.Errorf(ArchiveErr, err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf(ArchiveErr, err)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, 0, curated.Errorf(ArchiveErr, err)
	}

	return f, int(info.Size()), nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZip = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Each element of the path is checked in turn. An element that
// is a zip file is opened and the remaining elements are looked for inside
// the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			p := path.Join(afs.inZip, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return curated.Errorf(NoSuchPath, current)
			}

			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return curated.Errorf(ArchiveErr, err)
			}

			afs.isDir = zfi.IsDir()
			afs.inZip = p
			continue
		}

		fi, err := os.Stat(current)
		if err != nil {
			afs.Close()
			return curated.Errorf(NoSuchPath, current)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(current)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.isDir = true
			afs.inZip = "."
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return curated.Errorf(ArchiveErr, err)
		}
	}

	afs.current = current

	return nil
}
