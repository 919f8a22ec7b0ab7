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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/gopher65c02/archivefs"
	"github.com/jetsetilly/gopher65c02/curated"
)

// Sentinal error patterns.
const (
	Unreadable        = "programloader: %v"
	InvalidHex        = "programloader: invalid hex (line %d: %s)"
	UnexpectedHash    = "programloader: unexpected hash value"
	UnsupportedScheme = "programloader: unsupported URL scheme (%s)"
	UnknownFormat     = "programloader: unknown format (%s)"
)

// List of valid Format values.
const (
	FormatAuto   = "AUTO"
	FormatBinary = "BIN"
	FormatHex    = "HEX"
)

// Loader is used to specify the program to load into the emulated machine.
type Loader struct {
	// filename of program to load. can be a URL
	Filename string

	// one of the Format* values. FormatAuto indicates that the format should
	// be decided by the filename extension
	Format string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
func NewLoader(filename string, format string) Loader {
	pl := Loader{
		Filename: filename,
		Format:   FormatBinary,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != FormatAuto && format != "" {
		pl.Format = format
	} else {
		switch strings.ToUpper(path.Ext(filename)) {
		case ".HEX", ".TXT":
			pl.Format = FormatHex
		}
	}

	return pl
}

// FileExtensions is the list of file extensions that are recognised by the
// programloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".HEX", ".TXT"}

// ShortName returns a shortened version of the Loader filename.
func (pl Loader) ShortName() string {
	s := path.Base(pl.Filename)
	s = strings.TrimSuffix(s, path.Ext(pl.Filename))
	return s
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return len(pl.Data) > 0
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files. Local files can be inside a zip archive.
func (pl *Loader) Load() error {
	if len(pl.Data) > 0 {
		return nil
	}

	var raw []byte

	scheme := "file"

	url, err := url.Parse(pl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(pl.Filename)
		if err != nil {
			return curated.Errorf(Unreadable, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(Unreadable, resp.Status)
		}

		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(Unreadable, err)
		}

	case "file", "":
		f, _, err := archivefs.Open(pl.Filename)
		if err != nil {
			return curated.Errorf(Unreadable, err)
		}
		if c, ok := f.(io.Closer); ok {
			defer c.Close()
		}

		raw, err = io.ReadAll(f)
		if err != nil {
			return curated.Errorf(Unreadable, err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	var data []byte

	switch pl.Format {
	case FormatBinary:
		data = raw
	case FormatHex:
		data, err = DecodeHex(string(raw))
		if err != nil {
			return err
		}
	default:
		return curated.Errorf(UnknownFormat, pl.Format)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if pl.Hash != "" && pl.Hash != hash {
		return curated.Errorf(UnexpectedHash)
	}

	pl.Hash = hash
	pl.Data = data

	return nil
}
