// This file is part of Gopher1626.
//
// Gopher1626 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher1626 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher1626.  If not, see <https://www.gnu.org/licenses/>.

package hexfile

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher1626/curated"
)

// Sentinel patterns for errors returned by the package.
const (
	IoError     = "hexfile: cannot read %s: %v"
	FormatError = "hexfile: line %d: %s"
)

// Type of a record.
type Type uint8

// List of valid Type values.
const (
	Data Type = iota
	EndOfFile
	ExtendedSegmentAddress
	StartSegmentAddress
	ExtendedLinearAddress
	StartLinearAddress
)

func (t Type) String() string {
	switch t {
	case Data:
		return "data"
	case EndOfFile:
		return "end of file"
	case ExtendedSegmentAddress:
		return "extended segment address"
	case StartSegmentAddress:
		return "start segment address"
	case ExtendedLinearAddress:
		return "extended linear address"
	case StartLinearAddress:
		return "start linear address"
	}
	return fmt.Sprintf("unknown (%02x)", uint8(t))
}

// Record is a single line of an Intel HEX file.
type Record struct {
	// line number in the file, counting from one
	Line int

	Type   Type
	Offset uint16
	Data   []uint8
}

func (r Record) String() string {
	return fmt.Sprintf("%04x %s (%d bytes)", r.Offset, r.Type, len(r.Data))
}

// decodeLine decodes a single line. The line should not include the line
// ending.
func decodeLine(n int, line string) (Record, error) {
	if !strings.HasPrefix(line, ":") {
		return Record{}, curated.Errorf(FormatError, n, "record does not start with ':'")
	}

	b, err := hex.DecodeString(line[1:])
	if err != nil {
		return Record{}, curated.Errorf(FormatError, n, err)
	}

	// count, offset (two bytes), type and checksum
	if len(b) < 5 {
		return Record{}, curated.Errorf(FormatError, n, "record too short")
	}

	count := int(b[0])
	if len(b) != count+5 {
		return Record{}, curated.Errorf(FormatError, n, fmt.Sprintf("byte count (%d) does not match record length (%d)", count, len(b)-5))
	}

	var sum uint8
	for _, v := range b {
		sum += v
	}
	if sum != 0 {
		return Record{}, curated.Errorf(FormatError, n, "checksum mismatch")
	}

	r := Record{
		Line:   n,
		Type:   Type(b[3]),
		Offset: uint16(b[1])<<8 | uint16(b[2]),
		Data:   b[4 : 4+count],
	}

	if r.Type > StartLinearAddress {
		return Record{}, curated.Errorf(FormatError, n, fmt.Sprintf("unknown record type (%02x)", uint8(r.Type)))
	}

	return r, nil
}

// Decode the records from the reader. Decoding stops after the end of file
// record. Blank lines are skipped and both LF and CRLF line endings are
// accepted.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rec, err := decodeLine(n, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)

		if rec.Type == EndOfFile {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FormatError, n, err)
	}

	return records, nil
}

// File is a decoded Intel HEX file.
type File struct {
	Filename string

	// sha1 hash of the file contents
	Hash string

	Records []Record
}

// ReadFile reads and decodes the named file.
func ReadFile(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(IoError, filename, err)
	}

	records, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, curated.Errorf("hexfile: %v (%s)", err, filename)
	}

	return &File{
		Filename: filename,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		Records:  records,
	}, nil
}

// DataRecords returns only the data records.
func (f *File) DataRecords() []Record {
	var d []Record
	for _, r := range f.Records {
		if r.Type == Data {
			d = append(d, r)
		}
	}
	return d
}

// Extent returns one past the highest offset written by the data records.
func (f *File) Extent() int {
	var e int
	for _, r := range f.DataRecords() {
		if x := int(r.Offset) + len(r.Data); x > e {
			e = x
		}
	}
	return e
}
