package ucd

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
)

// Record is one data line of a UCD property listing. It denotes an inclusive
// range of code points sharing a single binary property. A record for a single
// code point has From == To.
type Record struct {
	From     rune
	To       rune
	Property string
}

// https://www.unicode.org/reports/tr44/#Format_Conventions
var reRecord = regexp.MustCompile(`^\s*([[:xdigit:]]+)(?:\.\.([[:xdigit:]]+))?\s*;\s*([0-9A-Za-z_]+)\s*(#.*)?$`)

// This parser can parse property listings of the Unicode Character Database (UCD),
// like PropList.txt and DerivedCoreProperties.txt. Each data line yields one Record.
// Lines that don't form a data record (blank lines, full-line comments, and
// malformed rows) are skipped silently. The permissiveness follows the format
// conventions: anything a consumer doesn't recognize is not an error.
//
// The parser is a single-pass iterator. After parse has returned false it stays
// exhausted; parsing the same text again needs a fresh parser.
type parser struct {
	scanner *bufio.Scanner
	record  *Record
	err     error
}

func newParser(r io.Reader) *parser {
	return &parser{
		scanner: bufio.NewScanner(r),
	}
}

func (p *parser) parse() bool {
	for p.scanner.Scan() {
		p.record, p.err = parseRecord(p.scanner.Text())
		if p.err != nil {
			return false
		}
		if p.record != nil {
			return true
		}
	}
	p.err = p.scanner.Err()
	return false
}

func parseRecord(src string) (*Record, error) {
	ms := reRecord.FindStringSubmatch(src)
	if ms == nil {
		return nil, nil
	}
	from, err := decodeHexToRune(ms[1])
	if err != nil {
		return nil, err
	}
	to := from
	if ms[2] != "" {
		to, err = decodeHexToRune(ms[2])
		if err != nil {
			return nil, err
		}
	}
	return &Record{
		From:     from,
		To:       to,
		Property: ms[3],
	}, nil
}

func decodeHexToRune(hexCodePoint string) (rune, error) {
	n, err := strconv.ParseUint(hexCodePoint, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(n), nil
}

// ParseListing reads a whole property listing and returns its records in
// source order.
func ParseListing(r io.Reader) ([]*Record, error) {
	var records []*Record
	p := newParser(r)
	for p.parse() {
		records = append(records, p.record)
	}
	if p.err != nil {
		return nil, p.err
	}
	return records, nil
}
