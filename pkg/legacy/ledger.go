package legacy

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
)

// RawRow is one ledger record keyed by header column name. Missing trailing
// cells map to ""; surplus cells are dropped.
type RawRow map[string]string

// LedgerReader streams records out of the semicolon-delimited client export
// of the previous booking system: UTF-8 with an optional BOM, `;` field
// delimiter, first line is the header. The format never quotes fields, so an
// embedded `;` or newline would misalign columns; that is a property of the
// export, not something the reader tries to repair.
//
// The reader is lazy and non-restartable: rows are produced one Read at a
// time in source order.
type LedgerReader struct {
	f      *os.File
	sc     *bufio.Scanner
	header []string
	line   int
}

// OpenLedger opens the ledger at path and consumes its header line.
func OpenLedger(path string) (*LedgerReader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSourceNotFound, "open ledger %s", path)
		}
		return nil, errors.Wrapf(err, "open ledger %s", path)
	}

	br := bufio.NewReader(f)
	stripUTF8BOM(br)

	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	r := &LedgerReader{f: f, sc: sc}
	if err := r.readHeader(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

func stripUTF8BOM(r *bufio.Reader) {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
}

func (r *LedgerReader) readHeader() error {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return errors.Wrap(err, "read header")
		}
		return errors.Wrap(ErrMalformedSource, "missing header line")
	}
	r.line = 1

	raw := strings.TrimSuffix(r.sc.Text(), "\r")
	if strings.TrimSpace(raw) == "" {
		return errors.Wrap(ErrMalformedSource, "empty header line")
	}

	cells := strings.Split(raw, ";")
	header := make([]string, len(cells))
	for i, c := range cells {
		header[i] = strings.TrimSpace(c)
	}
	r.header = header
	return nil
}

// Header returns the trimmed header columns in source order.
func (r *LedgerReader) Header() []string {
	return r.header
}

// Read returns the next non-blank record and its 1-based line number in the
// source file. It returns io.EOF once the ledger is exhausted.
func (r *LedgerReader) Read() (RawRow, int, error) {
	for r.sc.Scan() {
		r.line++
		raw := strings.TrimSuffix(r.sc.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		values := strings.Split(raw, ";")
		row := make(RawRow, len(r.header))
		for i, name := range r.header {
			if i < len(values) {
				row[name] = values[i]
			} else {
				row[name] = ""
			}
		}
		return row, r.line, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, r.line, errors.Wrapf(err, "read line %d", r.line+1)
	}
	return nil, r.line, io.EOF
}

func (r *LedgerReader) Close() error {
	return r.f.Close()
}
