// Package flatfile reads and writes the line-oriented network format:
//
//	<airport count>
//	CODE,Airport name
//	...
//	SRC,DST,distance,duration,cost
//	...
//
// Airport lines fix identifiers 0..n-1 in file order. Route lines may come in
// any order and refer to airports by code. The name is everything after the
// first comma, so names may themselves contain commas.
//
// Decoding is forgiving: a malformed airport or route line, or an airport
// line repeating an earlier code, is recorded in the Report and skipped. Only a missing or unparsable count line aborts.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/airroute/core"
)

// Sentinel errors for decoding and encoding.
var (
	// ErrBadHeader indicates the leading airport-count line is missing or not a
	// non-negative integer. This is the only error that aborts Decode.
	ErrBadHeader = errors.New("flatfile: bad airport count line")

	// ErrMalformedAirport indicates an airport line without a code or a name.
	ErrMalformedAirport = errors.New("flatfile: malformed airport line")

	// ErrMalformedRoute indicates a route line without five fields or with a
	// weight that is not an unsigned 32-bit integer.
	ErrMalformedRoute = errors.New("flatfile: malformed route line")

	// ErrDuplicateAirport indicates an airport line repeating an earlier code.
	// The first line wins.
	ErrDuplicateAirport = errors.New("flatfile: duplicate airport code")

	// ErrTruncated indicates the file ended before the announced number of airports.
	ErrTruncated = errors.New("flatfile: fewer airport lines than announced")

	// ErrUnencodable indicates a code or name that would corrupt the format or
	// that Decode would reject, such as a blank name.
	ErrUnencodable = errors.New("flatfile: value cannot be encoded")
)

// maxLine bounds a single line; longer lines fail the scanner.
const maxLine = 1 << 20

// LineError describes one rejected line.
type LineError struct {
	Line int    // 1-based line number
	Text string // raw line, without the line terminator
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e LineError) Unwrap() error { return e.Err }

// Report summarizes a Decode call.
type Report struct {
	Airports int // airports added
	Routes   int // routes added
	Lines    []LineError
}

// OK reports whether every line was accepted.
func (r *Report) OK() bool { return len(r.Lines) == 0 }

// Err joins all line errors, or returns nil.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Lines))
	for i, le := range r.Lines {
		errs[i] = le
	}

	return errors.Join(errs...)
}

func (r *Report) reject(line int, text string, err error) {
	r.Lines = append(r.Lines, LineError{Line: line, Text: text, Err: err})
}

// lineReader numbers lines and strips CR.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++

	return strings.TrimRight(lr.sc.Text(), "\r"), true
}

// Decode reads a network from r. opts configure the network being built
// (capacity, weight policy).
//
// Steps:
//  1. First non-blank line: airport count (ErrBadHeader otherwise).
//  2. The next count non-blank lines: airports.
//  3. Every remaining non-blank line: a route.
//
// The returned Report lists every skipped line. err is non-nil only for
// ErrBadHeader or a read failure; the network is nil in that case.
func Decode(r io.Reader, opts ...core.NetworkOption) (*core.Network, *Report, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	lr := &lineReader{sc: sc}
	rep := &Report{}

	// 1) Header
	count, err := readHeader(lr)
	if err != nil {
		return nil, rep, err
	}

	n := core.NewNetwork(opts...)

	// 2) Airports
	read := 0
	for read < count {
		text, ok := lr.next()
		if !ok {
			break
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		read++

		code, name, found := strings.Cut(text, ",")
		code = strings.TrimSpace(code)
		if !found || code == "" || strings.TrimSpace(name) == "" {
			rep.reject(lr.line, text, ErrMalformedAirport)
			continue
		}
		if n.Has(code) {
			rep.reject(lr.line, text, fmt.Errorf("%w: %s", ErrDuplicateAirport, code))
			continue
		}
		if _, err := n.AddAirport(code, name); err != nil {
			rep.reject(lr.line, text, err)
			continue
		}
		rep.Airports = n.AirportCount()
	}
	if err := sc.Err(); err != nil {
		return nil, rep, fmt.Errorf("flatfile: read: %w", err)
	}
	if read < count {
		rep.reject(lr.line, "", fmt.Errorf("%w: expected %d, found %d", ErrTruncated, count, read))
	}

	// 3) Routes
	for {
		text, ok := lr.next()
		if !ok {
			break
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := decodeRoute(n, text); err != nil {
			rep.reject(lr.line, text, err)
			continue
		}
		rep.Routes++
	}
	if err := sc.Err(); err != nil {
		return nil, rep, fmt.Errorf("flatfile: read: %w", err)
	}

	return n, rep, nil
}

func readHeader(lr *lineReader) (int, error) {
	for {
		text, ok := lr.next()
		if !ok {
			if err := lr.sc.Err(); err != nil {
				return 0, fmt.Errorf("flatfile: read: %w", err)
			}
			return 0, fmt.Errorf("%w: empty input", ErrBadHeader)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil || count < 0 {
			return 0, fmt.Errorf("%w: line %d: %q", ErrBadHeader, lr.line, text)
		}

		return count, nil
	}
}

var weightFields = [3]string{"distance", "duration", "cost"}

func decodeRoute(n *core.Network, text string) error {
	fields := strings.Split(text, ",")
	if len(fields) != 5 {
		return fmt.Errorf("%w: want 5 fields, got %d", ErrMalformedRoute, len(fields))
	}
	src, dst := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
	if src == "" || dst == "" {
		return fmt.Errorf("%w: empty airport code", ErrMalformedRoute)
	}

	var w [3]uint32
	for i := range w {
		v, err := strconv.ParseUint(strings.TrimSpace(fields[2+i]), 10, 32)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedRoute, weightFields[i], err)
		}
		w[i] = uint32(v)
	}

	return n.AddRoute(src, dst, w[0], w[1], w[2])
}

// Encode writes n to w: the count, airports in id order, then routes grouped
// by source.
func Encode(w io.Writer, n *core.Network) error {
	bw := bufio.NewWriter(w)
	airports := n.Airports()

	if _, err := fmt.Fprintf(bw, "%d\n", len(airports)); err != nil {
		return err
	}
	for _, a := range airports {
		if !encodable(a) {
			return fmt.Errorf("%w: airport %d %q", ErrUnencodable, a.ID, a.Code)
		}
		if _, err := fmt.Fprintf(bw, "%s,%s\n", a.Code, a.Name); err != nil {
			return err
		}
	}
	for _, r := range n.Routes() {
		if _, err := fmt.Fprintf(bw, "%s,%s,%d,%d,%d\n",
			airports[r.From].Code, airports[r.To].Code, r.Distance, r.Duration, r.Cost); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// encodable reports whether a survives an Encode/Decode round trip.
func encodable(a core.Airport) bool {
	return strings.TrimSpace(a.Code) != "" &&
		!strings.ContainsAny(a.Code, ",\r\n") &&
		strings.TrimSpace(a.Name) != "" &&
		!strings.ContainsAny(a.Name, "\r\n")
}
