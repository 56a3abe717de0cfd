// Package cli implements the interactive numbered menu of the airroute
// binary: find a route, list airports, list routes, add a route, add an
// airport, exit.
//
// Input is read one line per prompt. End of input behaves like choosing
// exit. The menu never saves; the caller persists the network after Run
// returns.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/airroute/core"
	"github.com/katalvlaran/airroute/dijkstra"
	"github.com/katalvlaran/airroute/logging"
)

var (
	// errEOF ends the menu loop when input runs out mid-dialog.
	errEOF = errors.New("cli: end of input")

	// errCanceled ends the menu loop when the context is done while waiting
	// for input. Run reports ctx.Err() instead.
	errCanceled = errors.New("cli: canceled")
)

// input is one line read by the scanning goroutine, or the read error.
type input struct {
	text string
	err  error
}

// Menu is one interactive session over a network.
type Menu struct {
	n      *core.Network
	in     *bufio.Scanner
	out    io.Writer
	log    *slog.Logger
	search []dijkstra.Option

	// set by Run
	lines <-chan input
	done  <-chan struct{}
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger for network changes.
func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) { m.log = l }
}

// WithSearchOptions sets the options passed to every route search.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(m *Menu) { m.search = opts }
}

// New returns a menu that edits n, reading from in and writing to out.
func New(n *core.Network, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{n: n, in: bufio.NewScanner(in), out: out, log: logging.Discard()}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run shows the menu until the user exits, input ends, or ctx is done.
// It returns nil on exit and end of input, ctx.Err() on cancellation, also
// when cancellation arrives while a prompt is waiting for input.
//
// Lines are read on a separate goroutine. After a cancellation that
// goroutine stays blocked in the reader until it returns a line or fails.
func (m *Menu) Run(ctx context.Context) error {
	stop := make(chan struct{})
	defer close(stop)
	m.lines, m.done = m.scan(stop), ctx.Done()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, err := m.readLine()
		if errors.Is(err, errCanceled) {
			return ctx.Err()
		}
		if errors.Is(err, errEOF) {
			m.println()
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.findRoute()
		case "2":
			err = m.listAirports()
		case "3":
			err = m.listRoutes()
		case "4":
			err = m.addRoute()
		case "5":
			err = m.addAirport()
		case "6":
			m.println("Exiting...")
			return nil
		default:
			m.println("Invalid choice. Please try again.")
		}

		if errors.Is(err, errCanceled) {
			return ctx.Err()
		}
		if errors.Is(err, errEOF) {
			m.println()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// scan feeds input lines to the returned channel until input ends or stop
// is closed. The channel is closed after the last line or a read error.
func (m *Menu) scan(stop <-chan struct{}) <-chan input {
	lines := make(chan input)
	go func() {
		defer close(lines)
		for m.in.Scan() {
			select {
			case lines <- input{text: m.in.Text()}:
			case <-stop:
				return
			}
		}
		if err := m.in.Err(); err != nil {
			select {
			case lines <- input{err: fmt.Errorf("cli: read: %w", err)}:
			case <-stop:
			}
		}
	}()

	return lines
}

func (m *Menu) printMenu() {
	m.println()
	m.println("=== Flight Route Optimization System ===")
	m.println("1. Find optimal route between airports")
	m.println("2. Display all airports")
	m.println("3. Display all routes")
	m.println("4. Add a new route")
	m.println("5. Add a new airport")
	m.println("6. Exit")
	m.print("Enter your choice (1-6): ")
}

// findRoute runs a search between two codes and prints the itinerary.
func (m *Menu) findRoute() error {
	from, err := m.prompt("\nEnter source airport code: ")
	if err != nil {
		return err
	}
	to, err := m.prompt("Enter destination airport code: ")
	if err != nil {
		return err
	}
	from, to = core.NormalizeCode(from), core.NormalizeCode(to)

	it, err := dijkstra.FindRoute(m.n, from, to, m.search...)
	if errors.Is(err, core.ErrAirportNotFound) {
		m.println("Invalid source or destination airport code")
		return nil
	}
	if err != nil {
		return err
	}
	m.log.Debug("route searched", "from", from, "to", to, "reachable", it.Reachable)

	if !it.Reachable {
		m.printf("No path exists from %s to %s\n", from, to)
		return nil
	}
	m.printf("\n=== Optimal route from %s to %s ===\n", from, to)
	m.printf("Path: %s\n", strings.Join(it.Codes, " -> "))
	m.printf("Total Distance: %d units\n", it.Totals.Distance)
	m.printf("Total Duration: %d minutes\n", it.Totals.Duration)
	m.printf("Total Cost: %d units\n", it.Totals.Cost)

	return nil
}

// addRoute reads two codes and three positive weights.
func (m *Menu) addRoute() error {
	m.println("\n=== Add a New Route ===")
	src, err := m.prompt("Enter source airport code: ")
	if err != nil {
		return err
	}
	dst, err := m.prompt("Enter destination airport code: ")
	if err != nil {
		return err
	}
	src, dst = core.NormalizeCode(src), core.NormalizeCode(dst)
	if !m.n.Has(src) || !m.n.Has(dst) {
		m.println("Error: One or both airports not found. Please add the airports first.")
		return nil
	}

	var w [3]uint32
	for i, p := range []string{
		"Enter distance (in units): ",
		"Enter duration (in minutes): ",
		"Enter cost (in units): ",
	} {
		text, err := m.prompt(p)
		if err != nil {
			return err
		}
		v, perr := strconv.ParseUint(text, 10, 32)
		if perr != nil || v == 0 {
			m.println("Error: Distance, duration, and cost must be positive values.")
			return nil
		}
		w[i] = uint32(v)
	}

	if err := m.n.AddRoute(src, dst, w[0], w[1], w[2]); err != nil {
		m.printf("Error: %v\n", err)
		return nil
	}
	m.log.Info("route added", "from", src, "to", dst, "distance", w[0], "duration", w[1], "cost", w[2])
	m.printf("Route from %s to %s added successfully!\n", src, dst)

	return nil
}

// addAirport reads a 2-3 character code and a name.
func (m *Menu) addAirport() error {
	m.println("\n=== Add a New Airport ===")
	code, err := m.prompt("Enter airport code (2-3 letters): ")
	if err != nil {
		return err
	}
	code = core.NormalizeCode(code)
	if err := core.ValidateCode(code); err != nil {
		m.println("Error: Airport code must be 2-3 letters.")
		return nil
	}
	if m.n.Has(code) {
		m.printf("Error: Airport with code %s already exists.\n", code)
		return nil
	}

	name, err := m.prompt("Enter airport name: ")
	if err != nil {
		return err
	}
	if name == "" {
		m.println("Error: Airport name must not be empty.")
		return nil
	}

	if _, err := m.n.AddAirport(code, name); err != nil {
		if errors.Is(err, core.ErrCapacityExceeded) {
			m.println("Error: Maximum number of airports reached")
			return nil
		}
		return err
	}
	m.log.Info("airport added", "code", code, "name", name)
	m.printf("Airport %s (%s) added successfully!\n", code, name)

	return nil
}

func (m *Menu) prompt(p string) (string, error) {
	m.print(p)
	return m.readLine()
}

func (m *Menu) readLine() (string, error) {
	select {
	case <-m.done:
		return "", errCanceled
	case in, ok := <-m.lines:
		if !ok {
			return "", errEOF
		}
		if in.err != nil {
			return "", in.err
		}
		return strings.TrimSpace(in.text), nil
	}
}

func (m *Menu) print(s string) { _, _ = io.WriteString(m.out, s) }

func (m *Menu) println(s ...string) {
	_, _ = io.WriteString(m.out, strings.Join(s, "")+"\n")
}

func (m *Menu) printf(format string, args ...any) { _, _ = fmt.Fprintf(m.out, format, args...) }
