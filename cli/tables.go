package cli

import (
	"fmt"
	"text/tabwriter"
)

func (m *Menu) listAirports() error {
	m.println("\n=== Available Airports ===")
	tw := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Code\tName")
	fmt.Fprintln(tw, "----\t----")
	for _, a := range m.n.Airports() {
		fmt.Fprintf(tw, "%s\t%s\n", a.Code, a.Name)
	}

	return tw.Flush()
}

func (m *Menu) listRoutes() error {
	m.println("\n=== Available Routes ===")
	tw := tabwriter.NewWriter(m.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "From\tTo\tDistance\tDuration\tCost")
	fmt.Fprintln(tw, "----\t--\t--------\t--------\t----")
	for _, r := range m.n.Routes() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n",
			m.n.Code(r.From), m.n.Code(r.To), r.Distance, r.Duration, r.Cost)
	}

	return tw.Flush()
}
