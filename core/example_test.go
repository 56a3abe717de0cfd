package core_test

import (
	"fmt"

	"github.com/katalvlaran/airroute/core"
)

// ExampleNetwork builds a two-airport network with one leg each way.
func ExampleNetwork() {
	n := core.NewNetwork()
	_, _ = n.AddAirport("DEL", "Indira Gandhi International Airport")
	_, _ = n.AddAirport("BOM", "Chhatrapati Shivaji International Airport")
	_ = n.AddRoute("DEL", "BOM", 1148, 125, 7500)
	_ = n.AddRoute("BOM", "DEL", 1148, 130, 7800)

	for _, r := range n.Routes() {
		fmt.Printf("%s->%s %d km %d min %d\n", n.Code(r.From), n.Code(r.To), r.Distance, r.Duration, r.Cost)
	}
	// Output:
	// DEL->BOM 1148 km 125 min 7500
	// BOM->DEL 1148 km 130 min 7800
}
