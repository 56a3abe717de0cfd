package store

import "github.com/katalvlaran/airroute/core"

// DefaultAirports is the starting airport set, in identifier order.
var DefaultAirports = []core.Airport{
	{Code: "DEL", Name: "Indira Gandhi International Airport"},
	{Code: "BOM", Name: "Chhatrapati Shivaji International Airport"},
	{Code: "MAA", Name: "Chennai International Airport"},
	{Code: "BLR", Name: "Kempegowda International Airport"},
	{Code: "HYD", Name: "Rajiv Gandhi International Airport"},
	{Code: "CCU", Name: "Netaji Subhas Chandra Bose International Airport"},
	{Code: "COK", Name: "Cochin International Airport"},
}

// SeedRoute is a code-level route record.
type SeedRoute struct {
	From, To                 string
	Distance, Duration, Cost uint32
}

// DefaultRoutes is the starting route set. Distances in km, durations in minutes.
var DefaultRoutes = []SeedRoute{
	{"DEL", "BOM", 1148, 125, 7500},
	{"DEL", "MAA", 1760, 150, 8500},
	{"DEL", "BLR", 1740, 150, 8200},
	{"DEL", "CCU", 1300, 120, 7000},

	{"BOM", "DEL", 1148, 130, 7800},
	{"BOM", "BLR", 845, 90, 5000},
	{"BOM", "HYD", 620, 70, 4500},

	{"MAA", "DEL", 1760, 155, 8700},
	{"MAA", "BLR", 284, 45, 3000},
	{"MAA", "COK", 500, 60, 3500},

	{"BLR", "DEL", 1740, 155, 8500},
	{"BLR", "BOM", 845, 95, 5200},
	{"BLR", "MAA", 284, 50, 3200},
	{"BLR", "HYD", 500, 60, 3800},

	{"HYD", "BOM", 620, 75, 4700},
	{"HYD", "BLR", 500, 65, 4000},

	{"CCU", "DEL", 1300, 125, 7200},
	{"CCU", "MAA", 1370, 130, 7800},

	{"COK", "MAA", 500, 65, 3700},
	{"COK", "BLR", 360, 55, 3500},
}

// Seed adds DefaultAirports and DefaultRoutes to n.
func Seed(n *core.Network) error {
	for _, a := range DefaultAirports {
		if _, err := n.AddAirport(a.Code, a.Name); err != nil {
			return err
		}
	}
	for _, r := range DefaultRoutes {
		if err := n.AddRoute(r.From, r.To, r.Distance, r.Duration, r.Cost); err != nil {
			return err
		}
	}

	return nil
}
