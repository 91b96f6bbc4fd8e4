// Package leagues holds the static registry of supported competitions and
// the provider-specific identifiers needed to fetch each one.
package leagues

import "sort"

// League describes one competition across all providers.
type League struct {
	Key         string
	Country     string
	DisplayName string
	// Priority 1 leagues are always scraped; priority 2 only when the run
	// includes secondary competitions.
	Priority   int
	PinnacleID int64
	JacksPath  string
	TotoID     string
}

var registry = map[string]League{
	"eredivisie": {
		Key: "eredivisie", Country: "Netherlands", DisplayName: "Eredivisie",
		Priority: 1, PinnacleID: 1928, JacksPath: "football/netherlands/eredivisie", TotoID: "1176",
	},
	"keuken_kampioen_divisie": {
		Key: "keuken_kampioen_divisie", Country: "Netherlands", DisplayName: "Keuken Kampioen Divisie",
		Priority: 1, PinnacleID: 1929, JacksPath: "football/netherlands/eerste_divisie", TotoID: "1053",
	},
	"premier_league": {
		Key: "premier_league", Country: "England", DisplayName: "Premier League",
		Priority: 1, PinnacleID: 1980, JacksPath: "football/england/premier_league", TotoID: "8",
	},
	"championship": {
		Key: "championship", Country: "England", DisplayName: "Championship",
		Priority: 2, PinnacleID: 2627, JacksPath: "football/england/championship", TotoID: "70",
	},
	"bundesliga": {
		Key: "bundesliga", Country: "Germany", DisplayName: "Bundesliga",
		Priority: 1, PinnacleID: 2196, JacksPath: "football/germany/bundesliga", TotoID: "35",
	},
	"2_bundesliga": {
		Key: "2_bundesliga", Country: "Germany", DisplayName: "2. Bundesliga",
		Priority: 2, PinnacleID: 6436, JacksPath: "football/germany/2_bundesliga", TotoID: "44",
	},
	"la_liga": {
		Key: "la_liga", Country: "Spain", DisplayName: "La Liga",
		Priority: 1, PinnacleID: 2627, JacksPath: "football/spain/la_liga", TotoID: "17",
	},
	"serie_a": {
		Key: "serie_a", Country: "Italy", DisplayName: "Serie A",
		Priority: 1, PinnacleID: 2436, JacksPath: "football/italy/serie_a", TotoID: "23",
	},
	"ligue_1": {
		Key: "ligue_1", Country: "France", DisplayName: "Ligue 1",
		Priority: 1, PinnacleID: 2664, JacksPath: "football/france/ligue_1", TotoID: "34",
	},
	"jupiler_pro_league": {
		Key: "jupiler_pro_league", Country: "Belgium", DisplayName: "Jupiler Pro League",
		Priority: 2, PinnacleID: 2439, JacksPath: "football/belgium/jupiler_pro_league", TotoID: "9",
	},
	"primeira_liga": {
		Key: "primeira_liga", Country: "Portugal", DisplayName: "Primeira Liga",
		Priority: 2, PinnacleID: 2411, JacksPath: "football/portugal/primeira_liga", TotoID: "42",
	},
}

// Get returns the league for a key.
func Get(key string) (League, bool) {
	l, ok := registry[key]
	return l, ok
}

// ByPriority returns leagues whose priority falls in [min, max], sorted by
// key for deterministic iteration.
func ByPriority(min, max int) []League {
	var out []League
	for _, l := range registry {
		if l.Priority >= min && l.Priority <= max {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ByCountry returns all leagues for a country, sorted by key.
func ByCountry(country string) []League {
	var out []League
	for _, l := range registry {
		if l.Country == country {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
