package pinnacle

// Shapes of the Arcadia guest API responses. Only the fields the scraper
// reads are declared.

type apiLeague struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type participant struct {
	Name      string `json:"name"`
	Alignment string `json:"alignment"` // "home", "away" or "neutral"
}

type matchupParent struct {
	ID           int64         `json:"id"`
	StartTime    string        `json:"startTime"`
	Participants []participant `json:"participants"`
}

// Matchup entries come back once per market group; siblings share a parent.
type matchup struct {
	ID           int64          `json:"id"`
	ParentID     int64          `json:"parentId"`
	StartTime    string         `json:"startTime"`
	IsLive       bool           `json:"isLive"`
	Parent       *matchupParent `json:"parent"`
	Participants []participant  `json:"participants"`
}

type price struct {
	Designation string   `json:"designation"` // home/draw/away, over/under, yes/no
	Price       int      `json:"price"`       // American odds
	Points      *float64 `json:"points"`      // goal line on totals markets
}

type market struct {
	Type      string  `json:"type"`
	MatchupID int64   `json:"matchupId"`
	Period    int     `json:"period"`
	Prices    []price `json:"prices"`
}
