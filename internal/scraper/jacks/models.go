package jacks

import "encoding/json"

// Kambi listView response shapes.

type listViewResponse struct {
	Events []listViewItem `json:"events"`
}

type listViewItem struct {
	Event     apiEvent   `json:"event"`
	BetOffers []betOffer `json:"betOffers"`
}

type apiEvent struct {
	ID          int64  `json:"id"`
	HomeName    string `json:"homeName"`
	AwayName    string `json:"awayName"`
	Start       string `json:"start"`
	LiveBetting bool   `json:"liveBetting"`
}

type betOffer struct {
	// Goal line; a number, or a string for split lines like "2.5/3".
	Line         json.RawMessage `json:"line"`
	BetOfferType struct {
		Name string `json:"name"`
	} `json:"betOfferType"`
	Outcomes []outcome `json:"outcomes"`
}

type outcome struct {
	Label  string `json:"label"`
	Odds   int64  `json:"odds"` // decimal odds in thousandths
	Status string `json:"status"`
}
