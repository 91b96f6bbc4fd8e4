package toto

import "encoding/json"

// Event list (POST /event/request).

type listResponse struct {
	EventGroups []eventGroup `json:"eventGroups"`
}

type eventGroup struct {
	Events []listEvent `json:"events"`
}

type listEvent struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"startTime"`
	LiveNow   bool   `json:"liveNow"`
	Teams     []team `json:"teams"`
}

type team struct {
	Name string `json:"name"`
	Side string `json:"side"` // "HOME" or "AWAY"
}

// Event detail (GET /cms/content).

type detailResponse struct {
	Items []detailItem `json:"items"`
}

type detailItem struct {
	Data struct {
		Event struct {
			Markets []apiMarket `json:"markets"`
		} `json:"event"`
	} `json:"data"`
}

// Line and decimal come back as either numbers or strings depending on the
// market template, hence json.Number.
type apiMarket struct {
	GroupCode    string       `json:"groupCode"`
	TemplateName string       `json:"templateName"`
	Line         json.Number  `json:"line"`
	Outcomes     []apiOutcome `json:"outcomes"`
}

type apiOutcome struct {
	Name   string     `json:"name"`
	Label  string     `json:"label"`
	Active bool       `json:"active"`
	Prices []apiPrice `json:"prices"`
}

type apiPrice struct {
	Decimal json.Number `json:"decimal"`
}
