package types

// Marker is the renderable projection of a single point.
type Marker struct {
	ID       int      `json:"id"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Category Category `json:"category"`
	Color    string   `json:"color"`
	Tooltip  string   `json:"tooltip"`
}

// HeatSample feeds the heat overlay; weight comes from the category table.
type HeatSample struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Weight float64 `json:"weight"`
}

// ViewState is the full derived render state. It is rebuilt wholesale on
// every data change and never patched in place.
type ViewState struct {
	Markers      []Marker         `json:"markers"`
	Counts       map[Category]int `json:"counts"`
	Total        int              `json:"total"`
	PendingCount int              `json:"pendingCount"`
	HeatSamples  []HeatSample     `json:"heatSamples,omitempty"`
	Filters      []Category       `json:"filters"`
	Lang         Lang             `json:"lang"`
}

// DeepLink is the instruction produced by a shareable ?point=<id> URL.
type DeepLink struct {
	PointID       int     `json:"pointId"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	OpenDetail    bool    `json:"openDetail"`
	SettleDelayMS int     `json:"settleDelayMs"`
}
