package api

type BOMEntry struct {
	Quantity int    `json:"quantity"`
	UnitRef  string `json:"unit_ref,omitempty"`
}

type Package struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	ListedPrice int64               `json:"listed_price"`
	Components  map[string]BOMEntry `json:"components"`
}
