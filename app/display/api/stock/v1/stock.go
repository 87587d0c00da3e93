package v1

import (
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/catalog"
)

type GetStockNewsRequest struct {
	Ticker string `json:"ticker"`
}

type HealthRequest struct{}

type HealthReply struct {
	Status string `json:"status"`
}

type GetCatalogRequest struct{}

type GetCatalogReply struct {
	Trending    []catalog.Trending   `json:"trending"`
	Suggestions []catalog.Suggestion `json:"suggestions"`
}

type SuggestionsRequest struct {
	Q string `json:"q"`
}

type SuggestionsReply struct {
	Suggestions []catalog.Suggestion `json:"suggestions"`
}
