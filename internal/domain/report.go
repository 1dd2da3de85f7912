package domain

import "github.com/shopspring/decimal"

const (
	WarningCodeStoreUnreadable    = "STORE_UNREADABLE"
	StoreUnreadableWarningMessage = "Store file could not be read; continuing with an empty expense list."
)

type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type StoreUnreadableWarningDetails struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type Summary struct {
	Categories []CategoryTotal `json:"categories"`
	Total      decimal.Decimal `json:"total"`
}
