package domain

import "github.com/shopspring/decimal"

// StageSummary is one group of the opportunity stage report.
type StageSummary struct {
	Stage       string
	Count       int64
	TotalAmount decimal.Decimal
}
