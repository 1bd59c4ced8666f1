package advisor

import "investwise-api/internal/models"

// Catalog is an immutable set of mutual funds grouped by category.
// The zero value is an empty catalog.
type Catalog struct {
	funds map[models.Category][]models.FundRecord
}

// NewCatalog groups funds by category, preserving their relative order.
func NewCatalog(funds []models.FundRecord) Catalog {
	grouped := make(map[models.Category][]models.FundRecord)
	for _, f := range funds {
		grouped[f.Category] = append(grouped[f.Category], f)
	}
	return Catalog{funds: grouped}
}

// Has reports whether the catalog carries at least one fund of category.
func (c Catalog) Has(category models.Category) bool {
	return len(c.funds[category]) > 0
}

// Funds returns a copy of the funds of one category in catalog order.
func (c Catalog) Funds(category models.Category) []models.FundRecord {
	src := c.funds[category]
	out := make([]models.FundRecord, len(src))
	copy(out, src)
	return out
}

// List returns every fund, categories in canonical order.
func (c Catalog) List() []models.FundRecord {
	var out []models.FundRecord
	for _, cat := range models.Categories {
		out = append(out, c.funds[cat]...)
	}
	return out
}

// Best returns the highest rated fund of a category, ties broken by the
// higher 3-year return and then by catalog order.
func (c Catalog) Best(category models.Category) (models.FundRecord, bool) {
	funds := c.funds[category]
	if len(funds) == 0 {
		return models.FundRecord{}, false
	}
	best := funds[0]
	for _, f := range funds[1:] {
		if f.Rating > best.Rating || (f.Rating == best.Rating && f.Returns3Y > best.Returns3Y) {
			best = f
		}
	}
	return best, true
}

// DefaultCatalog returns the built-in fund catalog. It has no ELSS funds.
func DefaultCatalog() Catalog {
	return NewCatalog(defaultFunds)
}

var defaultFunds = []models.FundRecord{
	// Large cap
	{Category: models.LargeCap, Name: "Axis Bluechip Fund", Rating: 4.0, Returns3Y: 10.8, Returns5Y: 12.9, Returns10Y: 13.5, AUM: 33250, StocksCount: 45, ExpenseRatio: 0.62, ExitLoad: 1.0, MinInvestment: 500, FundManager: "Shreyash Devalkar"},
	{Category: models.LargeCap, Name: "ICICI Prudential Bluechip Fund", Rating: 5.0, Returns3Y: 18.9, Returns5Y: 19.6, Returns10Y: 14.6, AUM: 60177, StocksCount: 72, ExpenseRatio: 0.91, ExitLoad: 1.0, MinInvestment: 100, FundManager: "Anish Tawakley"},
	{Category: models.LargeCap, Name: "Mirae Asset Large Cap Fund", Rating: 4.0, Returns3Y: 13.2, Returns5Y: 15.8, Returns10Y: 15.2, AUM: 39480, StocksCount: 82, ExpenseRatio: 0.54, ExitLoad: 1.0, MinInvestment: 500, FundManager: "Gaurav Misra"},
	{Category: models.LargeCap, Name: "Nippon India Large Cap Fund", Rating: 5.0, Returns3Y: 21.5, Returns5Y: 20.1, Returns10Y: 14.2, AUM: 35310, StocksCount: 63, ExpenseRatio: 0.74, ExitLoad: 1.0, MinInvestment: 100, FundManager: "Sailesh Raj Bhan"},

	// Mid cap
	{Category: models.MidCap, Name: "Kotak Emerging Equity Fund", Rating: 4.0, Returns3Y: 22.3, Returns5Y: 25.1, Returns10Y: 18.9, AUM: 48130, StocksCount: 78, ExpenseRatio: 0.41, ExitLoad: 1.0, MinInvestment: 100, FundManager: "Atul Bhole"},
	{Category: models.MidCap, Name: "HDFC Mid-Cap Opportunities Fund", Rating: 5.0, Returns3Y: 26.4, Returns5Y: 27.8, Returns10Y: 18.2, AUM: 72610, StocksCount: 74, ExpenseRatio: 0.77, ExitLoad: 1.0, MinInvestment: 100, FundManager: "Chirag Setalvad"},
	{Category: models.MidCap, Name: "Motilal Oswal Midcap Fund", Rating: 5.0, Returns3Y: 30.2, Returns5Y: 31.5, Returns10Y: 17.8, AUM: 18640, StocksCount: 28, ExpenseRatio: 0.58, ExitLoad: 1.0, MinInvestment: 500, FundManager: "Niket Shah"},

	// Small cap
	{Category: models.SmallCap, Name: "SBI Small Cap Fund", Rating: 4.0, Returns3Y: 18.5, Returns5Y: 27.2, Returns10Y: 21.0, AUM: 31280, StocksCount: 61, ExpenseRatio: 0.69, ExitLoad: 1.0, MinInvestment: 500, FundManager: "R. Srinivasan"},
	{Category: models.SmallCap, Name: "Nippon India Small Cap Fund", Rating: 5.0, Returns3Y: 28.7, Returns5Y: 34.6, Returns10Y: 22.1, AUM: 56470, StocksCount: 214, ExpenseRatio: 0.68, ExitLoad: 1.0, MinInvestment: 100, FundManager: "Samir Rachh"},
	{Category: models.SmallCap, Name: "Axis Small Cap Fund", Rating: 4.0, Returns3Y: 20.1, Returns5Y: 29.3, Returns10Y: 20.4, AUM: 22140, StocksCount: 105, ExpenseRatio: 0.55, ExitLoad: 1.0, MinInvestment: 500, FundManager: "Shreyash Devalkar"},

	// Debt
	{Category: models.Debt, Name: "HDFC Corporate Bond Fund", Rating: 4.0, Returns3Y: 7.2, Returns5Y: 7.5, Returns10Y: 8.1, AUM: 32170, StocksCount: 156, ExpenseRatio: 0.36, ExitLoad: 0.0, MinInvestment: 100, FundManager: "Anupam Joshi"},
	{Category: models.Debt, Name: "ICICI Prudential Corporate Bond Fund", Rating: 5.0, Returns3Y: 7.4, Returns5Y: 7.1, Returns10Y: 8.0, AUM: 28750, StocksCount: 212, ExpenseRatio: 0.34, ExitLoad: 0.0, MinInvestment: 100, FundManager: "Manish Banthia"},
	{Category: models.Debt, Name: "Aditya Birla Sun Life Corporate Bond Fund", Rating: 4.0, Returns3Y: 7.6, Returns5Y: 7.3, Returns10Y: 8.3, AUM: 23460, StocksCount: 189, ExpenseRatio: 0.33, ExitLoad: 0.0, MinInvestment: 100, FundManager: "Kaustubh Gupta"},

	// Hybrid
	{Category: models.Hybrid, Name: "ICICI Prudential Balanced Advantage Fund", Rating: 5.0, Returns3Y: 14.2, Returns5Y: 13.6, Returns10Y: 12.1, AUM: 58480, StocksCount: 118, ExpenseRatio: 0.86, ExitLoad: 1.0, MinInvestment: 500, FundManager: "Sankaran Naren"},
	{Category: models.Hybrid, Name: "HDFC Balanced Advantage Fund", Rating: 5.0, Returns3Y: 22.1, Returns5Y: 21.0, Returns10Y: 15.0, AUM: 85380, StocksCount: 135, ExpenseRatio: 0.77, ExitLoad: 1.0, MinInvestment: 100, FundManager: "Gopal Agrawal"},
	{Category: models.Hybrid, Name: "SBI Equity Hybrid Fund", Rating: 4.0, Returns3Y: 12.9, Returns5Y: 14.8, Returns10Y: 12.7, AUM: 70430, StocksCount: 64, ExpenseRatio: 0.72, ExitLoad: 1.0, MinInvestment: 1000, FundManager: "R. Srinivasan"},

	// International
	{Category: models.International, Name: "Motilal Oswal Nasdaq 100 FoF", Rating: 4.0, Returns3Y: 15.3, Returns5Y: 20.1, Returns10Y: 0, AUM: 5210, StocksCount: 101, ExpenseRatio: 0.20, ExitLoad: 1.0, MinInvestment: 500, FundManager: "Rakesh Shetty"},
	{Category: models.International, Name: "Franklin U.S. Opportunities Fund", Rating: 3.0, Returns3Y: 9.8, Returns5Y: 14.5, Returns10Y: 15.1, AUM: 3540, StocksCount: 87, ExpenseRatio: 0.58, ExitLoad: 1.0, MinInvestment: 500, FundManager: "Sandeep Manam"},
	{Category: models.International, Name: "PGIM India Global Equity Opportunities Fund", Rating: 3.0, Returns3Y: 6.5, Returns5Y: 12.8, Returns10Y: 11.9, AUM: 1320, StocksCount: 41, ExpenseRatio: 1.38, ExitLoad: 0.5, MinInvestment: 1000, FundManager: "Ojasvi Khicha"},
}
