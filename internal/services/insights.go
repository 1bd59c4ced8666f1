package services

import "investwise-api/internal/models"

var quotes = []models.Quote{
	{Text: "The stock market is a device for transferring money from the impatient to the patient.", Author: "Warren Buffett"},
	{Text: "The individual investor should act consistently as an investor and not as a speculator.", Author: "Benjamin Graham"},
	{Text: "Know what you own, and know why you own it.", Author: "Peter Lynch"},
	{Text: "The four most dangerous words in investing are: this time it's different.", Author: "Sir John Templeton"},
	{Text: "Compound interest is the eighth wonder of the world.", Author: "Albert Einstein"},
	{Text: "Don't look for the needle in the haystack. Just buy the haystack.", Author: "John C. Bogle"},
}

var marketInsights = []models.MarketInsight{
	{
		Title:    "SIP discipline beats market timing",
		Category: "behavior",
		Summary:  "Investors who kept their SIPs running through corrections historically ended with more units at lower average cost than those who paused.",
	},
	{
		Title:    "Large caps anchor volatile portfolios",
		Category: "allocation",
		Summary:  "A large cap core reduces drawdowns while mid and small cap satellites add long-term growth.",
	},
	{
		Title:    "Debt funds for short horizons",
		Category: "allocation",
		Summary:  "Money needed within three years belongs in debt or hybrid funds rather than equity.",
	},
	{
		Title:    "ELSS has the shortest lock-in under Section 80C",
		Category: "tax",
		Summary:  "ELSS funds carry a three-year lock-in and qualify for the ₹1.5 lakh Section 80C deduction.",
	},
	{
		Title:    "International funds hedge rupee depreciation",
		Category: "diversification",
		Summary:  "A small allocation to overseas equity diversifies country risk and benefits when the rupee weakens.",
	},
}

// Quotes returns the investing quotes shown by the frontend.
func Quotes() []models.Quote {
	return append([]models.Quote(nil), quotes...)
}

// MarketInsights returns the static market commentary cards.
func MarketInsights() []models.MarketInsight {
	return append([]models.MarketInsight(nil), marketInsights...)
}
