package common

// Embed colors used across features
const (
	ColorPrimary = 0x2DD4BF // teal, default views
	ColorSuccess = 0x22C55E // green, completed / for
	ColorDanger  = 0xEF4444 // red, failed / against
	ColorWarning = 0xF59E0B // amber, pending / attention
	ColorNeutral = 0x6B7280 // gray, inactive
)
