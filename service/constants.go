package service

const (
	// Thousands-separated, two decimals: 1,672.88
	displayFormat = "#,###.##"

	monthsPerYear = 12
)
