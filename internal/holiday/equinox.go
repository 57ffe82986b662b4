package holiday

// Equinox days follow the empirical formula published in 新こよみ便利帳
// (Japan Coast Guard Hydrographic Department). The coefficients are
// calibrated for 1980-2150; other years are computed the same way and are
// not authoritative.
//
// (year-1980)/4 must stay integer division: the constants assume it, and a
// real division shifts the result in about one year out of four.

// SpringEquinoxDay returns the March day of the vernal equinox holiday.
func SpringEquinoxDay(year int) int {
	base := 20.8431
	if year > 2099 {
		base = 21.851
	}
	return equinox(base, year)
}

// AutumnEquinoxDay returns the September day of the autumnal equinox holiday.
func AutumnEquinoxDay(year int) int {
	base := 23.2488
	if year > 2099 {
		base = 24.2488
	}
	return equinox(base, year)
}

func equinox(base float64, year int) int {
	elapsed := year - 1980
	return int(base + 0.242194*float64(elapsed) - float64(elapsed/4))
}
