package appearance

// Blackbody color estimation for stars: Wien's displacement law gives
// the peak emission wavelength for a surface temperature, and a
// piecewise visible-spectrum mapping turns that into an RGB tint.

const wienConstant = 2.89e-3 // meters·kelvin

// PeakWavelength returns the blackbody peak emission wavelength in
// nanometers for a surface temperature in kelvin.
func PeakWavelength(tempK float64) float64 {
	if tempK <= 0 {
		return 0
	}
	return wienConstant / tempK * 1e9
}

// BlackbodyColor approximates the RGB tint of a blackbody at the given
// temperature. Peaks outside the visible band clamp to the nearest
// edge, so very hot bodies read blue-white and very cool ones deep
// red.
func BlackbodyColor(tempK float64) [3]float64 {
	return WavelengthColor(PeakWavelength(tempK))
}

// WavelengthColor maps a wavelength in nanometers onto RGB, after
// Bruton's visible-spectrum approximation. Inputs outside 380–780 nm
// clamp to the band edges.
func WavelengthColor(nm float64) [3]float64 {
	switch {
	case nm < 380:
		nm = 380
	case nm > 780:
		nm = 780
	}

	var r, g, b float64
	switch {
	case nm < 440:
		r = (440 - nm) / (440 - 380)
		b = 1
	case nm < 490:
		g = (nm - 440) / (490 - 440)
		b = 1
	case nm < 510:
		g = 1
		b = (510 - nm) / (510 - 490)
	case nm < 580:
		r = (nm - 510) / (580 - 510)
		g = 1
	case nm < 645:
		r = 1
		g = (645 - nm) / (645 - 580)
	default:
		r = 1
	}

	// Intensity falls off toward the band edges.
	factor := 1.0
	switch {
	case nm < 420:
		factor = 0.3 + 0.7*(nm-380)/(420-380)
	case nm > 700:
		factor = 0.3 + 0.7*(780-nm)/(780-700)
	}
	return [3]float64{r * factor, g * factor, b * factor}
}
