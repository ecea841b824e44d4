package imaging

// Classifier constructors for the grids built by this package. The returned
// values are pure functions over a single pixel value and are assignable to
// detection.Classifier.

// DarkerThan classifies values strictly below t as line pixels. Use with
// LuminanceGrid for dark ink on a light background.
func DarkerThan(t float64) func(float64) bool {
	return func(v float64) bool { return v < t }
}

// BrighterThan classifies values strictly above t as line pixels. Use with
// GradientGrid, or with LuminanceGrid for light lines on a dark background.
func BrighterThan(t float64) func(float64) bool {
	return func(v float64) bool { return v > t }
}

// AtMost classifies values less than or equal to t as line pixels. Use with
// ColorDistanceGrid, where t is the allowed Lab distance to the target color.
func AtMost(t float64) func(float64) bool {
	return func(v float64) bool { return v <= t }
}

// AtLeast classifies values greater than or equal to t as line pixels.
func AtLeast(t float64) func(float64) bool {
	return func(v float64) bool { return v >= t }
}
