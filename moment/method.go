package moment

// Method selects the bias-correction convention for weighted covariance.
type Method int

const (
	// MethodUnbiased applies the effective-sample-size correction
	// 1/(1 - Σ wᵢ²) to the weighted cross-product. For uniform weights this
	// degenerates to the familiar m/(m-1) sample-covariance scaling.
	MethodUnbiased Method = iota

	// MethodML is the maximum-likelihood estimator: the raw weighted
	// cross-product with no bias correction.
	MethodML
)

// String returns a human-readable name for the method.
func (mt Method) String() string {
	switch mt {
	case MethodUnbiased:
		return "unbiased"
	case MethodML:
		return "ml"
	default:
		return "unknown"
	}
}
