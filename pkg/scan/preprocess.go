package scan

import "fmt"

// InsufficientSamplesError reports a sweep too short to fill the model input
// after decimation and trimming.
type InsufficientSamplesError struct {
	Have int
	Want int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("insufficient scan samples: have %d, want %d", e.Have, e.Want)
}

// Preprocess reduces a raw range sweep to exactly targetLen samples: it keeps
// every stride-th reading in order, trims half the excess from each end, and
// drops one trailing element when the excess is odd. It returns an
// *InsufficientSamplesError when the decimated sweep cannot fill targetLen.
//
// The input is never modified and the result is always freshly allocated;
// equal inputs produce equal outputs.
func Preprocess(samples []float64, stride, targetLen int) ([]float64, error) {
	if stride < 1 {
		return nil, fmt.Errorf("scan stride must be at least 1, got %d", stride)
	}
	if targetLen < 1 {
		return nil, fmt.Errorf("scan target length must be at least 1, got %d", targetLen)
	}

	decimated := make([]float64, 0, (len(samples)+stride-1)/stride)
	for i := 0; i < len(samples); i += stride {
		decimated = append(decimated, samples[i])
	}

	if cut := (len(decimated) - targetLen) / 2; cut > 0 {
		decimated = decimated[cut : len(decimated)-cut]
	}
	if len(decimated) == targetLen+1 {
		decimated = decimated[:targetLen]
	}

	if len(decimated) < targetLen {
		return nil, &InsufficientSamplesError{Have: len(decimated), Want: targetLen}
	}
	return decimated, nil
}
