package scan

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ramp returns [0, 1, 2, ..., n-1] as floats.
func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestPreprocessStrideTwoLengths(t *testing.T) {
	// Sweep lengths around the real sensor's 1080-sample sweep. With stride 2
	// every case must come out at exactly 540 samples or fail.
	cases := []struct {
		name    string
		samples int
		wantErr bool
	}{
		{"exact", 1080, false},
		{"one extra", 1081, false},
		{"two extra", 1082, false},
		{"many extra", 1200, false},
		{"just short", 1078, true},
		{"very short", 600, true},
		{"empty", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Preprocess(ramp(tc.samples), 2, 540)
			if tc.wantErr {
				require.Error(t, err)
				var insufficient *InsufficientSamplesError
				require.True(t, errors.As(err, &insufficient))
				assert.Equal(t, 540, insufficient.Want)
				assert.Less(t, insufficient.Have, 540)
				return
			}
			require.NoError(t, err)
			assert.Len(t, out, 540)
		})
	}
}

func TestPreprocessSymmetricTrim(t *testing.T) {
	// Decimated length 540+2k trims exactly k readings from each end.
	for _, k := range []int{1, 2, 7, 50} {
		in := ramp(540 + 2*k)
		out, err := Preprocess(in, 1, 540)
		require.NoError(t, err, "k=%d", k)
		require.Len(t, out, 540, "k=%d", k)
		assert.Equal(t, float64(k), out[0], "k=%d: first kept element", k)
		assert.Equal(t, float64(539+k), out[539], "k=%d: last kept element", k)
	}
}

func TestPreprocessOddExcessDropsTrailing(t *testing.T) {
	// A 541-element sweep has no centered trim (excess/2 == 0); the single
	// surplus reading falls off the tail.
	out, err := Preprocess(ramp(541), 1, 540)
	require.NoError(t, err)
	require.Len(t, out, 540)
	if diff := cmp.Diff(ramp(540), out); diff != "" {
		t.Errorf("unexpected vector (-want +got):\n%s", diff)
	}

	// Odd excess above the trim threshold: 543 -> cut 1 each end -> 541 ->
	// drop trailing. Elements 1..540 survive.
	out, err = Preprocess(ramp(543), 1, 540)
	require.NoError(t, err)
	require.Len(t, out, 540)
	assert.Equal(t, 1.0, out[0])
	assert.Equal(t, 540.0, out[539])
}

func TestPreprocessDecimationOrder(t *testing.T) {
	out, err := Preprocess([]float64{10, 11, 12, 13, 14, 15}, 2, 3)
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{10, 12, 14}, out); diff != "" {
		t.Errorf("unexpected vector (-want +got):\n%s", diff)
	}

	out, err = Preprocess([]float64{10, 11, 12, 13, 14, 15, 16}, 3, 2)
	require.NoError(t, err)
	// Decimated to {10, 13, 16}, odd excess drops 16.
	if diff := cmp.Diff([]float64{10, 13}, out); diff != "" {
		t.Errorf("unexpected vector (-want +got):\n%s", diff)
	}
}

func TestPreprocessPure(t *testing.T) {
	in := ramp(1085)
	inCopy := append([]float64(nil), in...)

	first, err := Preprocess(in, 2, 540)
	require.NoError(t, err)
	second, err := Preprocess(in, 2, 540)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated runs diverged (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(inCopy, in); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestPreprocessRejectsBadArguments(t *testing.T) {
	_, err := Preprocess(ramp(10), 0, 5)
	assert.Error(t, err)

	_, err = Preprocess(ramp(10), 1, 0)
	assert.Error(t, err)
}

func TestLatestSlot(t *testing.T) {
	var slot Latest

	_, ok := slot.Load()
	assert.False(t, ok, "empty slot must report absence")

	first := &Frame{FrameID: "laser", Ranges: ramp(4)}
	slot.Store(first)
	got, ok := slot.Load()
	require.True(t, ok)
	assert.Same(t, first, got)

	second := &Frame{FrameID: "laser", Ranges: ramp(8)}
	slot.Store(second)
	got, ok = slot.Load()
	require.True(t, ok)
	assert.Same(t, second, got, "store must replace the frame wholesale")
}
