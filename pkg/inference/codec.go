package inference

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	msg "github.com/IhabMohamed/deep-motion-planning/pkg/flatbuffers/deep_motion_planning/msg"
)

// EncodeRequest serializes a policy input vector into an InferenceRequest
// flatbuffer. The builder is reset first, so the returned slice is only
// valid until the next call with the same builder.
func EncodeRequest(b *flatbuffers.Builder, input []float64) []byte {
	b.Reset()

	msg.InferenceRequestStartInputVector(b, len(input))
	for i := len(input) - 1; i >= 0; i-- {
		b.PrependFloat64(input[i])
	}
	vec := b.EndVector(len(input))

	msg.InferenceRequestStart(b)
	msg.InferenceRequestAddInput(b, vec)
	b.Finish(msg.InferenceRequestEnd(b))
	return b.FinishedBytes()
}

// DecodeRequest extracts the policy input vector from an InferenceRequest
// flatbuffer.
func DecodeRequest(data []byte) []float64 {
	req := msg.GetRootAsInferenceRequest(data, 0)
	input := make([]float64, req.InputLength())
	for i := range input {
		input[i] = req.Input(i)
	}
	return input
}

// EncodeResponse serializes an InferenceResponse flatbuffer. A non-empty
// errText marks the response as failed; linear and angular are still
// written so the wire format stays uniform.
func EncodeResponse(b *flatbuffers.Builder, linear, angular float64, errText string) []byte {
	b.Reset()

	var errOff flatbuffers.UOffsetT
	if errText != "" {
		errOff = b.CreateString(errText)
	}

	msg.InferenceResponseStart(b)
	msg.InferenceResponseAddLinear(b, linear)
	msg.InferenceResponseAddAngular(b, angular)
	if errText != "" {
		msg.InferenceResponseAddError(b, errOff)
	}
	b.Finish(msg.InferenceResponseEnd(b))
	return b.FinishedBytes()
}

// DecodeResponse extracts the velocity pair from an InferenceResponse
// flatbuffer, surfacing an engine-reported failure as an error.
func DecodeResponse(data []byte) (float64, float64, error) {
	resp := msg.GetRootAsInferenceResponse(data, 0)
	if errText := resp.Error(); len(errText) > 0 {
		return 0, 0, fmt.Errorf("inference engine error: %s", errText)
	}
	return resp.Linear(), resp.Angular(), nil
}
