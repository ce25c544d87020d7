package service

import (
	"math"

	"github.com/randomapi/randomapi-go/internal/model"
	"github.com/randomapi/randomapi-go/internal/random"
)

const (
	DefaultStringLength = 8
	MinStringLength     = 1
	MaxStringLength     = 1024

	DefaultDecimals = 2
	MaxDecimals     = 15
)

// Validation messages returned to clients.
const (
	msgMinExceedsMax  = "min cannot exceed max"
	msgLengthRange    = "length must be between 1 and 1024"
	msgDecimalsRange  = "decimals must be between 0 and 15"
	msgTypeMissing    = "a valid type must be specified"
	msgTypeInvalid    = "type must be 'number', 'decimal', or 'string'"
	msgBoundsRequired = "min and max are required for type=number"
)

// ValidationError rejects a request before any value is generated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// Recorder receives generation outcomes, usually for metrics.
type Recorder interface {
	RecordGenerated(kind string)
	RecordValidationError(kind string)
}

type nopRecorder struct{}

func (nopRecorder) RecordGenerated(string) {}
func (nopRecorder) RecordValidationError(string) {}

// RandomService validates generation requests and draws values from a
// shared generator.
type RandomService struct {
	gen      random.Generator
	recorder Recorder
}

// NewRandomService creates a RandomService. A nil recorder disables recording.
func NewRandomService(gen random.Generator, recorder Recorder) *RandomService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &RandomService{gen: gen, recorder: recorder}
}

// GenerateInteger returns a value in [min, max] when both bounds are set,
// otherwise a value in [0, 2^31-1).
func (s *RandomService) GenerateInteger(req model.IntegerRequest) (int64, error) {
	kind := model.KindNumber.String()

	if req.Min == nil || req.Max == nil {
		s.recorder.RecordGenerated(kind)
		return int64(s.gen.Int32()), nil
	}

	if *req.Min > *req.Max {
		s.recorder.RecordValidationError(kind)
		return 0, invalid(msgMinExceedsMax)
	}

	s.recorder.RecordGenerated(kind)
	return s.gen.Int64InRange(*req.Min, *req.Max), nil
}

// GenerateDecimal returns a value in [0.0, 1.0).
func (s *RandomService) GenerateDecimal() float64 {
	s.recorder.RecordGenerated(model.KindDecimal.String())
	return s.gen.Float64()
}

// GenerateString returns an alphanumeric string of the requested length.
func (s *RandomService) GenerateString(req model.StringRequest) (string, error) {
	kind := model.KindString.String()

	length := intOrDefault(req.Length, DefaultStringLength)
	if length < MinStringLength || length > MaxStringLength {
		s.recorder.RecordValidationError(kind)
		return "", invalid(msgLengthRange)
	}

	s.recorder.RecordGenerated(kind)
	return s.gen.String(length), nil
}

// GenerateByKind dispatches a custom request on its type.
func (s *RandomService) GenerateByKind(req model.CustomRequest) (model.CustomResponse, error) {
	if req.Type == "" {
		s.recorder.RecordValidationError("unknown")
		return model.CustomResponse{}, invalid(msgTypeMissing)
	}

	kind, ok := model.ParseKind(req.Type)
	if !ok {
		s.recorder.RecordValidationError("unknown")
		return model.CustomResponse{}, invalid(msgTypeInvalid)
	}

	switch kind {
	case model.KindNumber:
		if req.Min == nil || req.Max == nil {
			s.recorder.RecordValidationError(kind.String())
			return model.CustomResponse{}, invalid(msgBoundsRequired)
		}
		v, err := s.GenerateInteger(model.IntegerRequest{Min: req.Min, Max: req.Max})
		if err != nil {
			return model.CustomResponse{}, err
		}
		return model.CustomResponse{Result: v}, nil

	case model.KindDecimal:
		decimals := intOrDefault(req.Decimals, DefaultDecimals)
		if decimals < 0 || decimals > MaxDecimals {
			s.recorder.RecordValidationError(kind.String())
			return model.CustomResponse{}, invalid(msgDecimalsRange)
		}
		return model.CustomResponse{Result: roundHalfEven(s.GenerateDecimal(), decimals)}, nil

	case model.KindString:
		v, err := s.GenerateString(model.StringRequest{Length: req.Length})
		if err != nil {
			return model.CustomResponse{}, err
		}
		return model.CustomResponse{Result: v}, nil
	}

	// ParseKind only yields the kinds handled above.
	return model.CustomResponse{}, invalid(msgTypeInvalid)
}

// roundHalfEven rounds v to the given number of fractional digits, sending
// midpoints to the even neighbour.
func roundHalfEven(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.RoundToEven(v*scale) / scale
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil.
func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
