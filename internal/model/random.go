package model

import "strings"

// Kind selects the generator used by the custom endpoint.
type Kind int

const (
	KindNumber Kind = iota + 1
	KindDecimal
	KindString
)

// ParseKind maps the request "type" field to a Kind, ignoring case.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "number":
		return KindNumber, true
	case "decimal":
		return KindDecimal, true
	case "string":
		return KindString, true
	default:
		return 0, false
	}
}

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// IntegerRequest holds the optional bounds of GET /random/number.
type IntegerRequest struct {
	Min *int64
	Max *int64
}

// StringRequest holds the optional length of GET /random/string.
// A nil Length means the default of 8.
type StringRequest struct {
	Length *int
}

// CustomRequest represents a POST /random/custom body.
// Pointer fields distinguish a missing value from an explicit zero.
type CustomRequest struct {
	Type     string `json:"type"`
	Min      *int64 `json:"min"`
	Max      *int64 `json:"max"`
	Decimals *int   `json:"decimals"`
	Length   *int   `json:"length"`
}

// CustomResponse wraps a generated value of any kind.
type CustomResponse struct {
	Result any `json:"result"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
