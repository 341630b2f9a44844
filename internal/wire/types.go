package wire

import "fmt"

// Code identifies one of the core's externally visible failure kinds. Every
// error that crosses the Orchestrator/Store boundary is one of these four.
type Code string

const (
	// CodeInvalidArgument marks malformed input such as a non-positive size.
	CodeInvalidArgument Code = "InvalidArgument"
	// CodeFailedPrecondition marks an operation called before Initialize or
	// UseHashArrayForSorting, or before the upstream hash array is finalized.
	CodeFailedPrecondition Code = "FailedPrecondition"
	// CodeOutOfRange marks an index outside the valid bounds for the array
	// or permutation being addressed.
	CodeOutOfRange Code = "OutOfRange"
	// CodeInternal marks a server-side failure unrelated to caller input.
	CodeInternal Code = "Internal"
)

// StatusError is the error type returned by every Store operation that can
// fail. The Orchestrator treats any StatusError other than a transport
// failure as a fatal protocol bug and aborts the sort.
type StatusError struct {
	Code    Code
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewStatusError builds a StatusError with a formatted message.
func NewStatusError(code Code, format string, args ...any) *StatusError {
	return &StatusError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// InitializeRequest carries the already-encrypted array to install.
type InitializeRequest struct {
	Cells [][]byte `json:"cells"`
}

// InitializeResponse confirms the install and echoes the resulting size.
type InitializeResponse struct {
	Success   bool `json:"success"`
	ArraySize int  `json:"array_size"`
}

// UseHashArrayResponse confirms the copy from the upstream hash array.
type UseHashArrayResponse struct {
	Success   bool `json:"success"`
	ArraySize int  `json:"array_size"`
}

// GetPairResponse carries the two ciphertexts at the requested indices.
type GetPairResponse struct {
	EncryptedA []byte `json:"encrypted_a"`
	EncryptedB []byte `json:"encrypted_b"`
}

// WritePairRequest carries the freshly re-encrypted pair to install.
type WritePairRequest struct {
	IndexA        int    `json:"index_a"`
	IndexB        int    `json:"index_b"`
	NewEncryptedA []byte `json:"new_encrypted_a"`
	NewEncryptedB []byte `json:"new_encrypted_b"`
}

// WritePairResponse confirms the write.
type WritePairResponse struct {
	Success bool `json:"success"`
}

// GetMateResponse carries one value of the pseudorandom permutation.
type GetMateResponse struct {
	Mate int `json:"mate"`
}

// GetFinalArrayResponse drains the sorted (or abandoned) array plus metrics.
type GetFinalArrayResponse struct {
	EncryptedArray    [][]byte `json:"encrypted_array"`
	TotalComparisons  int64    `json:"total_comparisons"`
	TotalWrites       int64    `json:"total_writes"`
}
