package errors

// ErrorCode identifies the failing pipeline stage
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_CONFIG
	ErrorCode_STORE
	ErrorCode_SOURCE
	ErrorCode_CLASSIFICATION
	ErrorCode_PERSISTENCE
	ErrorCode_NOTIFICATION
)

// String returns the code name used in log lines
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_CONFIG:
		return "CONFIG"
	case ErrorCode_STORE:
		return "STORE"
	case ErrorCode_SOURCE:
		return "SOURCE"
	case ErrorCode_CLASSIFICATION:
		return "CLASSIFICATION"
	case ErrorCode_PERSISTENCE:
		return "PERSISTENCE"
	case ErrorCode_NOTIFICATION:
		return "NOTIFICATION"
	default:
		return "UNKNOWN"
	}
}
