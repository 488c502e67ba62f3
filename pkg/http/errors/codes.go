package errors

// Stable messages carried in error envelopes, keyed by status.
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgUnprocessable    = "unprocessable"
	MsgInternalError    = "internal server error"
	MsgUpstreamError    = "upstream error"
	MsgUnavailable      = "service unavailable"
)

// MessageFor returns the stable message for an HTTP status.
func MessageFor(status int) string {
	switch status {
	case 400:
		return MsgBadRequest
	case 404:
		return MsgNotFound
	case 405:
		return MsgMethodNotAllowed
	case 422:
		return MsgUnprocessable
	case 502:
		return MsgUpstreamError
	case 503:
		return MsgUnavailable
	default:
		return MsgInternalError
	}
}
