package protocol

import "errors"

// Returned when a datagram cannot hold a full sample
var ErrShortPayload = errors.New("payload shorter than sample length")
