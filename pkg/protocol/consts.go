package protocol

const (
	// One signed 32-bit value per datagram, no header
	SampleLen int = 4
)
