package subscriber

// Creates the switch in the given state (daemon starts RECEIVING)
func NewReceiveSwitch(receiving bool) (new *ReceiveSwitch) {
	new = &ReceiveSwitch{}
	new.on.Store(receiving)
	return
}

// Flips the state and returns the new one
func (sw *ReceiveSwitch) Toggle() (receiving bool) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	receiving = !sw.on.Load()
	sw.on.Store(receiving)
	return
}

// Lock-free read for the receive loop. A flip in progress may be seen one poll late;
// that only delays suspension and never affects recorded data.
func (sw *ReceiveSwitch) Receiving() bool {
	return sw.on.Load()
}

// Name of the state for console output
func stateName(receiving bool) string {
	if receiving {
		return "RECEIVING"
	}
	return "SUSPENDED"
}
