package common

// EventDevicesChanged is emitted by a Manager when the daemon reports that a
// device was added or removed. Signal is the daemon's signal name.
type EventDevicesChanged struct {
	Signal string
}
