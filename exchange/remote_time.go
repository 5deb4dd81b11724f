// Copyright (c) 2025 BVK Chaitanya

package exchange

import "time"

// RemoteTime is a timestamp reported by the exchange, which may differ from
// the local clock.
type RemoteTime struct {
	time.Time
}

// RemoteTimeFromMilli converts an exchange timestamp in milliseconds since
// the unix epoch. Zero maps to the zero time.
func RemoteTimeFromMilli(ms int64) RemoteTime {
	if ms == 0 {
		return RemoteTime{}
	}
	return RemoteTime{Time: time.UnixMilli(ms)}
}
