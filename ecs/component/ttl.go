package component

import "time"

// TTL destroys its entity once Remaining runs out.
type TTL struct {
	Remaining time.Duration
}

var TTLComponent = NewComponent[TTL]()
