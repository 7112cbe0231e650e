package component

import (
	"math"
	"time"
)

// Sensing defaults, matching a stock pawn sensor.
const (
	DefaultSightRadius     = 5000.0
	DefaultPeripheralAngle = math.Pi / 2
	DefaultResightInterval = 500 * time.Millisecond
)

// Sensor describes what an observer can see.
type Sensor struct {
	SightRadius float64
	// HalfAngle is the half-width of the vision cone in radians.
	HalfAngle       float64
	ResightInterval time.Duration
}

// DefaultSensor returns the stock vision settings.
func DefaultSensor() Sensor {
	return Sensor{
		SightRadius:     DefaultSightRadius,
		HalfAngle:       DefaultPeripheralAngle,
		ResightInterval: DefaultResightInterval,
	}
}

var SensorComponent = NewComponent[Sensor]()
