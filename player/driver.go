package player

import "time"

// Driver feeds input to an adapter once per frame in place of a human.
type Driver func(a *Adapter, elapsed time.Duration)

// Strafe walks left and right, switching every period, keeps a slow turn
// going and pulls the trigger every fireEvery.
func Strafe(period, fireEvery time.Duration) Driver {
	if period <= 0 {
		period = 2 * time.Second
	}
	var lastShot time.Duration
	fired := false
	return func(a *Adapter, elapsed time.Duration) {
		dir := 1.0
		if (elapsed/period)%2 == 1 {
			dir = -1
		}
		a.MoveRight(dir)
		a.TurnAtRate(0.25)
		if fireEvery <= 0 {
			return
		}
		if !fired || elapsed-lastShot >= fireEvery {
			fired = true
			lastShot = elapsed
			a.Fire()
		}
	}
}
