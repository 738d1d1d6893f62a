package core

import "time"

// RuntimeConfig contains host-level settings passed to a match at startup.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic serves (0 = time-based in hosts)
}

// Resolve fills unset fields: TickRate from the nominal tick interval and
// Seed from the clock.
func (c RuntimeConfig) Resolve(nominal time.Duration) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = TickRateFor(nominal)
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// TickRateFor converts a tick interval to ticks per second, rounded to nearest.
func TickRateFor(interval time.Duration) int {
	if interval <= 0 {
		return 60
	}
	return int((time.Second + interval/2) / interval)
}

// Interval returns the duration of one tick at this config's rate.
func (c RuntimeConfig) Interval() time.Duration {
	if c.TickRate <= 0 {
		return 16 * time.Millisecond
	}
	return time.Second / time.Duration(c.TickRate)
}
