package utils

import (
	"math/rand"
	"time"
)

// RandomDelay sleeps for a random duration between min and max.
// Used between page advances so the portal is not hammered.
func RandomDelay(min, max time.Duration) {
	diff := max - min
	if diff <= 0 {
		time.Sleep(min)
		return
	}
	time.Sleep(min + time.Duration(rand.Int63n(int64(diff))))
}
