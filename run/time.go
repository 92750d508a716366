// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"fmt"
	"time"
)

// cpuTime reports the CPU time used so far. Where the system
// cannot tell us, it reports zero and no timing is printed.
var cpuTime = func() (user, sys time.Duration) { return 0, 0 }

// timer measures the CPU time of executing one line.
type timer struct {
	user, sys time.Duration
	wall      time.Time
}

func startTimer() timer {
	user, sys := cpuTime()
	return timer{user, sys, time.Now()}
}

// String formats the elapsed time as "(1.2ms real, 1ms user, 0s sys)".
func (t timer) String() string {
	user, sys := cpuTime()
	return fmt.Sprintf("(%s real, %s user, %s sys)",
		time.Since(t.wall).Round(time.Microsecond), (user - t.user).Round(time.Microsecond), (sys - t.sys).Round(time.Microsecond))
}
