package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var globalTimer time.Duration

var globalTimeScale float64 = 1

func UpdateDelta() time.Duration {
	return time.Second / time.Duration(eb.TPS())
}

func UpdateGlobalTimer() {
	globalTimer += time.Duration(f64(UpdateDelta()) * globalTimeScale)
}

func GlobalTimerNow() time.Duration {
	return globalTimer
}

// GlobalTimeSeconds is the time input of the sky shader.
func GlobalTimeSeconds() float64 {
	return globalTimer.Seconds()
}

func ResetGlobalTimer() {
	globalTimer = 0
}

func GlobalTimeScale() float64 {
	return globalTimeScale
}

func SetGlobalTimeScale(scale float64) {
	globalTimeScale = Clamp(scale, 0.125, 8)
}
