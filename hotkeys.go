package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadParamsKey eb.Key = eb.KeyF5
	SaveParamsKey   eb.Key = eb.KeyF10

	ShowDebugConsoleKey = eb.KeyF1

	PauseKey       eb.Key = eb.KeySpace
	ResetTimeKey   eb.Key = eb.KeyR
	TimeSlowerKey  eb.Key = eb.KeyBracketLeft
	TimeFasterKey  eb.Key = eb.KeyBracketRight
	ScaleDownKey   eb.Key = eb.KeyMinus
	ScaleUpKey     eb.Key = eb.KeyEqual

	ScreenshotKey eb.Key = eb.KeyP
	CopyParamsKey eb.Key = eb.KeyC
)
