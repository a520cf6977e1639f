//go:build ignore

// ====================================================
// standalone gpu sketch of the aurora
//
// usage :
// 	go run gpu_preview.go
//
// It approximates the cpu shader with a Kage shader.
// Press F5 to hot reload aurora_shader.go.
// ====================================================

package main

import (
	"fmt"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	ScreenWidth  float64 = 960
	ScreenHeight float64 = 540
)

type App struct {
	Shader          *eb.Shader
	ShaderLoadError error
	DeltaTime       float64
}

func NewApp() *App {
	a := new(App)
	return a
}

func (a *App) LoadShader() (*eb.Shader, error) {
	shaderCode, err := os.ReadFile("aurora_shader.go")
	if err != nil {
		return nil, err
	}

	shader, err := eb.NewShader(shaderCode)
	if err != nil {
		return nil, err
	}

	return shader, nil
}

func (a *App) Update() error {
	if ebi.IsKeyJustPressed(eb.KeyF5) {
		if shader, err := a.LoadShader(); err == nil {
			a.Shader = shader
			a.ShaderLoadError = nil
		} else {
			a.ShaderLoadError = err
		}
	}

	a.DeltaTime += 1.0 / 60.0

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	if a.Shader != nil {
		op := &eb.DrawRectShaderOptions{}

		op.Uniforms = make(map[string]any)
		op.Uniforms["Time"] = a.DeltaTime

		dst.DrawRectShader(int(ScreenWidth), int(ScreenHeight), a.Shader, op)
	} else {
		if a.ShaderLoadError == nil {
			ebu.DebugPrint(dst, "shader is not loaded")
		}
	}

	if a.ShaderLoadError != nil {
		ebu.DebugPrint(dst, fmt.Sprintf("error :%v", a.ShaderLoadError))
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = float64(outsideWidth)
	ScreenHeight = float64(outsideHeight)

	return outsideWidth, outsideHeight
}

func main() {
	app := NewApp()

	if shader, err := app.LoadShader(); err == nil {
		app.Shader = shader
	} else {
		app.ShaderLoadError = err
	}

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowTitle("aurora gpu sketch")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
