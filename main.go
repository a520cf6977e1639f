package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 960
	ScreenHeight float64 = 540
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var PprofEnabled bool

var FlagRenderScale float64
var FlagWorkers int

func init() {
	flag.Float64Var(&FlagRenderScale, "scale", 0.5, "render resolution as a fraction of the window size")
	flag.IntVar(&FlagWorkers, "workers", 0, "shading goroutines, 0 means one per cpu")
}

type App struct {
	ShowDebugConsole bool
	Paused           bool

	Renderer *SkyRenderer
}

func NewApp() *App {
	a := new(App)

	params, err := LoadSkyParams()
	if err != nil {
		ErrorLogger.Fatalf("failed to load sky params : %v", err)
	}

	shader, err := NewSkyShader(params)
	if err != nil {
		ErrorLogger.Fatalf("failed to build sky shader : %v", err)
	}

	a.Renderer = NewSkyRenderer(shader)
	a.Renderer.RenderScale = Clamp(FlagRenderScale, 0.1, 1)
	if FlagWorkers > 0 {
		a.Renderer.Workers = FlagWorkers
	}

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	if !a.Paused {
		UpdateGlobalTimer()
	}

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("aurorasky FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrintf("time", "%.2fs x%.2g", GlobalTimeSeconds(), GlobalTimeScale())
	DebugPrintf("render scale", "%.2f", a.Renderer.RenderScale)
	DebugPrintf("shade", "%v", a.Renderer.ShadeTime())

	// ==========================
	// param saving and loading
	// ==========================
	if IsKeyJustPressed(ReloadParamsKey) {
		a.ReloadParams()
	}

	if IsKeyJustPressed(SaveParamsKey) {
		if err := SaveSkyParams(a.Renderer.Shader.Params); err != nil {
			ErrorLogger.Printf("failed to save sky params : %v", err)
		} else {
			InfoLogger.Printf("saved sky params to %s", SkyParamsPath)
		}
	}

	if IsKeyJustPressed(CopyParamsKey) {
		if jsonBytes, err := SkyParamsToJson(a.Renderer.Shader.Params); err == nil {
			ClipboardWriteText(string(jsonBytes))
		}
	}

	// ==========================
	// time controls
	// ==========================
	if IsKeyJustPressed(PauseKey) {
		a.Paused = !a.Paused
	}

	if IsKeyJustPressed(ResetTimeKey) {
		ResetGlobalTimer()
	}

	if IsKeyJustPressed(TimeSlowerKey) {
		SetGlobalTimeScale(GlobalTimeScale() * 0.5)
	}

	if IsKeyJustPressed(TimeFasterKey) {
		SetGlobalTimeScale(GlobalTimeScale() * 2)
	}

	// ==========================
	// render scale
	// ==========================
	const scaleFirstRate = time.Millisecond * 300
	const scaleRepeatRate = time.Millisecond * 60

	if HandleKeyRepeat(scaleFirstRate, scaleRepeatRate, ScaleDownKey) {
		a.Renderer.RenderScale = Clamp(a.Renderer.RenderScale-0.05, 0.1, 1)
	}

	if HandleKeyRepeat(scaleFirstRate, scaleRepeatRate, ScaleUpKey) {
		a.Renderer.RenderScale = Clamp(a.Renderer.RenderScale+0.05, 0.1, 1)
	}

	// ==========================
	// debug showing
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	return nil
}

func (a *App) ReloadParams() {
	params, err := LoadSkyParams()
	if err != nil {
		ErrorLogger.Printf("failed to load sky params : %v", err)
		return
	}

	shader, err := NewSkyShader(params)
	if err != nil {
		ErrorLogger.Printf("failed to build sky shader : %v", err)
		return
	}

	a.Renderer.Shader = shader
	InfoLogger.Print("reloaded sky params")
}

func (a *App) Draw(dst *eb.Image) {
	bounds := dst.Bounds()

	a.Renderer.Render(bounds.Dx(), bounds.Dy(), GlobalTimeSeconds())
	a.Renderer.Draw(dst)

	if IsKeyJustPressed(ScreenshotKey) {
		if name, err := TakeScreenshot(dst); err == nil {
			InfoLogger.Printf("saved screenshot to %s", name)
		} else {
			ErrorLogger.Printf("failed to take screenshot : %v", err)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	InitClipboardManager()

	app := NewApp()

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("aurorasky")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
