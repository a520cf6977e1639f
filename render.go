package main

import (
	"runtime"
	"sync"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// SkyRenderer shades a pixel buffer on the cpu every frame
// and blits it to an offscreen image that gets scaled to the
// window. RenderScale trades sharpness for speed.
type SkyRenderer struct {
	Shader *SkyShader

	RenderScale float64
	Workers     int

	width  int
	height int
	pixels []byte
	buffer *eb.Image

	lastShadeTime time.Duration
}

func NewSkyRenderer(shader *SkyShader) *SkyRenderer {
	return &SkyRenderer{
		Shader:      shader,
		RenderScale: 0.5,
		Workers:     runtime.NumCPU(),
	}
}

func (r *SkyRenderer) Render(screenW, screenH int, t float64) {
	w := max(int(f64(screenW)*r.RenderScale), 1)
	h := max(int(f64(screenH)*r.RenderScale), 1)

	if w != r.width || h != r.height {
		if r.buffer != nil {
			r.buffer.Deallocate()
		}
		r.width, r.height = w, h
		r.pixels = make([]byte, w*h*4)
		r.buffer = eb.NewImageWithOptions(
			RectWH(w, h),
			&eb.NewImageOptions{Unmanaged: true},
		)
	}

	start := time.Now()
	ShadePixels(r.Shader, r.pixels, w, h, t, r.Workers)
	r.lastShadeTime = time.Since(start)

	r.buffer.WritePixels(r.pixels)
}

func (r *SkyRenderer) Draw(dst *eb.Image) {
	if r.buffer == nil {
		return
	}

	bounds := dst.Bounds()

	op := &eb.DrawImageOptions{}
	op.GeoM.Scale(
		f64(bounds.Dx())/f64(r.width),
		f64(bounds.Dy())/f64(r.height),
	)
	op.Filter = eb.FilterLinear
	dst.DrawImage(r.buffer, op)
}

func (r *SkyRenderer) ShadeTime() time.Duration {
	return r.lastShadeTime
}

// ShadePixels fills a w x h rgba buffer by evaluating the
// shader once per pixel. Rows are striped across workers.
// Pixels are independent, so the worker count and the
// evaluation order never change the result.
func ShadePixels(shader *SkyShader, pixels []byte, w, h int, t float64, workers int) {
	workers = Clamp(workers, 1, h)

	var wg sync.WaitGroup
	wg.Add(workers)

	for worker := 0; worker < workers; worker++ {
		go func(startRow int) {
			defer wg.Done()

			for y := startRow; y < h; y += workers {
				rowOffset := y * w * 4

				for x := 0; x < w; x++ {
					coord := FPt(
						(f64(x)+0.5)/f64(w),
						(f64(y)+0.5)/f64(h),
					)

					clr, _ := shader.Shade(coord, t)

					i := rowOffset + x*4
					pixels[i+0] = LinearToSRGB8(clr.R)
					pixels[i+1] = LinearToSRGB8(clr.G)
					pixels[i+2] = LinearToSRGB8(clr.B)
					// The shader's alpha is for host side
					// compositing. For direct display the
					// buffer stays opaque.
					pixels[i+3] = 0xff
				}
			}
		}(worker)
	}

	wg.Wait()
}
