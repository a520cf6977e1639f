//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Time float

func hash21(p vec2) float {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453123)
}

func valueNoise(p vec2) float {
	i := floor(p)
	f := fract(p)
	u := f * f * (3.0 - 2.0*f)

	a := hash21(i)
	b := hash21(i + vec2(1, 0))
	c := hash21(i + vec2(0, 1))
	d := hash21(i + vec2(1, 1))

	return mix(mix(a, b, u.x), mix(c, d, u.x), u.y)
}

func fbm(p vec2) float {
	value := 0.0
	amplitude := 0.5

	for i := 0; i < 4; i++ {
		value += amplitude * valueNoise(p)
		p *= 2.0
		amplitude *= 0.5
	}

	return value
}

func heightMask(y float) float {
	return smoothstep(0.0, 0.7, 1.0-2.0*abs(y-0.5))
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	pos := dstPos.xy / imageDstSize()

	n := fbm(vec2(pos.x*2.2+Time*0.06, pos.y*5.5))

	dispX := pos.x + sin(pos.y*4.0+Time*0.5)*0.1*n

	flow := 0.5 + 0.5*sin(dispX*6.0+n*3.0+Time*0.55)

	intensity := flow * heightMask(pos.y) * smoothstep(0.2, 0.7, n)

	shimmer := fbm(pos*9.0 + vec2(Time*0.3, -Time*0.2))
	intensity *= mix(0.7, 1.0, shimmer)

	t1 := 0.5 + 0.5*sin(Time*0.21)
	green := vec3(0.02, 0.8, 0.35)
	teal := vec3(0.03, 0.72, 0.65)
	blue := vec3(0.08, 0.32, 0.95)

	hue := mix(mix(green, teal, t1), blue, smoothstep(0.0, 0.8, abs(pos.x-0.5)*2.0))

	sky := mix(vec3(0.004, 0.004, 0.02), vec3(0.02, 0.03, 0.1), pos.y)

	// cheap star sprinkle
	cell := floor(pos * 60.0)
	star := step(0.985, hash21(cell))
	sky += vec3(star * 0.6)

	out := mix(sky, hue, clamp(intensity*1.1, 0.0, 0.85))

	return vec4(out, 1)
}
