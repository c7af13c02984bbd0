package harness_test

import (
	"errors"
	"fmt"
	"os"
	"time"

	"GLTutorial/harness"
)

type upload struct {
	target harness.BufferTarget
	size   int
}

type boundTexture struct {
	unit   int
	img    *harness.Image
	params harness.TextureParams
}

type attribPointer struct {
	location                   int32
	components, stride, offset int
}

// fakeDriver records every call and hands out increasing handles.
type fakeDriver struct {
	next    harness.Handle
	live    map[harness.Handle]string
	created map[string]int
	deleted map[string]int
	journal []string

	uploads  []upload
	attribs  []attribPointer
	textures []boundTexture

	attribLocations  map[string]int32
	uniformLocations map[string]int32
	intUniforms      map[int32]int32
	floatUniforms    []float32

	failCompile map[harness.Stage]bool
	compiles    map[harness.Stage]int
	failLink    bool
	// failDrawAt makes Err report a failure after that many draws. Zero never fails.
	failDrawAt int

	clears       int
	drawArrays   []int
	drawElements []int
	doubleFrees  int
}

func newFakeDriver() *fakeDriver {

	return &fakeDriver{
		live:    map[harness.Handle]string{},
		created: map[string]int{},
		deleted: map[string]int{},
		attribLocations: map[string]int32{
			"position": 0,
			"color":    1,
			"texcoord": 2,
		},
		uniformLocations: map[string]int32{
			"texKitten": 0,
			"texPuppy":  1,
			"mixFactor": 2,
		},
		intUniforms: map[int32]int32{},
		failCompile: map[harness.Stage]bool{},
		compiles:    map[harness.Stage]int{},
	}

}

func (d *fakeDriver) create(kind string) harness.Handle {

	d.next++
	d.live[d.next] = kind
	d.created[kind]++
	d.journal = append(d.journal, "create "+kind)

	return d.next

}

func (d *fakeDriver) destroy(kind string, h harness.Handle) {

	if got, ok := d.live[h]; !ok || got != kind {
		d.doubleFrees++
		return
	}

	delete(d.live, h)
	d.deleted[kind]++
	d.journal = append(d.journal, "delete "+kind)

}

func (d *fakeDriver) draws() int {
	return len(d.drawArrays) + len(d.drawElements)
}

func (d *fakeDriver) CreateVertexArray() harness.Handle  { return d.create("vertex array") }
func (d *fakeDriver) DeleteVertexArray(h harness.Handle) { d.destroy("vertex array", h) }
func (d *fakeDriver) DeleteBuffer(h harness.Handle)      { d.destroy("buffer", h) }
func (d *fakeDriver) DeleteShader(h harness.Handle)      { d.destroy("shader", h) }
func (d *fakeDriver) DeleteProgram(h harness.Handle)     { d.destroy("program", h) }
func (d *fakeDriver) DeleteTexture(h harness.Handle)     { d.destroy("texture", h) }

func (d *fakeDriver) UseProgram(harness.Handle) {}

func (d *fakeDriver) SetUniformInt(location int32, v int32) { d.intUniforms[location] = v }
func (d *fakeDriver) SetUniformFloat(_ int32, v float32)    { d.floatUniforms = append(d.floatUniforms, v) }
func (d *fakeDriver) Clear(r, g, b, a float32)              { d.clears++ }
func (d *fakeDriver) DrawArrays(count int)                  { d.drawArrays = append(d.drawArrays, count) }
func (d *fakeDriver) DrawElements(count int)                { d.drawElements = append(d.drawElements, count) }

func (d *fakeDriver) CreateBuffer(target harness.BufferTarget, data []byte) harness.Handle {

	d.uploads = append(d.uploads, upload{target: target, size: len(data)})

	return d.create("buffer")

}

func (d *fakeDriver) CompileShader(stage harness.Stage, source string) (harness.Handle, error) {

	d.compiles[stage]++

	if d.failCompile[stage] {
		return 0, &harness.ShaderError{Stage: stage, Log: "syntax error"}
	}

	return d.create("shader"), nil

}

func (d *fakeDriver) LinkProgram(shaders []harness.Handle, fragOutput string) (harness.Handle, error) {

	if d.failLink {
		return 0, &harness.LinkError{Log: "unresolved varying"}
	}

	return d.create("program"), nil

}

func (d *fakeDriver) AttribLocation(_ harness.Handle, name string) int32 {

	if loc, ok := d.attribLocations[name]; ok {
		return loc
	}

	return -1

}

func (d *fakeDriver) VertexAttrib(location int32, components, stride, offset int) {
	d.attribs = append(d.attribs, attribPointer{location, components, stride, offset})
}

func (d *fakeDriver) UniformLocation(_ harness.Handle, name string) int32 {

	if loc, ok := d.uniformLocations[name]; ok {
		return loc
	}

	return -1

}

func (d *fakeDriver) CreateTexture(unit int, img *harness.Image, params harness.TextureParams) harness.Handle {

	d.textures = append(d.textures, boundTexture{unit: unit, img: img, params: params})

	return d.create("texture")

}

var errOutOfMemory = errors.New("out of memory")

func (d *fakeDriver) Err() error {

	if d.failDrawAt > 0 && d.draws() >= d.failDrawAt {
		return errOutOfMemory
	}

	return nil

}

type fakeWindow struct {
	driver     *fakeDriver
	driverErr  error
	polls      int
	quitOnPoll int
	presents   int
	destroyed  int
}

func (w *fakeWindow) LoadDriver() (harness.Driver, error) {

	if w.driverErr != nil {
		return nil, w.driverErr
	}

	return w.driver, nil

}

func (w *fakeWindow) PollEvent() harness.Event {

	w.polls++

	if w.quitOnPoll > 0 && w.polls >= w.quitOnPoll {
		return harness.Event{Kind: harness.EventQuit}
	}

	if w.polls%2 == 0 {
		return harness.Event{Kind: harness.EventOther}
	}

	return harness.Event{Kind: harness.EventNone}

}

func (w *fakeWindow) Present() { w.presents++ }
func (w *fakeWindow) Destroy() { w.destroyed++ }

// fakePlatform advances its clock by one tick on every Elapsed call.
type fakePlatform struct {
	window     *fakeWindow
	windowErr  error
	config     harness.WindowConfig
	inits      int
	terminates int
	tick       time.Duration
	now        time.Duration
	readings   []time.Duration
}

func (p *fakePlatform) Init() error {
	p.inits++
	return nil
}

func (p *fakePlatform) CreateWindow(cfg harness.WindowConfig) (harness.Window, error) {

	p.config = cfg

	if p.windowErr != nil {
		return nil, p.windowErr
	}

	return p.window, nil

}

func (p *fakePlatform) Elapsed() time.Duration {

	p.now += p.tick
	p.readings = append(p.readings, p.now)

	return p.now

}

func (p *fakePlatform) Terminate() { p.terminates++ }

type fakeImages map[string]*harness.Image

func (f fakeImages) Load(path string) (*harness.Image, error) {

	img, ok := f[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}

	return img, nil

}

func solidImage(w, h int, r, g, b byte) *harness.Image {

	pix := make([]byte, 0, w*h*3)
	for i := 0; i < w*h; i++ {
		pix = append(pix, r, g, b)
	}

	return &harness.Image{Width: w, Height: h, Pix: pix}

}

type rig struct {
	driver   *fakeDriver
	window   *fakeWindow
	platform *fakePlatform
	images   fakeImages
}

func newRig(quitOnPoll int) *rig {

	driver := newFakeDriver()
	window := &fakeWindow{driver: driver, quitOnPoll: quitOnPoll}

	return &rig{
		driver:   driver,
		window:   window,
		platform: &fakePlatform{window: window, tick: 16 * time.Millisecond},
		images: fakeImages{
			"kitten.png": solidImage(3, 2, 255, 0, 0),
			"puppy.png":  solidImage(5, 5, 0, 0, 255),
		},
	}

}

func (r *rig) harness(opts harness.Options) *harness.Harness {
	return harness.New(r.platform, r.images, opts)
}
