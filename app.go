package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	Fps = 60
)

// viewerApp glues the viewer core to an SDL window and translates SDL events
// into viewer calls. All of it runs on the SDL control thread via sdl.Do.
type viewerApp struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	viewer *Viewer
	demod  *PipelineSource[complex128, float64]

	dirty bool
}

func MainLoop(fileName string, rate float64, fftSize, zoomLevel int) {
	done := make(chan struct{})
	renderLoopComplete := make(chan struct{})
	sdl.Main(func() {
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				panic(err)
			}
		})
		defer sdl.Do(func() { sdl.Quit() })

		var app *viewerApp
		var err error
		sdl.Do(func() {
			app, err = newViewerApp(fileName, rate, fftSize, zoomLevel)
		})
		if err != nil {
			log.Fatal(err)
		}
		defer sdl.Do(func() { app.Destroy() })

		go RenderLoop(app, done, renderLoopComplete)
		EventLoop(app, done)
	})
	log.Info("Waiting for render loop completion")
	<-renderLoopComplete
}

func newViewerApp(fileName string, rate float64, fftSize, zoomLevel int) (*viewerApp, error) {
	source, err := loadSource(fileName, rate)
	if err != nil {
		return nil, err
	}

	viewer := NewViewer(source)
	viewer.AddTrack(NewSpectrogramTrack(source))
	// Both derived tracks share the same upstream complex source.
	viewer.AddTrack(NewTraceTrack[complex128](NewScaledSource(source, 20)))
	demod := NewQuadDemodSource(source, 5, false)
	viewer.AddTrack(NewTraceTrack[float64](demod))
	viewer.SetFFTAndZoom(fftSize, zoomLevel)

	viewer.OnZoomIn = func() {
		viewer.SetFFTAndZoom(viewer.view.fftSize, viewer.view.zoomLevel*2)
	}
	viewer.OnZoomOut = func() {
		zoom := viewer.view.zoomLevel / 2
		if zoom < 1 {
			zoom = 1
		}
		viewer.SetFFTAndZoom(viewer.view.fftSize, zoom)
	}
	viewer.OnTimeSelectionChanged = func(seconds float64) {
		log.Infof("Selection: %v s", seconds)
	}

	window, err := sdl.CreateWindow(fileName, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		800, 600, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	app := &viewerApp{window, renderer, viewer, demod, true}
	viewer.OnRepaint = func() { app.dirty = true }
	return app, nil
}

func (this *viewerApp) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			this.viewer.Resize(e.Data1, e.Data2)
		}
	case *sdl.MouseMotionEvent:
		this.viewer.HandleMouse(&MouseEvent{MouseMove, sdl.Point{e.X, e.Y}, 0})
	case *sdl.MouseButtonEvent:
		t := MousePress
		if e.Type == sdl.MOUSEBUTTONUP {
			t = MouseRelease
		}
		this.viewer.HandleMouse(&MouseEvent{t, sdl.Point{e.X, e.Y}, e.Button})
	case *sdl.MouseWheelEvent:
		keyboardState := sdl.GetModState()
		if !this.viewer.HandleWheel(e.Y, keyboardState&sdl.KMOD_CTRL > 0) {
			this.viewer.ScrollBy(int64(-e.Y) * this.viewer.hScroll.singleStep)
		}
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return
		}
		switch e.Keysym.Sym {
		case sdl.K_c:
			this.viewer.EnableCursors(!this.viewer.CursorsEnabled())
		case sdl.K_e:
			if this.viewer.CursorsEnabled() {
				if err := exportChart("selection.html", this.demod, this.viewer.SelectedSamples()); err != nil {
					log.Errorf("Export failed: %v", err)
				}
			}
		}
	}
}

func EventLoop(app *viewerApp, done chan struct{}) {
outer:
	for {
		var event sdl.Event
		sdl.Do(func() {
			event = sdl.WaitEvent()
		})
		for event != nil {
			switch event.(type) {
			case *sdl.QuitEvent:
				done <- struct{}{}
				break outer
			default:
				sdl.Do(func() {
					app.handleEvent(event)
				})
			}
			sdl.Do(func() {
				event = sdl.PollEvent()
			})
		}
	}
}

func RenderLoop(app *viewerApp, done, complete chan struct{}) {
	ticker := time.NewTicker(1000 / Fps * time.Millisecond)
outer:
	for {
		select {
		case <-ticker.C:
			sdl.Do(func() {
				if app.dirty {
					app.dirty = false
					app.viewer.Paint(app.renderer)
				}
			})
		case <-done:
			break outer
		}
	}
	complete <- struct{}{}
}

func (this *viewerApp) Destroy() {
	this.renderer.Destroy()
	this.window.Destroy()
}
