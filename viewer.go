package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// Viewer coordinates the ordered track list, the shared scroll and zoom
// state and the cursor overlay. Every pixel-to-sample conversion in the
// program goes through here. It owns the tracks and the overlay; the main
// sample source belongs to whoever constructed the viewer.
type Viewer struct {
	mainSource SampleSource[complex128]

	view   *View
	tracks []Track

	// kept alongside the track list for configuration forwarding
	spectrogram *SpectrogramTrack

	hScroll scrollBar
	vScroll scrollBar

	width  int32
	height int32

	cursors         *Cursors
	cursorsEnabled  bool
	viewRange       Range[int64]
	selectedSamples Range[int64]

	OnTimeSelectionChanged func(seconds float64)
	OnZoomIn               func()
	OnZoomOut              func()
	OnRepaint              func()
}

func NewViewer(mainSource SampleSource[complex128]) *Viewer {
	this := &Viewer{
		mainSource: mainSource,
		view:       NewView(),
		width:      800,
		height:     600,
	}
	this.cursors = NewCursors(this.cursorsMoved)
	if mainSource != nil {
		mainSource.Subscribe(this.invalidateEvent)
		this.invalidateEvent()
	}
	return this
}

// AddTrack appends a track; list order defines vertical stacking for both
// painting and hit testing.
func (this *Viewer) AddTrack(t Track) {
	this.tracks = append(this.tracks, t)
	if s, ok := t.(*SpectrogramTrack); ok && this.spectrogram == nil {
		this.spectrogram = s
	}
}

func (this *Viewer) SamplesPerLine() int64 {
	return this.view.SamplesPerLine()
}

func (this *Viewer) ViewRange() Range[int64] {
	return this.viewRange
}

func (this *Viewer) SelectedSamples() Range[int64] {
	return this.selectedSamples
}

func (this *Viewer) SetFFTAndZoom(size, zoom int) {
	this.view.setFFTAndZoom(size, zoom)
	if this.spectrogram != nil {
		this.spectrogram.SetFFTSize(this.view.fftSize)
		this.spectrogram.SetZoomLevel(this.view.zoomLevel)
	}
	this.hScroll.singleStep = int64(this.view.fftSize) * 10 / int64(this.view.zoomLevel)
	this.hScroll.pageStep = int64(this.view.fftSize) * 100 / int64(this.view.zoomLevel)
	this.UpdateView(true)
}

func (this *Viewer) SetPowerMin(power int) {
	this.view.powerMin = power
	if this.spectrogram != nil {
		this.spectrogram.SetPowerMin(power)
	}
	this.UpdateView(false)
}

func (this *Viewer) SetPowerMax(power int) {
	this.view.powerMax = power
	if this.spectrogram != nil {
		this.spectrogram.SetPowerMax(power)
	}
	this.UpdateView(false)
}

func (this *Viewer) SetCursorSegments(n int) {
	this.cursors.SetSegments(n)
	this.cursorsMoved()
}

// EnableCursors toggles the selection overlay. Enabling seeds a default
// selection centered in the viewport with one-third margins on either side.
func (this *Viewer) EnableCursors(enabled bool) {
	this.cursorsEnabled = enabled
	if enabled {
		margin := this.width / 3
		this.cursors.SetSelection(Range[int32]{margin, this.width - margin})
		this.cursorsMoved()
	}
	this.requestRepaint()
}

func (this *Viewer) CursorsEnabled() bool {
	return this.cursorsEnabled
}

// cursorsMoved recomputes the sample-space selection from the overlay's
// pixel selection and reports the selection duration.
func (this *Viewer) cursorsMoved() {
	spl := this.SamplesPerLine()
	sel := this.cursors.Selection()
	this.selectedSamples = Range[int64]{
		this.hScroll.value + int64(sel.Min)*spl,
		this.hScroll.value + int64(sel.Max)*spl,
	}
	if this.mainSource != nil && this.OnTimeSelectionChanged != nil {
		this.OnTimeSelectionChanged(float64(this.selectedSamples.Length()) / this.mainSource.Rate())
	}
	this.requestRepaint()
}

func (this *Viewer) invalidateEvent() {
	if this.mainSource == nil {
		return
	}
	this.hScroll.min = 0
	this.hScroll.setMaximum(this.mainSource.Count())
	this.UpdateView(false)
}

func (this *Viewer) Resize(w, h int32) {
	this.width = w
	this.height = h
	this.UpdateView(false)
}

func (this *Viewer) ScrollBy(d int64) {
	this.hScroll.setValue(this.hScroll.value + d)
	this.UpdateView(false)
}

func (this *Viewer) ScrollVerticalBy(d int64) {
	this.vScroll.setValue(this.vScroll.value + d)
	this.requestRepaint()
}

// UpdateView is the single authority for recomputing the visible sample
// range from the scroll position and zoom configuration. Recentering keeps
// the sample at the center of the old view centered in the new one by
// shifting the scroll position by half the change in visible length.
func (this *Viewer) UpdateView(reCenter bool) {
	if this.mainSource == nil {
		return
	}
	oldViewRange := this.viewRange

	spl := this.SamplesPerLine()
	newLength := int64(this.width) * spl

	if reCenter {
		this.hScroll.setValue(
			this.hScroll.value + (oldViewRange.Length()-newLength)/2,
		)
	}

	hMax := this.mainSource.Count() - int64(this.width-1)*spl
	if hMax < 0 {
		hMax = 0
	}
	this.hScroll.setMaximum(hMax)

	// The scroll maximum may have pulled the value back; viewRange always
	// starts at the final scroll position.
	this.viewRange = Range[int64]{
		this.hScroll.value,
		this.hScroll.value + newLength,
	}
	log.Tracef("View range: %v", this.viewRange)

	vMax := int64(this.tracksHeight()) - int64(this.height)
	if vMax < 0 {
		vMax = 0
	}
	this.vScroll.setMaximum(vMax)

	// The pixel selection follows the sample selection across rescale, not
	// the other way around.
	this.cursors.SetSelection(Range[int32]{
		int32((this.selectedSamples.Min - this.hScroll.value) / spl),
		int32((this.selectedSamples.Max - this.hScroll.value) / spl),
	})

	this.requestRepaint()
}

func (this *Viewer) tracksHeight() int32 {
	var h int32
	for _, t := range this.tracks {
		h += t.Height()
	}
	return h
}

// HandleMouse dispatches a pointer event: the cursor overlay is offered the
// event first, then tracks top to bottom with the vertical coordinate
// translated into each track's local space. The first consumer wins.
func (this *Viewer) HandleMouse(ev *MouseEvent) bool {
	if this.cursorsEnabled && this.cursors.MouseEvent(ev) {
		this.requestRepaint()
		return true
	}
	trackY := -int32(this.vScroll.value)
	for _, t := range this.tracks {
		local := *ev
		local.Pos.Y = ev.Pos.Y - trackY
		if t.MouseEvent(&local) {
			return true
		}
		trackY += t.Height()
	}
	return false
}

// HandleWheel intercepts precision-select wheel events unconditionally and
// converts them into zoom signals by direction sign. Plain wheel events are
// left to the caller's default scroll handling.
func (this *Viewer) HandleWheel(dy int32, precision bool) bool {
	if !precision {
		return false
	}
	if dy > 0 {
		if this.OnZoomIn != nil {
			this.OnZoomIn()
		}
	} else if dy < 0 {
		if this.OnZoomOut != nil {
			this.OnZoomOut()
		}
	}
	return true
}

// Paint runs the three layer passes over every track in stacking order, then
// the cursor overlay, which is always on top. Without a main source this is
// a no-op.
func (this *Viewer) Paint(renderer *sdl.Renderer) {
	if this.mainSource == nil {
		return
	}
	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.Clear()

	this.paintLayer(renderer, Track.PaintBack)
	this.paintLayer(renderer, Track.PaintMid)
	this.paintLayer(renderer, Track.PaintFront)
	if this.cursorsEnabled {
		this.cursors.PaintFront(renderer, AreaRect{0, 0, this.width, this.height}, this.viewRange)
	}

	renderer.Present()
}

func (this *Viewer) paintLayer(renderer *sdl.Renderer, paint func(Track, *sdl.Renderer, AreaRect, Range[int64])) {
	y := -int32(this.vScroll.value)
	for _, t := range this.tracks {
		area := AreaRect{0, y, this.width, t.Height()}
		paint(t, renderer, area, this.viewRange)
		y += t.Height()
	}
}

func (this *Viewer) requestRepaint() {
	if this.OnRepaint != nil {
		this.OnRepaint()
	}
}
