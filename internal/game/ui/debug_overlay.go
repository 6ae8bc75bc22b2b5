// Package ui provides the viewer's ImGui windows.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Stats is what the overlay reports about the scene.
type Stats struct {
	State     string
	Model     string
	Instances int
	Meshes    int
}

// DebugOverlay is a small window with a fixed label and optional frame
// statistics. It never touches scene state.
type DebugOverlay struct {
	Title   string
	Label   string
	ShowFPS bool
	Enabled bool

	Stats Stats

	// Frame timing
	fps           float64
	frameTime     float64 // ms
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int
}

// NewDebugOverlay creates a new debug overlay.
func NewDebugOverlay(title, label string) *DebugOverlay {
	return &DebugOverlay{
		Title:   title,
		Label:   label,
		Enabled: true,
	}
}

// Update updates the frame counters. dt is in seconds.
func (d *DebugOverlay) Update(dt float64) {
	d.frameTime = dt * 1000
	d.frameAccum++
	d.fpsUpdateTime += dt

	// Update FPS every 0.5 seconds
	if d.fpsUpdateTime >= 0.5 {
		d.fps = float64(d.frameAccum) / d.fpsUpdateTime
		d.frameAccum = 0
		d.fpsUpdateTime = 0
	}
}

// FPS returns the last measured frame rate.
func (d *DebugOverlay) FPS() float64 {
	return d.fps
}

// Lines returns the text lines of the window, label first.
func (d *DebugOverlay) Lines() []string {
	lines := []string{d.Label}
	if !d.ShowFPS {
		return lines
	}
	lines = append(lines,
		fmt.Sprintf("FPS: %.1f (%.2f ms)", d.fps, d.frameTime),
		fmt.Sprintf("State: %s", d.Stats.State),
		fmt.Sprintf("Instances: %d", d.Stats.Instances),
		fmt.Sprintf("Meshes: %d", d.Stats.Meshes),
	)
	if d.Stats.Model != "" {
		lines = append(lines, fmt.Sprintf("Model: %s", d.Stats.Model))
	}
	return lines
}

// Render draws the overlay window.
func (d *DebugOverlay) Render() {
	if !d.Enabled {
		return
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	if imgui.BeginV(d.Title, nil, imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoSavedSettings) {
		for i, line := range d.Lines() {
			if i == 1 {
				imgui.Separator()
			}
			imgui.Text(line)
		}
	}
	imgui.End()
}
