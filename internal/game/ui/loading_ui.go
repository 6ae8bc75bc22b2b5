package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/meshgrid/internal/game/states"
)

// LoadingUI renders the loading screen UI.
type LoadingUI struct {
	state *states.LoadingState
	model string
}

// NewLoadingUI creates a new loading UI.
func NewLoadingUI(state *states.LoadingState, model string) *LoadingUI {
	return &LoadingUI{
		state: state,
		model: model,
	}
}

// Status returns the status line shown under the model name.
func (ui *LoadingUI) Status() string {
	return fmt.Sprintf("%s (%.1fs)", ui.state.Phase, ui.state.Elapsed.Seconds())
}

// Render renders the loading UI.
func (ui *LoadingUI) Render(viewportWidth, viewportHeight float32) {
	// Center the loading window
	windowWidth := float32(400)
	windowHeight := float32(90)
	windowX := (viewportWidth - windowWidth) / 2
	windowY := (viewportHeight - windowHeight) / 2

	imgui.SetNextWindowPos(imgui.NewVec2(windowX, windowY))
	imgui.SetNextWindowSize(imgui.NewVec2(windowWidth, windowHeight))

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoCollapse
	if imgui.BeginV("Loading", nil, flags) {
		imgui.Spacing()
		centerText(fmt.Sprintf("Loading: %s", ui.model))
		imgui.Spacing()
		imgui.TextDisabled(ui.Status())
	}
	imgui.End()
}

func centerText(text string) {
	textSize := imgui.CalcTextSize(text)
	windowWidth := imgui.ContentRegionAvail().X
	cursorX := (windowWidth - textSize.X) / 2
	if cursorX > 0 {
		imgui.SetCursorPosX(imgui.CursorPosX() + cursorX)
	}
	imgui.Text(text)
}
