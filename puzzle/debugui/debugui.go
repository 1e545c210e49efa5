// Package debugui provides Dear ImGui debug windows for stonestack matches.
// Windows are registered on an Overlay, which runs as a scheduler system
// between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stonestack/puzzle"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends check it before routing input to the boards.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders every registered item once per frame while visible.
type Overlay struct {
	Visible bool
	Input   InputState

	items []ImguiItem
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add registers a render function.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, ImguiItem{Render: render})
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

func (o *Overlay) Name() string { return "debugui" }

// Execute updates the input state and runs all render functions.
func (o *Overlay) Execute(frame *puzzle.Frame) {
	if !o.Visible {
		o.Input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}
