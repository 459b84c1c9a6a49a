// Package ui is the Dear ImGui control panel used in panel mode: toggles for
// the scene and a viewport that shows it.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/logger"
)

// Backend owns the SDL window and GL context created by the ImGui backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend creates the ImGui context and its window. The GL context is
// current on return; function pointers still need loading.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)

	b.log.Info("panel window created",
		zap.String("title", title),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return b, nil
}

// Run calls frame once per display refresh until the window closes.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// WorkArea returns the main viewport work area.
func WorkArea() (pos, size imgui.Vec2) {
	viewport := imgui.MainViewport()
	return viewport.WorkPos(), viewport.WorkSize()
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
