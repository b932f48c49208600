package engine

import (
	"sync"

	"github.com/lixenwraith/vi-fps/vmath"
)

//go:generate go tool mockgen -destination=./mocks/engine_mock.go -package=mocks . Camera,Presenter

// Camera receives the final look orientation and procedural noise gains
type Camera interface {
	SetLocalRotation(rotation vmath.Euler)
	SetNoise(amplitude, frequency float64)
}

// Presenter owns process-wide presentation state
type Presenter interface {
	SetCursorLocked(locked bool)
}

// CameraState is a Camera that stores what it receives
// Written by the tick goroutine, read by renderers
type CameraState struct {
	mu        sync.RWMutex
	rotation  vmath.Euler
	amplitude float64
	frequency float64
}

func NewCameraState() *CameraState {
	return &CameraState{}
}

func (c *CameraState) SetLocalRotation(rotation vmath.Euler) {
	c.mu.Lock()
	c.rotation = rotation
	c.mu.Unlock()
}

func (c *CameraState) SetNoise(amplitude, frequency float64) {
	c.mu.Lock()
	c.amplitude = amplitude
	c.frequency = frequency
	c.mu.Unlock()
}

// Rotation returns the last local rotation
func (c *CameraState) Rotation() vmath.Euler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rotation
}

// Noise returns the last amplitude and frequency gains
func (c *CameraState) Noise() (amplitude, frequency float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.amplitude, c.frequency
}

// NopPresenter ignores presentation changes, used headless
type NopPresenter struct{}

func (NopPresenter) SetCursorLocked(bool) {}
