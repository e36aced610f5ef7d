package shell

import (
	"errors"
	"math"

	shellerrors "pake/internal/infrastructure/errors"
	"pake/internal/platform"
)

// Zoom factors bound to the Hot Key menu. zoom_in shrinks and zoom_out
// enlarges; the naming is kept as shipped.
const (
	ZoomInFactor    = 0.75
	ZoomOutFactor   = 1.25
	ZoomResetFactor = 1.0
)

// ZoomController applies zoom factors through the platform adapter
type ZoomController struct {
	adapter platform.Adapter
}

// NewZoomController creates a zoom controller
func NewZoomController(adapter platform.Adapter) *ZoomController {
	return &ZoomController{adapter: adapter}
}

// SetZoom applies factor to the window's content surface
func (z *ZoomController) SetZoom(w Window, factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return shellerrors.HandleZoomApply("set_zoom", factor, errors.New("zoom factor must be positive"))
	}
	if w == nil {
		return shellerrors.HandleZoomApply("set_zoom", factor, errors.New("no window"))
	}
	s := w.Surface()
	if s == nil {
		return shellerrors.HandleZoomApply("set_zoom", factor, errors.New("window has no content surface"))
	}
	if err := z.adapter.ApplyZoom(s, factor); err != nil {
		return shellerrors.HandleZoomApply("set_zoom", factor, err)
	}
	return nil
}
