package shell

import (
	"math"
	"testing"

	shellerrors "pake/internal/infrastructure/errors"
	"pake/internal/platform"
)

func TestZoomController_SetZoom(t *testing.T) {
	for _, a := range []platform.Adapter{platform.NewDarwinAPI(), platform.NewLinuxAPI(), platform.NewWindowsAPI()} {
		t.Run(a.Name(), func(t *testing.T) {
			w := newFakeWindow(PrimaryWindowLabel)
			if err := NewZoomController(a).SetZoom(w, 1.25); err != nil {
				t.Fatalf("SetZoom() error = %v", err)
			}
			if w.surface.zoom != 1.25 {
				t.Errorf("zoom = %v, want 1.25", w.surface.zoom)
			}
		})
	}
}

func TestZoomController_RejectsBadFactors(t *testing.T) {
	z := NewZoomController(platform.NewWindowsAPI())

	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		w := newFakeWindow(PrimaryWindowLabel)
		err := z.SetZoom(w, f)
		if !shellerrors.IsZoomApply(err) {
			t.Errorf("factor %v: expected ZOOM_APPLY, got %v", f, err)
		}
		if w.surface.calls != 0 {
			t.Errorf("factor %v: surface must not be touched", f)
		}
	}
}

func TestZoomController_Failures(t *testing.T) {
	z := NewZoomController(platform.NewWindowsAPI())

	if err := z.SetZoom(nil, 1); !shellerrors.IsZoomApply(err) {
		t.Errorf("nil window: expected ZOOM_APPLY, got %v", err)
	}

	noSurface := &fakeWindow{label: PrimaryWindowLabel}
	if err := z.SetZoom(noSurface, 1); !shellerrors.IsZoomApply(err) {
		t.Errorf("no surface: expected ZOOM_APPLY, got %v", err)
	}

	failing := newFakeWindow(PrimaryWindowLabel)
	failing.surface.zoomErr = errRejected
	err := z.SetZoom(failing, 1)
	if !shellerrors.IsZoomApply(err) {
		t.Fatalf("expected ZOOM_APPLY, got %v", err)
	}
	if shellerrors.IsFatal(err) {
		t.Error("zoom failures must not be fatal")
	}
}

func TestZoomController_LinuxBestEffort(t *testing.T) {
	w := newFakeWindow(PrimaryWindowLabel)
	w.surface.zoomErr = errRejected

	if err := NewZoomController(platform.NewLinuxAPI()).SetZoom(w, 0.75); err != nil {
		t.Errorf("linux zoom should be best effort, got %v", err)
	}
}
