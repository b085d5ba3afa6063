package core

import "testing"

func TestInputFrameHoldAndEvents(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ControlRight)
	f.Hold(ControlFire)
	f.Push(EventToggleFlight)
	f.Push(EventToggleFlight)

	if !f.Has(ControlRight) || !f.Has(ControlFire) {
		t.Error("held controls should be reported")
	}
	if f.Has(ControlLeft) {
		t.Error("Left was never held")
	}
	if len(f.Events) != 1 {
		t.Errorf("duplicate events should collapse, got %d events", len(f.Events))
	}

	got := f.Controls()
	if len(got) != 2 || got[0] != ControlRight || got[1] != ControlFire {
		t.Errorf("Controls() = %v, expected [Right Fire]", got)
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ControlPunch)
	f.Push(EventBegin)

	clone := f.Clone()
	f.Clear()

	if f.Has(ControlPunch) || f.HasEvent(EventBegin) {
		t.Error("Clear should reset the original frame")
	}
	if !clone.Has(ControlPunch) || !clone.HasEvent(EventBegin) {
		t.Error("clone should keep its own copy")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ControlJump) {
		t.Error("zero frame should hold nothing")
	}
	f.Hold(ControlJump)
	if !f.Has(ControlJump) {
		t.Error("Hold on zero frame should allocate")
	}
}
