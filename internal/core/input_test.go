package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionChop) {
		t.Fatal("zero frame should have no actions")
	}

	f.Set(ActionChop)
	f.Set(ActionLeft)
	if !f.Has(ActionChop) || !f.Has(ActionLeft) {
		t.Fatal("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as set")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionSellTool.String() != "SellTool" {
		t.Errorf("ActionSellTool.String() = %q", ActionSellTool.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}
