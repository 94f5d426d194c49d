package mmio

import "testing"

func TestReg32_Bits(t *testing.T) {
	var r Reg32

	r.Set(0x0000_00F0)
	if got := r.Get(); got != 0xF0 {
		t.Fatalf("Get after Set: got %#x", got)
	}

	r.SetBits(0x0F)
	if got := r.Get(); got != 0xFF {
		t.Fatalf("SetBits: got %#x", got)
	}

	r.ClearBits(0xF0)
	if got := r.Get(); got != 0x0F {
		t.Fatalf("ClearBits: got %#x", got)
	}

	r.ToggleBits(0xFF)
	if got := r.Get(); got != 0xF0 {
		t.Fatalf("ToggleBits: got %#x", got)
	}

	if !r.HasBits(0x10) {
		t.Fatal("HasBits(0x10) should be true")
	}
	if r.HasBits(0x0F) {
		t.Fatal("HasBits(0x0F) should be false")
	}
	if r.HasBits(0) {
		t.Fatal("HasBits(0) must always be false")
	}
}

func TestReg32_ZeroMaskRMWIsNoOp(t *testing.T) {
	var r Reg32
	r.Set(0xDEAD_BEEF)

	r.SetBits(0)
	r.ClearBits(0)
	r.ToggleBits(0)
	if got := r.Get(); got != 0xDEAD_BEEF {
		t.Fatalf("zero-mask RMW changed register: got %#x", got)
	}
}
