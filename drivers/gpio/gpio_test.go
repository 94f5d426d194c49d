package gpio

import (
	"testing"
	"unsafe"
)

// The register block layout is the contract with the hardware: four
// 32-bit words, declared order, no padding.
func TestRegs_Layout(t *testing.T) {
	var r Regs
	if got := unsafe.Sizeof(r); got != 16 {
		t.Fatalf("Regs size = %d, want 16", got)
	}
	offsets := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Output", unsafe.Offsetof(r.Output), 0x0},
		{"Input", unsafe.Offsetof(r.Input), 0x4},
		{"DebouncedInput", unsafe.Offsetof(r.DebouncedInput), 0x8},
		{"OutputEnable", unsafe.Offsetof(r.OutputEnable), 0xC},
	}
	for _, o := range offsets {
		if o.got != o.want {
			t.Fatalf("offset of %s = %#x, want %#x", o.name, o.got, o.want)
		}
	}
}

func TestBitFor(t *testing.T) {
	cases := []struct {
		index uint8
		mask  uint32
		want  uint32
	}{
		{0, 0xFF, 1},
		{7, 0xFF, 0x80},
		{8, 0xFF, 0},           // outside mask
		{31, 0xFFFF_FFFF, 1 << 31},
		{32, 0xFFFF_FFFF, 0},   // at register width
		{255, 0xFFFF_FFFF, 0},  // far beyond register width
		{4, 0x0F, 0},
		{3, 0x0F, 0x08},
	}
	for _, c := range cases {
		if got := BitFor(c.index, c.mask); got != c.want {
			t.Fatalf("BitFor(%d, %#x) = %#x, want %#x", c.index, c.mask, got, c.want)
		}
	}
}

func TestOutputSet_ValidIndex(t *testing.T) {
	regs := new(Regs)
	p := NewPort(regs, 0xFF, 0xFF)

	if !p.OutputSet(3, true) {
		t.Fatal("OutputSet(3, true) should report a valid pin")
	}
	if got := regs.Output.Get(); got != 0x08 {
		t.Fatalf("Output = %#x, want exactly bit 3", got)
	}

	// Setting must not disturb other bits.
	if !p.OutputSet(0, true) {
		t.Fatal("OutputSet(0, true) should report a valid pin")
	}
	if got := regs.Output.Get(); got != 0x09 {
		t.Fatalf("Output = %#x, want bits 0 and 3", got)
	}

	// Clearing removes exactly bit 3.
	if !p.OutputSet(3, false) {
		t.Fatal("OutputSet(3, false) should report a valid pin")
	}
	if got := regs.Output.Get(); got != 0x01 {
		t.Fatalf("Output = %#x, want only bit 0", got)
	}
}

func TestOutputSet_OutOfMaskIsReportedNoOp(t *testing.T) {
	regs := new(Regs)
	regs.Output.Set(0xA5)
	p := NewPort(regs, 0x0F, 0x0F)

	for _, index := range []uint8{4, 7, 31, 32, 200} {
		for _, value := range []bool{true, false} {
			if p.OutputSet(index, value) {
				t.Fatalf("OutputSet(%d, %v) should report an invalid pin", index, value)
			}
			if got := regs.Output.Get(); got != 0xA5 {
				t.Fatalf("OutputSet(%d, %v) changed register: %#x", index, value, got)
			}
		}
	}
}

func TestOutputEnable(t *testing.T) {
	regs := new(Regs)
	p := NewPort(regs, 0x0F, 0x0F)

	if !p.OutputEnable(2, true) {
		t.Fatal("OutputEnable(2, true) should report a valid pin")
	}
	if got := regs.OutputEnable.Get(); got != 0x04 {
		t.Fatalf("OutputEnable = %#x, want bit 2", got)
	}
	if !p.OutputEnable(2, false) {
		t.Fatal("OutputEnable(2, false) should report a valid pin")
	}
	if got := regs.OutputEnable.Get(); got != 0 {
		t.Fatalf("OutputEnable = %#x, want 0", got)
	}
	if p.OutputEnable(6, true) {
		t.Fatal("OutputEnable(6, true) should report an invalid pin")
	}
	if got := regs.OutputEnable.Get(); got != 0 {
		t.Fatalf("invalid OutputEnable changed register: %#x", got)
	}
}

func TestInputGet_MaskedReads(t *testing.T) {
	regs := new(Regs)
	// All 32 bits high, including positions the mask forbids.
	regs.Input.Set(0xFFFF_FFFF)
	regs.DebouncedInput.Set(0xFFFF_FFFF)
	p := NewPort(regs, 0xFF, 0xFF)

	if !p.InputGet(5) {
		t.Fatal("InputGet(5) should see the set bit")
	}
	if !p.InputDebouncedGet(5) {
		t.Fatal("InputDebouncedGet(5) should see the set bit")
	}
	for _, index := range []uint8{8, 16, 31, 32, 99} {
		if p.InputGet(index) {
			t.Fatalf("InputGet(%d) must be false outside the mask", index)
		}
		if p.InputDebouncedGet(index) {
			t.Fatalf("InputDebouncedGet(%d) must be false outside the mask", index)
		}
	}
}

// End-to-end: enable then drive a valid pin, reject an out-of-mask pin.
func TestPort_EnableThenSetScenario(t *testing.T) {
	regs := new(Regs)
	p := NewPort(regs, 0x0F, 0x0F)

	if !p.OutputEnable(2, true) {
		t.Fatal("OutputEnable(2) failed")
	}
	if !p.OutputSet(2, true) {
		t.Fatal("OutputSet(2) failed")
	}
	if !regs.OutputEnable.HasBits(1 << 2) {
		t.Fatal("OutputEnable bit 2 not set")
	}
	if !regs.Output.HasBits(1 << 2) {
		t.Fatal("Output bit 2 not set")
	}
	if p.OutputSet(6, true) {
		t.Fatal("OutputSet(6) should be rejected")
	}
	if regs.Output.HasBits(1 << 6) {
		t.Fatal("Output bit 6 must stay clear")
	}
}

func TestVariantMasks(t *testing.T) {
	regs := new(Regs)
	cases := []struct {
		name string
		port *Port
		out  uint32
		in   uint32
	}{
		{"rpi_hat", NewRaspberryPiHatPort(regs), 0x0FFF_FFFF, 0x0FFF_FFFF},
		{"arduino_shield", NewArduinoShieldPort(regs), 0x3FFF, 0x3FFF},
		{"pmod", NewPmodPort(regs), 0xFF, 0xFF},
		{"pmod_c", NewPmodCPort(regs), 0x3F, 0x3F},
	}
	for _, c := range cases {
		if c.port.OutputMask() != c.out || c.port.InputMask() != c.in {
			t.Fatalf("%s masks = %#x/%#x, want %#x/%#x",
				c.name, c.port.OutputMask(), c.port.InputMask(), c.out, c.in)
		}
	}
}
