package gpio

// Port is a masked view over a GPIO register block. The two masks mark
// which bit positions this instance may use as outputs and inputs; an
// operation on any other index leaves the registers untouched and reports
// false, so a stray index can never corrupt neighbouring bits.
//
// Port does no locking. Every mutating operation is a single non-atomic
// read-modify-write of one register; if an interrupt handler or another
// core touches the same block concurrently, one of the updates can be
// lost. Exclusive ownership of a block is the caller's contract.
type Port struct {
	regs       *Regs
	outputMask uint32
	inputMask  uint32
}

// NewPort builds a masked view over regs. Named headers have pre-built
// constructors below; NewPort itself serves runtime-selected boards.
func NewPort(regs *Regs, outputMask, inputMask uint32) *Port {
	return &Port{regs: regs, outputMask: outputMask, inputMask: inputMask}
}

// Pre-built Sonata header instances.

func NewRaspberryPiHatPort(regs *Regs) *Port {
	return NewPort(regs, RaspberryPiHatOutputMask, RaspberryPiHatInputMask)
}

func NewArduinoShieldPort(regs *Regs) *Port {
	return NewPort(regs, ArduinoShieldOutputMask, ArduinoShieldInputMask)
}

func NewPmodPort(regs *Regs) *Port {
	return NewPort(regs, PmodOutputMask, PmodInputMask)
}

func NewPmodCPort(regs *Regs) *Port {
	return NewPort(regs, PmodCOutputMask, PmodCInputMask)
}

// OutputMask returns the bits this instance may drive.
func (p *Port) OutputMask() uint32 { return p.outputMask }

// InputMask returns the bits this instance may sample.
func (p *Port) InputMask() uint32 { return p.inputMask }

// BitFor returns the register bit for a pin index, masked down to the
// positions in mask. The result is 0 for any index at or beyond the
// register width or outside the mask.
func BitFor(index uint8, mask uint32) uint32 {
	return uint32(1) << index & mask
}

// OutputSet drives the pin at index to value. The register write always
// happens: for an invalid index the computed bit is zero, so the OR or
// AND-NOT changes nothing. Reports whether index named a valid output
// pin; false means the operation had no effect.
//
// The pin's OutputEnable bit must select output mode before the driven
// value reaches the physical pin; which polarity means output is fixed by
// the device's register map.
func (p *Port) OutputSet(index uint8, value bool) bool {
	bit := BitFor(index, p.outputMask)
	if value {
		p.regs.Output.SetBits(bit)
	} else {
		p.regs.Output.ClearBits(bit)
	}
	return bit != 0
}

// OutputEnable sets the direction of the pin at index: output when enable
// is true, input otherwise. Reports whether index named a valid output
// pin; false means the operation had no effect.
func (p *Port) OutputEnable(index uint8, enable bool) bool {
	bit := BitFor(index, p.outputMask)
	if enable {
		p.regs.OutputEnable.SetBits(bit)
	} else {
		p.regs.OutputEnable.ClearBits(bit)
	}
	return bit != 0
}

// InputGet reads the raw input at index. Always false for an index
// outside the input mask, whatever the register holds.
func (p *Port) InputGet(index uint8) bool {
	return p.regs.Input.HasBits(BitFor(index, p.inputMask))
}

// InputDebouncedGet reads the hardware-debounced input at index. Always
// false for an index outside the input mask.
func (p *Port) InputDebouncedGet(index uint8) bool {
	return p.regs.DebouncedInput.HasBits(BitFor(index, p.inputMask))
}
