// Package gpio drives the Sonata GPIO blocks: masked, validity-checked
// access to the raw pins plus the board instance's named groups (user
// LEDs, DIP switches, joystick).
package gpio

import "sonata-hal-go/mmio"

// Regs is the GPIO register block. Field order mirrors the hardware
// register map exactly; it is the contract with the device and must not
// change.
type Regs struct {
	Output         mmio.Reg32 // driven output values
	Input          mmio.Reg32 // raw sampled inputs
	DebouncedInput mmio.Reg32 // inputs after the hardware debouncer
	OutputEnable   mmio.Reg32 // per-pin direction control
}

// Pin masks for the Sonata headers. A pre-built constructor exists for
// each; masks mark the bit positions an instance may drive or sample.
const (
	RaspberryPiHatOutputMask = 0x0FFF_FFFF
	RaspberryPiHatInputMask  = 0x0FFF_FFFF

	ArduinoShieldOutputMask = 0x0000_3FFF
	ArduinoShieldInputMask  = 0x0000_3FFF

	PmodOutputMask = 0x0000_00FF
	PmodInputMask  = 0x0000_00FF

	PmodCOutputMask = 0x0000_003F
	PmodCInputMask  = 0x0000_003F
)
