// Package uart drives the OpenTitan UART: baud-rate setup and
// byte-granular polled transfer through the hardware FIFOs.
package uart

import "sonata-hal-go/mmio"

// Regs is the OpenTitan UART register block. Field order mirrors the
// hardware register map exactly; it is the contract with the device and
// must not change.
type Regs struct {
	IntrState   mmio.Reg32
	IntrEnable  mmio.Reg32
	IntrTest    mmio.Reg32
	AlertTest   mmio.Reg32
	Ctrl        mmio.Reg32
	Status      mmio.Reg32
	RData       mmio.Reg32
	WData       mmio.Reg32
	FifoCtrl    mmio.Reg32
	FifoStatus  mmio.Reg32
	Ovrd        mmio.Reg32
	Val         mmio.Reg32
	TimeoutCtrl mmio.Reg32
}

const (
	// CTRL bitfields: the computed divisor lives in bits 16..31, the low
	// two bits enable transmit and receive.
	ctrlTXEnable = 1 << 0
	ctrlRXEnable = 1 << 1
	ctrlNCOShift = 16

	// FIFO_STATUS bitfields: TX occupancy in bits 0..7, RX occupancy in
	// bits 16..23.
	fifoStatusTXLevelMask  = 0xFF
	fifoStatusRXLevelShift = 16
	fifoStatusRXLevelMask  = 0xFF

	// Hardware FIFO depth in bytes, both directions.
	fifoDepth = 32

	// The divisor is a 20-bit-scaled fixed-point ratio of baud rate to
	// system clock.
	ncoScaleBits = 20
)
