// Package hal exposes the board's GPIO and UART devices as generic
// capabilities: each device sits behind an adaptor with a small
// kind/method/payload control surface, and a registry dispatches to the
// adaptors by device id.
package hal

import (
	"context"

	"tinygo.org/x/drivers"
)

// CapInfo describes one capability's retained info document.
type CapInfo struct {
	Kind string // capability kind, e.g. "gpio", "uart"
	Info any    // JSON-serialisable detail (types.GPIOInfo etc.)
}

// Adaptor owns a concrete device and exposes generic hooks. Adaptors do
// not spawn goroutines.
type Adaptor interface {
	ID() string
	// Static capability descriptions.
	Capabilities() []CapInfo
	// Control dispatches a driver verb. Unknown kind/method returns
	// errcode.Unsupported.
	Control(kind, method string, payload any) (result any, err error)
}

// UARTPort is what the UART adaptor needs from a serial device. It is
// the TinyGo driver surface (drivers.UART carries Read, Write and
// Buffered) plus single-byte reads, this repo's bounded byte operations
// and baud setup.
type UARTPort interface {
	drivers.UART
	ReadByte() (byte, error)
	Init(baud uint32)
	Baud() uint32
	ClockHz() uint32
	WriteByteContext(ctx context.Context, b byte) error
	ReadByteContext(ctx context.Context) (byte, error)
}

// RXPort is the receive-side subset the reader worker polls.
type RXPort interface {
	Buffered() int
	ReadByte() (byte, error)
}
