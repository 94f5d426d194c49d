// Package platform binds the drivers to the Sonata memory map. The base
// addresses, the register spacing and the system clock are supplied here;
// the drivers themselves never hard-code an address.
package platform

// System clock feeding the UART baud generators, Hz.
const SystemClockHz = 50_000_000

// Device base addresses. GPIO instances are consecutive blocks from
// gpioBase in header order; each UART instance has its own base.
const (
	gpioBase   uintptr = 0x8000_0000
	gpioStride uintptr = 0x40

	uart0Base uintptr = 0x8010_0000
	uart1Base uintptr = 0x8010_1000
)
