//go:build !tinygo && !baremetal

package platform

import (
	"sonata-hal-go/drivers/gpio"
	"sonata-hal-go/drivers/uart"
)

// Host builds back each register block with plain memory, so the HAL,
// the demos and the tests run without the board. Register semantics that
// the hardware provides (FIFO levels moving, inputs changing) do not
// happen by themselves here; tests poke the registers directly.
var (
	GPIOBoard          = gpio.NewBoardPort(new(gpio.Regs))
	GPIORaspberryPiHat = gpio.NewRaspberryPiHatPort(new(gpio.Regs))
	GPIOArduinoShield  = gpio.NewArduinoShieldPort(new(gpio.Regs))
	GPIOPmod0          = gpio.NewPmodPort(new(gpio.Regs))
	GPIOPmod1          = gpio.NewPmodPort(new(gpio.Regs))
	GPIOPmodC          = gpio.NewPmodCPort(new(gpio.Regs))

	UART0 = uart.New(new(uart.Regs), SystemClockHz)
	UART1 = uart.New(new(uart.Regs), SystemClockHz)
)
