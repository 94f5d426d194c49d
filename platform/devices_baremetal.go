//go:build tinygo || baremetal

package platform

import (
	"sonata-hal-go/drivers/gpio"
	"sonata-hal-go/drivers/uart"
	"sonata-hal-go/mmio"
)

// Device singletons mapped onto the live register blocks. Each exists at
// its fixed address for the lifetime of the program; there is no
// construction or teardown beyond this binding.
var (
	GPIOBoard          = gpio.NewBoardPort(mmio.Map[gpio.Regs](gpioBase + 0*gpioStride))
	GPIORaspberryPiHat = gpio.NewRaspberryPiHatPort(mmio.Map[gpio.Regs](gpioBase + 1*gpioStride))
	GPIOArduinoShield  = gpio.NewArduinoShieldPort(mmio.Map[gpio.Regs](gpioBase + 2*gpioStride))
	GPIOPmod0          = gpio.NewPmodPort(mmio.Map[gpio.Regs](gpioBase + 3*gpioStride))
	GPIOPmod1          = gpio.NewPmodPort(mmio.Map[gpio.Regs](gpioBase + 4*gpioStride))
	GPIOPmodC          = gpio.NewPmodCPort(mmio.Map[gpio.Regs](gpioBase + 5*gpioStride))

	UART0 = uart.New(mmio.Map[uart.Regs](uart0Base), SystemClockHz)
	UART1 = uart.New(mmio.Map[uart.Regs](uart1Base), SystemClockHz)
)
