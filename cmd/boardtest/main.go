package main

import (
	"time"

	"sonata-hal-go/platform"
	"sonata-hal-go/services/config"
	"sonata-hal-go/services/hal"
	"sonata-hal-go/types"
)

// Walks the user LEDs and reports the input groups through the HAL
// registry. On hardware the LEDs chase; on a host build the register
// blocks are plain memory, so this doubles as a smoke test of the whole
// stack.
func main() {
	println("[boardtest] boot …")

	cfg, err := config.Default("sonata")
	if err != nil {
		println("[boardtest] FAIL: config:", err.Error())
		return
	}

	reg := hal.NewRegistry()
	for _, g := range cfg.GPIO {
		if g.Header == config.HeaderBoard {
			reg.Add(hal.NewGPIOAdaptor(g.ID, platform.GPIOBoard))
		}
	}
	for _, u := range cfg.UART {
		switch u.ID {
		case "uart0":
			platform.UART0.Init(u.Baud)
			reg.Add(hal.NewUARTAdaptor(u.ID, platform.UART0, 0))
		case "uart1":
			platform.UART1.Init(u.Baud)
			reg.Add(hal.NewUARTAdaptor(u.ID, platform.UART1, 0))
		}
	}

	for id, caps := range reg.Capabilities() {
		for _, c := range caps {
			println("[boardtest] capability:", id, c.Kind)
		}
	}

	if _, err := reg.Control("gpio0", "gpio", "output_enable",
		map[string]any{"index": 0, "enable": true}); err != nil {
		println("[boardtest] FAIL: output_enable:", err.Error())
		return
	}

	println("[boardtest] LED chase")
	for pass := 0; pass < 2; pass++ {
		for i := 0; i < 8; i++ {
			reg.Control("gpio0", "gpio", "led_on", map[string]any{"index": i})
			time.Sleep(100 * time.Millisecond)
			reg.Control("gpio0", "gpio", "led_off", map[string]any{"index": i})
		}
	}

	res, err := reg.Control("gpio0", "gpio", "read_joystick", nil)
	if err != nil {
		println("[boardtest] FAIL: read_joystick:", err.Error())
		return
	}
	js := res.(types.JoystickState)
	println("[boardtest] joystick: left=", js.Left, "up=", js.Up,
		"pressed=", js.Pressed, "down=", js.Down, "right=", js.Right)

	res, err = reg.Control("gpio0", "gpio", "sd_present", nil)
	if err != nil {
		println("[boardtest] FAIL: sd_present:", err.Error())
		return
	}
	println("[boardtest] sd present:", res.(map[string]any)["present"].(bool))

	println("[boardtest] done")
}
