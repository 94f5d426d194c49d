package main

import (
	"time"

	"sonata-hal-go/platform"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	platform.GPIOBoard.EnableLEDs()

	// Heartbeat on LED 0.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for t := range tick.C {
		platform.GPIOBoard.LEDToggle(0)
		println(t.Format("15:04:05"), "heartbeat")
	}
}
