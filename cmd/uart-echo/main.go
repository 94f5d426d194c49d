package main

import (
	"context"
	"time"

	"sonata-hal-go/platform"
	"sonata-hal-go/services/hal"
)

// Echo every byte arriving on UART0 back onto UART0, framed through the
// bounded HAL reader. Runs until the process is killed. On a host build
// the FIFO never fills, so this mostly demonstrates the wiring.
func main() {
	println("[uart-echo] boot …")

	platform.UART0.Init(115200)
	println("[uart-echo] uart0 at", platform.UART0.Baud(), "baud,",
		platform.UART0.ClockHz(), "Hz clock")

	ctx := context.Background()
	reader := hal.NewReader(32)
	stop, err := reader.Register(ctx, hal.ReaderCfg{
		DevID:     "uart0",
		Port:      platform.UART0,
		MaxFrame:  64,
		Poll:      time.Millisecond,
		IdleFlush: 20 * time.Millisecond,
	})
	if err != nil {
		println("[uart-echo] FAIL:", err.Error())
		return
	}
	defer stop()

	for ev := range reader.Events() {
		wctx, cancel := context.WithTimeout(ctx, time.Second)
		for _, b := range ev.Data {
			if err := platform.UART0.WriteByteContext(wctx, b); err != nil {
				println("[uart-echo] write stalled:", err.Error())
				break
			}
		}
		cancel()
		println("[uart-echo] echoed", len(ev.Data), "bytes")
	}
}
