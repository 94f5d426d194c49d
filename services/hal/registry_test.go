package hal

import (
	"testing"

	"sonata-hal-go/drivers/gpio"
	"sonata-hal-go/errcode"
)

func TestRegistry_AddGetControl(t *testing.T) {
	r := NewRegistry()
	regs := new(gpio.Regs)
	r.Add(NewGPIOAdaptor("gpio0", gpio.NewBoardPort(regs)))

	if _, ok := r.Get("gpio0"); !ok {
		t.Fatal("gpio0 not found")
	}
	if _, err := r.Control("gpio0", "gpio", "led_on", map[string]any{"index": float64(0)}); err != nil {
		t.Fatalf("control: %v", err)
	}
	if !regs.Output.HasBits(1) {
		t.Fatal("control verb did not reach the port")
	}
	if _, err := r.Control("nope", "gpio", "led_on", nil); err != errcode.UnknownDevice {
		t.Fatalf("unknown device err = %v", err)
	}

	caps := r.Capabilities()
	if len(caps) != 1 || len(caps["gpio0"]) != 1 {
		t.Fatalf("capabilities = %+v", caps)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	a := NewGPIOAdaptor("gpio0", gpio.NewBoardPort(new(gpio.Regs)))
	r.Add(a)

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate Add should panic")
		}
	}()
	r.Add(a)
}
