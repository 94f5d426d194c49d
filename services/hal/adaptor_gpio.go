package hal

import (
	"sonata-hal-go/drivers/gpio"
	"sonata-hal-go/errcode"
	"sonata-hal-go/types"
)

// gpioAdaptor exposes the board GPIO port. Mutating verbs report an
// out-of-mask index as errcode.UnknownPin; read verbs follow the driver
// contract and simply answer false for indices outside the mask.
type gpioAdaptor struct {
	id   string
	port *gpio.BoardPort
}

// NewGPIOAdaptor wraps the board GPIO port for the registry.
func NewGPIOAdaptor(id string, port *gpio.BoardPort) Adaptor {
	return &gpioAdaptor{id: id, port: port}
}

func (a *gpioAdaptor) ID() string { return a.id }

func (a *gpioAdaptor) Capabilities() []CapInfo {
	return []CapInfo{{Kind: "gpio", Info: types.GPIOInfo{
		OutputMask:    a.port.OutputMask(),
		InputMask:     a.port.InputMask(),
		LEDs:          gpio.LEDCount,
		Switches:      gpio.SwitchCount,
		Joystick:      true,
		SchemaVersion: 1,
	}}}
}

// pinIndex extracts a pin index for a mutating verb. Indices beyond the
// 8-bit pin space must never wrap onto a real pin, so they are rejected
// as unknown_pin before any conversion; a missing or negative index is
// invalid_params.
func pinIndex(payload any) (uint8, error) {
	idx := wantInt(payload, "index")
	if idx < 0 {
		return 0, errcode.InvalidParams
	}
	if idx > 0xFF {
		return 0, errcode.UnknownPin
	}
	return uint8(idx), nil
}

// readIndex extracts a pin index for a read verb. Indices beyond the
// 8-bit pin space read as level 0, the same answer as any out-of-mask
// pin.
func readIndex(payload any) (idx uint8, inRange bool, err error) {
	i := wantInt(payload, "index")
	if i < 0 {
		return 0, false, errcode.InvalidParams
	}
	if i > 0xFF {
		return 0, false, nil
	}
	return uint8(i), true, nil
}

func (a *gpioAdaptor) Control(kind, method string, payload any) (any, error) {
	if kind != "gpio" {
		return nil, errcode.Unsupported
	}
	switch method {
	case "led_on":
		return a.led(payload, (*gpio.BoardPort).LEDOn)
	case "led_off":
		return a.led(payload, (*gpio.BoardPort).LEDOff)
	case "led_toggle":
		return a.led(payload, (*gpio.BoardPort).LEDToggle)
	case "read_switch":
		idx, inRange, err := readIndex(payload)
		if err != nil {
			return nil, err
		}
		lvl := inRange && a.port.ReadSwitch(gpio.SwitchIndex(idx))
		return map[string]any{"level": boolToInt(lvl)}, nil
	case "read_joystick":
		j := a.port.ReadJoystick()
		return types.JoystickState{
			Left:    j.Has(gpio.JoystickLeft),
			Up:      j.Has(gpio.JoystickUp),
			Pressed: j.Has(gpio.JoystickPressed),
			Down:    j.Has(gpio.JoystickDown),
			Right:   j.Has(gpio.JoystickRight),
		}, nil
	case "output_set":
		idx, err := pinIndex(payload)
		if err != nil {
			return nil, err
		}
		if !a.port.OutputSet(idx, wantBool(payload, "level")) {
			return nil, errcode.UnknownPin
		}
		return types.OKReply{OK: true}, nil
	case "output_enable":
		idx, err := pinIndex(payload)
		if err != nil {
			return nil, err
		}
		if !a.port.OutputEnable(idx, wantBool(payload, "enable")) {
			return nil, errcode.UnknownPin
		}
		return types.OKReply{OK: true}, nil
	case "input_get":
		idx, inRange, err := readIndex(payload)
		if err != nil {
			return nil, err
		}
		lvl := inRange && a.port.InputGet(idx)
		return map[string]any{"level": boolToInt(lvl)}, nil
	case "input_debounced_get":
		idx, inRange, err := readIndex(payload)
		if err != nil {
			return nil, err
		}
		lvl := inRange && a.port.InputDebouncedGet(idx)
		return map[string]any{"level": boolToInt(lvl)}, nil
	case "software_select":
		return map[string]any{"value": int(a.port.SoftwareSelect())}, nil
	case "sd_present":
		return map[string]any{"present": a.port.SDCardPresent()}, nil
	default:
		return nil, errcode.Unsupported
	}
}

func (a *gpioAdaptor) led(payload any, op func(*gpio.BoardPort, gpio.LEDIndex) bool) (any, error) {
	idx, err := pinIndex(payload)
	if err != nil {
		return nil, err
	}
	if !op(a.port, gpio.LEDIndex(idx)) {
		return nil, errcode.UnknownPin
	}
	return types.OKReply{OK: true}, nil
}
