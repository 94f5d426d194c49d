package gpio

// Sonata board GPIO instance: bit assignments fixed by the board wiring.
const (
	BoardOutputMask = 0x0000_00FF
	BoardInputMask  = 0x0001_FFFF

	// Output groups.
	LEDMask  = 0xFF << 0
	FirstLED = 0
	LastLED  = 7
	LEDCount = LastLED - FirstLED + 1

	// Input groups.
	SwitchMask  = 0xFF << 0
	FirstSwitch = 0
	LastSwitch  = 7
	SwitchCount = LastSwitch - FirstSwitch + 1

	JoystickMask = 0x1F << 8

	SoftwareSelectMask  = 0x7 << 13
	softwareSelectShift = 13

	SDCardDetectBit = 16
)

// Layout checks: every named group must sit inside the board masks.
// A non-zero constant index fails to compile.
var (
	_ = [1]struct{}{}[LEDMask&^BoardOutputMask]
	_ = [1]struct{}{}[(SwitchMask|JoystickMask|SoftwareSelectMask|1<<SDCardDetectBit)&^BoardInputMask]
)

// LEDIndex names one of the eight user LEDs. Using the LED0..LED7
// constants moves index validation to the call site, the closest Go gets
// to a compile-time-checked pin; indices only known at run time go
// through LEDIndex(i) and get the usual reported-no-op treatment.
type LEDIndex uint8

const (
	LED0 LEDIndex = iota
	LED1
	LED2
	LED3
	LED4
	LED5
	LED6
	LED7
)

// SwitchIndex names one of the eight user DIP switches.
type SwitchIndex uint8

const (
	Switch0 SwitchIndex = iota
	Switch1
	Switch2
	Switch3
	Switch4
	Switch5
	Switch6
	Switch7
)

// Joystick is one snapshot of the joystick input bits. Up to three bits
// can be set at once: pressing the stick down while pushing it diagonally
// asserts Pressed plus two cardinal directions. That is a hardware
// property, not an error.
type Joystick uint32

const (
	JoystickLeft    Joystick = 1 << 8
	JoystickUp      Joystick = 1 << 9
	JoystickPressed Joystick = 1 << 10
	JoystickDown    Joystick = 1 << 11
	JoystickRight   Joystick = 1 << 12
)

// Has reports whether every bit of flag is asserted in the snapshot.
func (j Joystick) Has(flag Joystick) bool { return j&flag == flag && flag != 0 }

func (j Joystick) String() string {
	if j == 0 {
		return "idle"
	}
	s := ""
	add := func(name string, flag Joystick) {
		if j&flag == 0 {
			return
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	add("left", JoystickLeft)
	add("up", JoystickUp)
	add("pressed", JoystickPressed)
	add("down", JoystickDown)
	add("right", JoystickRight)
	return s
}

// BoardPort is the Sonata board GPIO: user LEDs on the output side, DIP
// switches, joystick, software select switches and the microSD detect
// line on the input side.
type BoardPort struct {
	Port
}

// NewBoardPort builds the board instance over regs.
func NewBoardPort(regs *Regs) *BoardPort {
	return &BoardPort{Port: Port{
		regs:       regs,
		outputMask: BoardOutputMask,
		inputMask:  BoardInputMask,
	}}
}

// ledBit is the output register bit for a user LED index, masked so an
// out-of-range index yields 0.
func ledBit(index LEDIndex) uint32 {
	return BitFor(uint8(index)+FirstLED, LEDMask)
}

// switchBit is the input register bit for a user switch index.
func switchBit(index SwitchIndex) uint32 {
	return BitFor(uint8(index)+FirstSwitch, SwitchMask)
}

// The LED and switch helpers route through the same masked-bit computation
// as the generic accessors: an out-of-range index is a reported no-op, it
// never lands on a neighbouring bit.

// LEDOn switches the LED at index on. Reports whether index named a real
// LED.
func (b *BoardPort) LEDOn(index LEDIndex) bool {
	bit := ledBit(index)
	b.regs.Output.SetBits(bit)
	return bit != 0
}

// LEDOff switches the LED at index off.
func (b *BoardPort) LEDOff(index LEDIndex) bool {
	bit := ledBit(index)
	b.regs.Output.ClearBits(bit)
	return bit != 0
}

// LEDToggle flips the LED at index. Toggling twice restores the register.
func (b *BoardPort) LEDToggle(index LEDIndex) bool {
	bit := ledBit(index)
	b.regs.Output.ToggleBits(bit)
	return bit != 0
}

// EnableLEDs puts every LED pin into output mode in one write.
func (b *BoardPort) EnableLEDs() {
	b.regs.OutputEnable.SetBits(LEDMask)
}

// ReadSwitch returns the level of the DIP switch at index; false for an
// out-of-range index.
func (b *BoardPort) ReadSwitch(index SwitchIndex) bool {
	return b.regs.Input.HasBits(switchBit(index))
}

// ReadJoystick snapshots the joystick bits in a single register read.
func (b *BoardPort) ReadJoystick() Joystick {
	return Joystick(b.regs.Input.Get() & JoystickMask)
}

// SoftwareSelect returns the three software select switches as a value in
// [0,8).
func (b *BoardPort) SoftwareSelect() uint8 {
	return uint8((b.regs.Input.Get() & SoftwareSelectMask) >> softwareSelectShift)
}

// SDCardPresent reports whether a microSD card is detected.
func (b *BoardPort) SDCardPresent() bool {
	return b.regs.Input.HasBits(1 << SDCardDetectBit)
}
