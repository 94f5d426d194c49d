// Package types holds the JSON-shaped structs published by the HAL
// capability layer. They carry no behaviour and do not import the
// drivers.
package types

// GPIOInfo describes one GPIO port capability.
type GPIOInfo struct {
	OutputMask uint32 `json:"output_mask"`
	InputMask  uint32 `json:"input_mask"`
	LEDs       int    `json:"leds,omitempty"`
	Switches   int    `json:"switches,omitempty"`
	Joystick   bool   `json:"joystick,omitempty"`

	SchemaVersion int `json:"schema_version"`
}

// SerialInfo describes one UART capability.
type SerialInfo struct {
	Baud    uint32 `json:"baud"`
	ClockHz uint32 `json:"clock_hz"`

	SchemaVersion int `json:"schema_version"`
}

// JoystickState is a decoded joystick snapshot. Pressed plus up to two
// cardinal directions can be true at once.
type JoystickState struct {
	Left    bool `json:"left"`
	Up      bool `json:"up"`
	Pressed bool `json:"pressed"`
	Down    bool `json:"down"`
	Right   bool `json:"right"`
}

// OKReply acknowledges a control verb that carries no result.
type OKReply struct {
	OK bool `json:"ok"`
}

// ErrorReply reports a failed control verb with its error code.
type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
