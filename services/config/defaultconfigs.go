package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: board ID. Val: raw JSON bytes for that board. Extend at build
// time or manually during development.
// -----------------------------------------------------------------------------

const cfgSonata = `{
  "board": "sonata",
  "clock_hz": 50000000,
  "gpio": [
    {"id": "gpio0", "header": "board"},
    {"id": "gpio_rpi", "header": "rpi_hat"},
    {"id": "gpio_ash", "header": "arduino_shield"},
    {"id": "gpio_pmod0", "header": "pmod"},
    {"id": "gpio_pmod1", "header": "pmod"},
    {"id": "gpio_pmodc", "header": "pmod_c"}
  ],
  "uart": [
    {"id": "uart0", "baud": 115200},
    {"id": "uart1", "baud": 115200}
  ]
}`

var embeddedConfigs = map[string][]byte{
	"sonata": []byte(cfgSonata),
}
