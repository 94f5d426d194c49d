package config

import "testing"

func TestDefault_Sonata(t *testing.T) {
	c, err := Default("sonata")
	if err != nil {
		t.Fatalf("Default(sonata): %v", err)
	}
	if c.ClockHz != 50_000_000 {
		t.Fatalf("ClockHz = %d", c.ClockHz)
	}
	if len(c.GPIO) != 6 || len(c.UART) != 2 {
		t.Fatalf("devices = %d gpio, %d uart", len(c.GPIO), len(c.UART))
	}
	if c.GPIO[0].Header != HeaderBoard || c.UART[0].Baud != 115200 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestDefault_UnknownBoard(t *testing.T) {
	if _, err := Default("nope"); err == nil {
		t.Fatal("unknown board should fail")
	}
}

func TestLoad_RejectsBadJSON(t *testing.T) {
	if _, err := Load([]byte("{")); err == nil {
		t.Fatal("truncated JSON should fail")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing clock", `{"gpio": [], "uart": []}`},
		{"empty gpio id", `{"clock_hz": 1, "gpio": [{"id": "", "header": "board"}]}`},
		{"bad header", `{"clock_hz": 1, "gpio": [{"id": "g", "header": "weird"}]}`},
		{"duplicate id", `{"clock_hz": 1, "gpio": [{"id": "g", "header": "pmod"}], "uart": [{"id": "g", "baud": 9600}]}`},
		{"zero baud", `{"clock_hz": 1, "uart": [{"id": "u", "baud": 0}]}`},
	}
	for _, c := range cases {
		if _, err := Load([]byte(c.raw)); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}

	good := `{"clock_hz": 50000000, "gpio": [{"id": "g", "header": "pmod_c"}], "uart": [{"id": "u", "baud": 9600}]}`
	if _, err := Load([]byte(good)); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}
