package hal

import (
	"context"
	"time"

	"sonata-hal-go/errcode"
	"sonata-hal-go/types"
)

// defaultIOTimeout bounds the per-transfer wait of the UART verbs. The
// raw driver keeps its unbounded blocking calls; the service layer
// always goes through the context variants so a stalled peripheral
// surfaces as errcode.Timeout instead of a wedged service.
const defaultIOTimeout = 500 * time.Millisecond

type uartAdaptor struct {
	id      string
	port    UARTPort
	timeout time.Duration
}

// NewUARTAdaptor wraps a serial device for the registry. timeout bounds
// each write/read verb; zero picks the default.
func NewUARTAdaptor(id string, port UARTPort, timeout time.Duration) Adaptor {
	if timeout <= 0 {
		timeout = defaultIOTimeout
	}
	return &uartAdaptor{id: id, port: port, timeout: timeout}
}

func (a *uartAdaptor) ID() string { return a.id }

func (a *uartAdaptor) Capabilities() []CapInfo {
	return []CapInfo{{Kind: "uart", Info: types.SerialInfo{
		Baud:          a.port.Baud(),
		ClockHz:       a.port.ClockHz(),
		SchemaVersion: 1,
	}}}
}

func (a *uartAdaptor) Control(kind, method string, payload any) (any, error) {
	if kind != "uart" {
		return nil, errcode.Unsupported
	}
	switch method {
	case "set_baud":
		baud := wantInt(payload, "baud")
		if baud <= 0 {
			return nil, errcode.InvalidParams
		}
		a.port.Init(uint32(baud))
		return types.OKReply{OK: true}, nil
	case "write":
		data := wantBytes(payload, "data")
		if len(data) == 0 {
			return nil, errcode.InvalidParams
		}
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		for i, b := range data {
			if err := a.port.WriteByteContext(ctx, b); err != nil {
				return map[string]any{"written": i}, errcode.MapDriverErr(err)
			}
		}
		return map[string]any{"written": len(data)}, nil
	case "read":
		// Drain what the receive FIFO already holds; never waits.
		n := a.port.Buffered()
		if n == 0 {
			return map[string]any{"data": []byte{}}, nil
		}
		data := make([]byte, 0, n)
		for i := 0; i < n; i++ {
			b, err := a.port.ReadByte()
			if err != nil {
				return map[string]any{"data": data}, errcode.MapDriverErr(err)
			}
			data = append(data, b)
		}
		return map[string]any{"data": data}, nil
	case "read_byte":
		// Bounded wait for a single byte.
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		b, err := a.port.ReadByteContext(ctx)
		if err != nil {
			return nil, errcode.MapDriverErr(err)
		}
		return map[string]any{"byte": int(b)}, nil
	default:
		return nil, errcode.Unsupported
	}
}
