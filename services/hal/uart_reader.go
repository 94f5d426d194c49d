package hal

import (
	"context"
	"errors"
	"time"
)

// Event is one received frame from a UART reader.
type Event struct {
	DevID string
	Data  []byte
	TS    time.Time
}

// ReaderCfg configures one bounded RX pump.
type ReaderCfg struct {
	DevID     string
	Port      RXPort
	MaxFrame  int           // clamp 16..256
	Poll      time.Duration // FIFO poll cadence; default 1ms
	IdleFlush time.Duration // flush a partial frame after this idle gap; clamp 0..2s
}

// Reader drains UART receive FIFOs into an event channel. It is the
// bounded counterpart of the driver's spin loops: each pump polls on a
// ticker and stops when its context is cancelled, so a silent peripheral
// costs a timer tick, never a wedged goroutine.
type Reader struct {
	outQ chan Event
}

func NewReader(outBuf int) *Reader {
	if outBuf <= 0 {
		outBuf = 64
	}
	return &Reader{outQ: make(chan Event, outBuf)}
}

func (r *Reader) Events() <-chan Event { return r.outQ }

// Register starts a pump goroutine for one port. Returns its cancel.
func (r *Reader) Register(ctx context.Context, cfg ReaderCfg) (func(), error) {
	if cfg.Port == nil {
		return nil, errors.New("reader: nil port")
	}
	max := cfg.MaxFrame
	if max < 16 {
		max = 16
	}
	if max > 256 {
		max = 256
	}
	poll := cfg.Poll
	if poll <= 0 {
		poll = time.Millisecond
	}
	idle := cfg.IdleFlush
	if idle < 0 {
		idle = 0
	}
	if idle > 2*time.Second {
		idle = 2 * time.Second
	}
	cctx, cancel := context.WithCancel(ctx)

	go func() {
		frame := make([]byte, 0, max)
		var lastByte time.Time

		flush := func(now time.Time) {
			if len(frame) == 0 {
				return
			}
			payload := append([]byte(nil), frame...)
			frame = frame[:0]
			select {
			case r.outQ <- Event{DevID: cfg.DevID, Data: payload, TS: now}:
			default:
				// drop if the consumer is slow
			}
		}

		tick := time.NewTicker(poll)
		defer tick.Stop()

		for {
			select {
			case <-cctx.Done():
				flush(time.Now())
				return
			case now := <-tick.C:
				for cfg.Port.Buffered() > 0 {
					b, err := cfg.Port.ReadByte()
					if err != nil {
						break
					}
					frame = append(frame, b)
					lastByte = now
					if len(frame) >= max {
						flush(now)
					}
				}
				if idle > 0 && len(frame) > 0 && now.Sub(lastByte) >= idle {
					flush(now)
				}
			}
		}
	}()

	return cancel, nil
}
