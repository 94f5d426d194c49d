package uart

import (
	"context"
	"time"

	"tinygo.org/x/drivers"
)

// DefaultBaudRate is used when Init is asked for a zero rate.
const DefaultBaudRate = 115200

// Controller drives one UART instance. It has no software state machine:
// behaviour is fully determined by the hardware FIFO occupancy at each
// poll. The protocol is Init once, then interleave writes and reads at
// will.
//
// Controller does no locking and no internal queuing; ownership of the
// register block is the caller's contract, and the blocking calls spin
// until the hardware condition holds.
type Controller struct {
	regs    *Regs
	clockHz uint32
	baud    uint32
}

// Controller plugs into the TinyGo driver ecosystem as a serial port.
var _ drivers.UART = (*Controller)(nil)

// New builds a controller over regs. clockHz is the system clock feeding
// the UART's baud generator.
func New(regs *Regs, clockHz uint32) *Controller {
	return &Controller{regs: regs, clockHz: clockHz, baud: DefaultBaudRate}
}

// NCODivisor returns the 20-bit-scaled baud divisor for a clock. The
// intermediate is 64-bit so baudRate<<20 cannot overflow for realistic
// rates.
func NCODivisor(baudRate, clockHz uint32) uint32 {
	return uint32((uint64(baudRate) << ncoScaleBits) / uint64(clockHz))
}

// Init programs the baud divisor and enables transmit and receive. Call
// it once before any transfer; it must not race an active transfer.
func (c *Controller) Init(baudRate uint32) {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	c.baud = baudRate
	c.regs.Ctrl.Set(NCODivisor(baudRate, c.clockHz)<<ctrlNCOShift | ctrlRXEnable | ctrlTXEnable)
}

// Baud returns the last rate passed to Init.
func (c *Controller) Baud() uint32 { return c.baud }

// ClockHz returns the system clock the divisor is derived from.
func (c *Controller) ClockHz() uint32 { return c.clockHz }

// CanWrite reports whether the transmit FIFO has room for another byte.
func (c *Controller) CanWrite() bool {
	return c.regs.FifoStatus.Get()&fifoStatusTXLevelMask < fifoDepth
}

// CanRead reports whether the receive FIFO holds at least one byte.
func (c *Controller) CanRead() bool {
	return (c.regs.FifoStatus.Get()>>fifoStatusRXLevelShift)&fifoStatusRXLevelMask > 0
}

// BlockingWriteByte spins until the transmit FIFO has room, then queues
// b. If the hardware never drains the FIFO this call never returns.
func (c *Controller) BlockingWriteByte(b byte) {
	for !c.CanWrite() {
	}
	c.regs.WData.Set(uint32(b))
}

// BlockingReadByte spins until the receive FIFO holds a byte, then
// returns it. If nothing ever arrives this call never returns.
func (c *Controller) BlockingReadByte() byte {
	for !c.CanRead() {
	}
	return byte(c.regs.RData.Get())
}

// Buffered returns the receive FIFO occupancy.
func (c *Controller) Buffered() int {
	return int((c.regs.FifoStatus.Get() >> fifoStatusRXLevelShift) & fifoStatusRXLevelMask)
}

// ReadByte blocks until a byte is available. The error is always nil; the
// signature matches drivers.UART.
func (c *Controller) ReadByte() (byte, error) {
	return c.BlockingReadByte(), nil
}

// WriteByte blocks until the transmit FIFO accepts b.
func (c *Controller) WriteByte(b byte) error {
	c.BlockingWriteByte(b)
	return nil
}

// Write queues all of p, spinning whenever the transmit FIFO is full.
func (c *Controller) Write(p []byte) (int, error) {
	for _, b := range p {
		c.BlockingWriteByte(b)
	}
	return len(p), nil
}

// Read drains up to len(p) bytes already held in the receive FIFO. It
// never blocks; with an empty FIFO it returns 0, nil.
func (c *Controller) Read(p []byte) (int, error) {
	n := c.Buffered()
	if n == 0 {
		return 0, nil
	}
	if n > len(p) {
		n = len(p)
	}
	for i := 0; i < n; i++ {
		p[i] = byte(c.regs.RData.Get())
	}
	return n, nil
}

// Polling cadence of the context-bounded variants below. The bounded
// calls are an addition on top of the polling core; the unbounded
// Blocking* calls remain the primary protocol.
const pollInterval = 50 * time.Microsecond

// WriteByteContext polls CanWrite and queues b once there is room,
// giving up with ctx.Err() when ctx is cancelled or times out.
func (c *Controller) WriteByteContext(ctx context.Context, b byte) error {
	for !c.CanWrite() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			time.Sleep(pollInterval)
		}
	}
	c.regs.WData.Set(uint32(b))
	return nil
}

// ReadByteContext polls CanRead and returns the next byte, giving up
// with ctx.Err() when ctx is cancelled or times out.
func (c *Controller) ReadByteContext(ctx context.Context) (byte, error) {
	for !c.CanRead() {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
			time.Sleep(pollInterval)
		}
	}
	return byte(c.regs.RData.Get()), nil
}
