// Package mmio provides typed access to 32-bit memory-mapped hardware
// registers. A register block is an ordinary struct whose fields are all
// Reg32, laid out in the device's register order, and mapped onto a base
// address with Map.
package mmio

import (
	"sync/atomic"
	"unsafe"
)

// Reg32 is one 32-bit hardware register.
//
// Device registers have side effects invisible to ordinary data-flow
// analysis, so every access must hit memory: Get and Set go through
// sync/atomic, which guarantees a real, untorn 32-bit load or store that
// the compiler cannot cache or elide.
//
// The bit helpers are read-modify-write sequences, not atomic RMW ops.
// If two contexts mutate the same register concurrently one update can be
// lost; exclusive ownership of a register block is the caller's contract.
type Reg32 struct {
	v uint32
}

// Get reads the register.
func (r *Reg32) Get() uint32 { return atomic.LoadUint32(&r.v) }

// Set writes the register.
func (r *Reg32) Set(v uint32) { atomic.StoreUint32(&r.v, v) }

// SetBits ORs mask into the register.
func (r *Reg32) SetBits(mask uint32) { r.Set(r.Get() | mask) }

// ClearBits clears every bit of mask in the register.
func (r *Reg32) ClearBits(mask uint32) { r.Set(r.Get() &^ mask) }

// ToggleBits XORs mask into the register.
func (r *Reg32) ToggleBits(mask uint32) { r.Set(r.Get() ^ mask) }

// HasBits reports whether any bit of mask is set in the register.
func (r *Reg32) HasBits(mask uint32) bool { return r.Get()&mask != 0 }

// Map casts a device base address to a register block pointer. T must be a
// struct of Reg32 fields matching the device's register map; the field
// order is the wire contract with the hardware.
func Map[T any](addr uintptr) *T {
	return (*T)(unsafe.Pointer(addr))
}
