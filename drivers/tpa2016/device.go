// Package tpa2016 provides a minimal TinyGo driver for the TPA2016D2
// stereo class-D audio amplifier with automatic gain control.
//
// Design notes (datasheet references):
//   - I2C, 400kHz, single-byte register read/write protocol.
//   - Fixed 7-bit address = 0b1011000; the part has no address pins.
//   - Seven 8-bit registers: control/faults (0x01), AGC attack/release/hold
//     (0x02..0x04), fixed gain (0x05), limiter + noise gate (0x06),
//     max gain + compression ratio (0x07).
//   - All settings are read-modify-write on their bitfields; register state
//     lives on the chip, the driver holds none.
//
// The driver is synchronous and blocking; callers sharing a Device across
// goroutines must serialize access themselves.
package tpa2016

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Sentinel errors (TinyGo-safe; no fmt)
var (
	ErrGainRange    = errors.New("tpa2016: fixed gain must be -28..30 dB")
	ErrLimiterRange = errors.New("tpa2016: limiter level must be -6.5..9 dBV")
	ErrMaxGainRange = errors.New("tpa2016: max gain must be 18..30 dB")
	ErrCodeRange    = errors.New("tpa2016: code exceeds field width")
)

// Config holds construction parameters.
type Config struct {
	Address uint16 // defaults to AddressDefault if zero
}

// DefaultConfig returns the standard configuration for the bare chip.
func DefaultConfig() Config {
	return Config{Address: AddressDefault}
}

// Device represents a TPA2016 instance on an I²C bus.
type Device struct {
	i2c  drivers.I2C
	addr uint16

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [1]byte
}

// New constructs a Device with supplied config. The I2C bus must already be
// configured; New performs no bus traffic.
func New(i2c drivers.I2C, cfg Config) *Device {
	addr := cfg.Address
	if addr == 0 {
		addr = AddressDefault
	}
	return &Device{
		i2c:  i2c,
		addr: addr,
	}
}

// Connected probes the device by reading the control register.
func (d *Device) Connected() (bool, error) {
	if _, err := d.readByte(regControl); err != nil {
		return false, err
	}
	return true, nil
}
