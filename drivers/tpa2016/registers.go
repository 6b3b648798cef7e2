// Package tpa2016 provides constants for register addresses and bitfields
// used in the operation of the TPA2016D2 class-D audio amplifier.
package tpa2016

const (
	// 7-bit I2C address (101_1000b). Fixed; the chip has no address pins.
	AddressDefault = 0x58

	// --- Register sub-addresses (8-bit registers) ---

	regControl = 0x01 // R/W: enables, shutdown, fault latches, noise gate enable
	regAttack  = 0x02 // R/W: AGC attack time, bits 5:0
	regRelease = 0x03 // R/W: AGC release time, bits 5:0
	regHold    = 0x04 // R/W: AGC hold time, bits 5:0
	regGain    = 0x05 // R/W: fixed gain, bits 5:0 (two's complement dB)
	regLimiter = 0x06 // R/W: limiter disable, noise gate threshold, limiter level
	regAGC     = 0x07 // R/W: max gain (bits 7:4), compression ratio (bits 1:0)
)

// field describes a contiguous bit span within one register.
type field struct {
	reg   byte
	shift byte // bit offset of the LSB, 0..7
	width byte // 1..8
}

func (f field) mask() byte {
	return byte((1 << f.width) - 1) // unshifted
}

// Bit-field descriptors, one per named setting.
var (
	fldAttack       = field{regAttack, 0, 6}
	fldRelease      = field{regRelease, 0, 6}
	fldHold         = field{regHold, 0, 6}
	fldFixedGain    = field{regGain, 0, 6}
	fldLimiterLevel = field{regLimiter, 0, 5}
	fldNGThreshold  = field{regLimiter, 5, 2}
	fldMaxGain      = field{regAGC, 4, 4}
	fldCompression  = field{regAGC, 0, 2}

	bitSpeakerR       = field{regControl, 7, 1}
	bitSpeakerL       = field{regControl, 6, 1}
	bitShutdown       = field{regControl, 5, 1}
	bitFaultR         = field{regControl, 4, 1}
	bitFaultL         = field{regControl, 3, 1}
	bitThermal        = field{regControl, 2, 1}
	bitNoiseGate      = field{regControl, 0, 1}
	bitLimiterDisable = field{regLimiter, 7, 1}
)

// CompressionRatio selects the AGC compression ratio (register 0x07, bits 1:0).
type CompressionRatio uint8

const (
	Compression1to1 CompressionRatio = 0x0 // AGC off
	Compression2to1 CompressionRatio = 0x1
	Compression4to1 CompressionRatio = 0x2 // power-on default
	Compression8to1 CompressionRatio = 0x3
)

// NoiseGateThreshold selects the level below which the AGC holds its gain
// (register 0x06, bits 6:5). Only functional when the compression ratio is
// not 1:1.
type NoiseGateThreshold uint8

const (
	NoiseGate1mV  NoiseGateThreshold = 0x0
	NoiseGate4mV  NoiseGateThreshold = 0x1 // power-on default
	NoiseGate10mV NoiseGateThreshold = 0x2
	NoiseGate20mV NoiseGateThreshold = 0x3
)
