package tpa2016

import (
	"time"

	"ampcode-go/x/mathx"
)

// Documented legal ranges for the physical-unit setters.
const (
	FixedGainMin_dB = -28
	FixedGainMax_dB = 30
	MaxGainMin_dB   = 18
	MaxGainMax_dB   = 30

	// Limiter level in tenths of a dBV: -6.5..9.0 dBV, 0.5 dB per code.
	LimiterLevelMin_decidB = -65
	LimiterLevelMax_decidB = 90
)

// AGC time per code, from the datasheet conversion constants.
const (
	attackStep  = 106700 * time.Nanosecond // 0.1067 ms
	releaseStep = 13700 * time.Nanosecond  // 0.0137 ms
	holdStep    = 13700 * time.Nanosecond  // 0.0137 ms
)

// ---------------- AGC timing (raw 6-bit codes) ----------------

func (d *Device) AttackCode() (uint8, error)  { return d.readField(fldAttack) }
func (d *Device) ReleaseCode() (uint8, error) { return d.readField(fldRelease) }
func (d *Device) HoldCode() (uint8, error)    { return d.readField(fldHold) }

// SetAttackCode writes the raw attack-time code (0..63).
func (d *Device) SetAttackCode(code uint8) error { return d.writeField(fldAttack, code) }

// SetReleaseCode writes the raw release-time code (0..63).
func (d *Device) SetReleaseCode(code uint8) error { return d.writeField(fldRelease, code) }

// SetHoldCode writes the raw hold-time code (0..63). Code 0 disables the
// hold phase.
func (d *Device) SetHoldCode(code uint8) error { return d.writeField(fldHold, code) }

// AttackTime returns the AGC attack time (code × 0.1067 ms).
func (d *Device) AttackTime() (time.Duration, error) {
	c, err := d.readField(fldAttack)
	return time.Duration(c) * attackStep, err
}

// ReleaseTime returns the AGC release time (code × 0.0137 ms).
func (d *Device) ReleaseTime() (time.Duration, error) {
	c, err := d.readField(fldRelease)
	return time.Duration(c) * releaseStep, err
}

// HoldTime returns the AGC hold time (code × 0.0137 ms).
func (d *Device) HoldTime() (time.Duration, error) {
	c, err := d.readField(fldHold)
	return time.Duration(c) * holdStep, err
}

// ---------------- Fixed gain ----------------

// FixedGain returns the fixed gain in dB. The 6-bit field is two's
// complement; bit 5 carries the sign.
func (d *Device) FixedGain() (int, error) {
	c, err := d.readField(fldFixedGain)
	if err != nil {
		return 0, err
	}
	v := int(c)
	if c&0x20 != 0 {
		v -= 64
	}
	return v, nil
}

// SetFixedGain sets the fixed gain in dB, -28..30, encoded as 6-bit two's
// complement. With compression disabled (ratio 1:1) the chip only honours
// 0..30 dB; that chip-side restriction is not enforced here.
func (d *Device) SetFixedGain(dB int) error {
	if !mathx.Between(dB, FixedGainMin_dB, FixedGainMax_dB) {
		return ErrGainRange
	}
	return d.writeField(fldFixedGain, uint8(dB)&0x3F)
}

// ---------------- Output limiter ----------------

// LimiterLevel_decidB returns the output limiter level in tenths of a dBV.
func (d *Device) LimiterLevel_decidB() (int32, error) {
	c, err := d.readField(fldLimiterLevel)
	return LimiterLevelMin_decidB + int32(c)*5, err
}

// LimiterLevel returns the output limiter level in dBV (float). Prefer
// LimiterLevel_decidB for fixed-point.
func (d *Device) LimiterLevel() (float32, error) {
	v, err := d.LimiterLevel_decidB()
	return float32(v) / 10, err
}

// SetLimiterLevel_decidB sets the output limiter level in tenths of a dBV,
// -65..90. Values between the chip's 0.5 dB steps round to the nearest code.
func (d *Device) SetLimiterLevel_decidB(v int32) error {
	if !mathx.Between(v, LimiterLevelMin_decidB, LimiterLevelMax_decidB) {
		return ErrLimiterRange
	}
	code := uint8((v - LimiterLevelMin_decidB + 2) / 5)
	return d.writeField(fldLimiterLevel, code)
}

// ---------------- Max gain ----------------

// MaxGain returns the maximum gain the AGC can reach, in dB.
func (d *Device) MaxGain() (int, error) {
	c, err := d.readField(fldMaxGain)
	return int(c) + MaxGainMin_dB, err
}

// SetMaxGain sets the maximum AGC gain in dB, 18..30.
func (d *Device) SetMaxGain(dB int) error {
	if !mathx.Between(dB, MaxGainMin_dB, MaxGainMax_dB) {
		return ErrMaxGainRange
	}
	return d.writeField(fldMaxGain, uint8(dB-MaxGainMin_dB))
}

// ---------------- Compression ratio ----------------

func (d *Device) CompressionRatio() (CompressionRatio, error) {
	c, err := d.readField(fldCompression)
	return CompressionRatio(c), err
}

// SetCompressionRatio selects the AGC compression ratio. Codes above
// Compression8to1 are rejected with ErrCodeRange.
func (d *Device) SetCompressionRatio(r CompressionRatio) error {
	return d.writeField(fldCompression, uint8(r))
}

func (r CompressionRatio) String() string {
	switch r {
	case Compression1to1:
		return "1:1"
	case Compression2to1:
		return "2:1"
	case Compression4to1:
		return "4:1"
	case Compression8to1:
		return "8:1"
	}
	return "unknown"
}

// ---------------- Noise gate threshold ----------------

func (d *Device) NoiseGateThresholdSetting() (NoiseGateThreshold, error) {
	c, err := d.readField(fldNGThreshold)
	return NoiseGateThreshold(c), err
}

// SetNoiseGateThreshold selects the noise gate threshold. Only functional
// when the compression ratio is not 1:1 (chip-side precondition, not
// enforced here).
func (d *Device) SetNoiseGateThreshold(t NoiseGateThreshold) error {
	return d.writeField(fldNGThreshold, uint8(t))
}

func (t NoiseGateThreshold) String() string {
	switch t {
	case NoiseGate1mV:
		return "1mV"
	case NoiseGate4mV:
		return "4mV"
	case NoiseGate10mV:
		return "10mV"
	case NoiseGate20mV:
		return "20mV"
	}
	return "unknown"
}
