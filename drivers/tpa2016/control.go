package tpa2016

// Control register (0x01) bits: channel enables, software shutdown, latched
// fault flags and the noise gate enable. The limiter disable bit lives in
// register 0x06 but is a plain boolean and is handled here with the rest.

func (d *Device) SpeakerEnabledL() (bool, error) { return d.readBit(bitSpeakerL) }
func (d *Device) SpeakerEnabledR() (bool, error) { return d.readBit(bitSpeakerR) }

func (d *Device) SetSpeakerEnableL(on bool) error { return d.writeBit(bitSpeakerL, on) }
func (d *Device) SetSpeakerEnableR(on bool) error { return d.writeBit(bitSpeakerR, on) }

// EnableSpeakers sets both channel enables in a single read-modify-write.
func (d *Device) EnableSpeakers(left, right bool) error {
	b, err := d.readByte(regControl)
	if err != nil {
		return err
	}
	if left {
		b |= 1 << bitSpeakerL.shift
	} else {
		b &^= 1 << bitSpeakerL.shift
	}
	if right {
		b |= 1 << bitSpeakerR.shift
	} else {
		b &^= 1 << bitSpeakerR.shift
	}
	return d.writeByte(regControl, b)
}

// ShutdownEnabled reports whether the amplifier is in software shutdown.
func (d *Device) ShutdownEnabled() (bool, error) { return d.readBit(bitShutdown) }

// SetShutdown places the amplifier in (or releases it from) software
// shutdown. In shutdown the control interface stays active.
func (d *Device) SetShutdown(on bool) error { return d.writeBit(bitShutdown, on) }

// Faults reads the latched fault flags in a single transaction: left/right
// channel over-current and over-temperature.
func (d *Device) Faults() (left, right, thermal bool, err error) {
	b, err := d.readByte(regControl)
	return b&(1<<bitFaultL.shift) != 0,
		b&(1<<bitFaultR.shift) != 0,
		b&(1<<bitThermal.shift) != 0,
		err
}

// Fault latches clear by writing a zero to the corresponding bit.

func (d *Device) ResetFaultL() error  { return d.writeBit(bitFaultL, false) }
func (d *Device) ResetFaultR() error  { return d.writeBit(bitFaultR, false) }
func (d *Device) ResetThermal() error { return d.writeBit(bitThermal, false) }

func (d *Device) NoiseGateEnabled() (bool, error) { return d.readBit(bitNoiseGate) }

// SetNoiseGateEnable turns the noise gate on or off. The chip only honours
// the gate when the compression ratio is not 1:1; that precondition is a
// caller responsibility.
func (d *Device) SetNoiseGateEnable(on bool) error { return d.writeBit(bitNoiseGate, on) }

func (d *Device) LimiterDisabled() (bool, error) { return d.readBit(bitLimiterDisable) }

// SetLimiterDisable switches the output limiter off or back on. The chip
// only allows disabling when the compression ratio is 1:1; that
// precondition is a caller responsibility.
func (d *Device) SetLimiterDisable(off bool) error { return d.writeBit(bitLimiterDisable, off) }
