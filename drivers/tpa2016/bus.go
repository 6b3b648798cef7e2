package tpa2016

// I2C 8-bit register operations. The TPA2016 uses the plain SMBus byte
// protocol: write the sub-address, then read or write one data byte.

func (d *Device) readByte(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.i2c.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}

func (d *Device) writeByte(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	return d.i2c.Tx(d.addr, d.w[:2], nil)
}

// readField extracts the bits described by f from its register.
// The result is in [0, 1<<f.width - 1].
func (d *Device) readField(f field) (uint8, error) {
	b, err := d.readByte(f.reg)
	if err != nil {
		return 0, err
	}
	return (b >> f.shift) & f.mask(), nil
}

// writeField inserts code into the bits described by f, preserving every
// other bit of the register (read-modify-write). Codes wider than the field
// are rejected with ErrCodeRange before any bus transaction.
func (d *Device) writeField(f field, code uint8) error {
	if code > f.mask() {
		return ErrCodeRange
	}
	b, err := d.readByte(f.reg)
	if err != nil {
		return err
	}
	b = (b &^ (f.mask() << f.shift)) | (code << f.shift)
	return d.writeByte(f.reg, b)
}

// Bit accessors: width-1 specialization with boolean semantics.

func (d *Device) readBit(f field) (bool, error) {
	v, err := d.readField(f)
	return v != 0, err
}

func (d *Device) writeBit(f field, on bool) error {
	var code uint8
	if on {
		code = 1
	}
	return d.writeField(f, code)
}
