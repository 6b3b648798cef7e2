// Package ampopen opens a TPA2016 on a host I2C bus located through the
// periph.io bus registry. It is host-side plumbing only; the driver itself
// has no periph dependency and runs against any drivers.I2C transport.
package ampopen

import (
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
	"tinygo.org/x/drivers"

	"ampcode-go/drivers/tpa2016"
)

// busAdapter narrows a periph i2c.Bus to the drivers.I2C transport.
type busAdapter struct {
	bus i2c.Bus
}

var _ drivers.I2C = busAdapter{}

func (b busAdapter) Tx(addr uint16, w, r []byte) error {
	return b.bus.Tx(addr, w, r)
}

// Open initialises the host drivers, opens the named I2C bus ("" selects
// the first available one) and returns a device at addr plus a close
// function for the bus. addr 0 means tpa2016.AddressDefault.
func Open(busName string, addr uint16) (*tpa2016.Device, func() error, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, err
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, nil, err
	}
	if addr == 0 {
		addr = tpa2016.AddressDefault
	}
	dev := tpa2016.New(busAdapter{bus: bus}, tpa2016.Config{Address: addr})
	return dev, bus.Close, nil
}
