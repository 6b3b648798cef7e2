// Command amp-tool configures a TPA2016 amplifier from a host over I2C and
// prints its resulting state. Only the settings whose flags were given on
// the command line are written; everything else is left as the chip has it.
//
// Examples:
//
//	amp-tool -bus /dev/i2c-1 -gain -16
//	amp-tool -ratio 4 -maxgain 24 -limiter 6.5 -noisegate=true
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"ampcode-go/drivers/tpa2016"
	"ampcode-go/drivers/tpa2016/ampopen"
	"ampcode-go/x/mathx"
)

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "amp-tool: "+format+"\n", a...)
	os.Exit(1)
}

func main() {
	busName := flag.String("bus", "", "I2C bus name or number (empty = first available)")
	addr := flag.Uint("addr", tpa2016.AddressDefault, "7-bit device address")

	gain := flag.Int("gain", 0, "fixed gain in dB (-28..30)")
	maxGain := flag.Int("maxgain", 30, "maximum AGC gain in dB (18..30)")
	limiter := flag.Float64("limiter", 0, "output limiter level in dBV (-6.5..9)")
	ratio := flag.Int("ratio", 4, "compression ratio denominator: 1, 2, 4 or 8")
	attack := flag.Int("attack", 0, "attack time code (0..63, clamped)")
	release := flag.Int("release", 0, "release time code (0..63, clamped)")
	hold := flag.Int("hold", 0, "hold time code (0..63, clamped)")
	left := flag.Bool("left", true, "enable left speaker")
	right := flag.Bool("right", true, "enable right speaker")
	shutdown := flag.Bool("shutdown", false, "software shutdown")
	noisegate := flag.Bool("noisegate", true, "noise gate enable (requires ratio != 1)")
	flag.Parse()

	dev, closeBus, err := ampopen.Open(*busName, uint16(*addr))
	if err != nil {
		fatalf("open: %v", err)
	}
	defer closeBus()

	if ok, err := dev.Connected(); !ok {
		fatalf("no TPA2016 at 0x%02X: %v", *addr, err)
	}

	// Apply only the flags that were actually set.
	flag.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "gain":
			err = dev.SetFixedGain(*gain)
		case "maxgain":
			err = dev.SetMaxGain(*maxGain)
		case "limiter":
			err = dev.SetLimiterLevel_decidB(int32(math.Round(*limiter * 10)))
		case "ratio":
			err = dev.SetCompressionRatio(ratioSetting(*ratio))
		case "attack":
			err = dev.SetAttackCode(uint8(mathx.Clamp(*attack, 0, 63)))
		case "release":
			err = dev.SetReleaseCode(uint8(mathx.Clamp(*release, 0, 63)))
		case "hold":
			err = dev.SetHoldCode(uint8(mathx.Clamp(*hold, 0, 63)))
		case "left", "right":
			err = dev.EnableSpeakers(*left, *right)
		case "shutdown":
			err = dev.SetShutdown(*shutdown)
		case "noisegate":
			err = dev.SetNoiseGateEnable(*noisegate)
		}
		if err != nil {
			fatalf("set %s: %v", f.Name, err)
		}
	})

	printState(dev)
}

func ratioSetting(denom int) tpa2016.CompressionRatio {
	switch denom {
	case 1:
		return tpa2016.Compression1to1
	case 2:
		return tpa2016.Compression2to1
	case 4:
		return tpa2016.Compression4to1
	case 8:
		return tpa2016.Compression8to1
	}
	fatalf("ratio must be 1, 2, 4 or 8 (got %d)", denom)
	return 0
}

func printState(dev *tpa2016.Device) {
	s := dev.Snapshot()
	fmt.Printf("speakers:    L=%v R=%v shutdown=%v\n", s.SpeakerL, s.SpeakerR, s.Shutdown)
	fmt.Printf("fixed gain:  %d dB (max %d dB)\n", s.FixedGain_dB, s.MaxGain_dB)
	fmt.Printf("compression: %v\n", s.Compression)
	fmt.Printf("limiter:     %.1f dBV disabled=%v\n", float64(s.LimiterLevel_decidB)/10, s.LimiterDisabled)
	fmt.Printf("noise gate:  enabled=%v threshold=%v\n", s.NoiseGateEnabled, s.NoiseGate)
	fmt.Printf("agc codes:   attack=%d release=%d hold=%d\n", s.AttackCode, s.ReleaseCode, s.HoldCode)
	if s.FaultL || s.FaultR || s.Thermal {
		fmt.Printf("FAULTS:      L=%v R=%v thermal=%v\n", s.FaultL, s.FaultR, s.Thermal)
	}
}
