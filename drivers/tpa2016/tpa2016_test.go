package tpa2016

import (
	"errors"
	"testing"
	"time"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

// fakeI2C is a scripted register file standing in for the chip.
type fakeI2C struct {
	regs [8]byte
	txs  int   // completed bus transactions
	fail error // when set, every Tx fails before touching regs
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if f.fail != nil {
		return f.fail
	}
	switch {
	case len(w) == 1 && len(r) == 1: // register read
		f.txs++
		r[0] = f.regs[w[0]&0x07]
		return nil
	case len(w) == 2 && len(r) == 0: // register write
		f.txs++
		f.regs[w[0]&0x07] = w[1]
		return nil
	}
	return errors.New("unexpected transaction shape")
}

func newTestDevice() (*Device, *fakeI2C) {
	f := &fakeI2C{}
	return New(f, DefaultConfig()), f
}

func TestFixedGainRoundTrip(t *testing.T) {
	d, _ := newTestDevice()
	if err := d.SetCompressionRatio(Compression2to1); err != nil {
		t.Fatalf("set ratio: %v", err)
	}
	for v := FixedGainMin_dB; v <= FixedGainMax_dB; v++ {
		if err := d.SetFixedGain(v); err != nil {
			t.Fatalf("SetFixedGain(%d): %v", v, err)
		}
		got, err := d.FixedGain()
		if err != nil {
			t.Fatalf("FixedGain after set %d: %v", v, err)
		}
		if got != v {
			t.Errorf("fixed gain round-trip: set %d got %d", v, got)
		}
	}
}

func TestFixedGainRejectsOutOfRange(t *testing.T) {
	d, f := newTestDevice()
	for _, v := range []int{-29, 31, -100, 100} {
		before := f.txs
		if err := d.SetFixedGain(v); !errors.Is(err, ErrGainRange) {
			t.Errorf("SetFixedGain(%d) = %v, want ErrGainRange", v, err)
		}
		if f.txs != before {
			t.Errorf("SetFixedGain(%d) touched the bus (%d transactions)", v, f.txs-before)
		}
	}
}

func TestFixedGainEncoding(t *testing.T) {
	d, f := newTestDevice()
	// -16 dB in 6-bit two's complement is 0x30. Bits 7:6 of the gain
	// register must stay untouched.
	f.regs[regGain] = 0xC0
	if err := d.SetFixedGain(-16); err != nil {
		t.Fatalf("SetFixedGain: %v", err)
	}
	if f.regs[regGain] != 0xC0|0x30 {
		t.Fatalf("gain register = %#02x, want %#02x", f.regs[regGain], 0xC0|0x30)
	}
}

func TestLimiterLevelRoundTrip(t *testing.T) {
	d, _ := newTestDevice()
	for v := int32(LimiterLevelMin_decidB); v <= LimiterLevelMax_decidB; v += 5 {
		if err := d.SetLimiterLevel_decidB(v); err != nil {
			t.Fatalf("SetLimiterLevel_decidB(%d): %v", v, err)
		}
		got, err := d.LimiterLevel_decidB()
		if err != nil {
			t.Fatalf("LimiterLevel_decidB: %v", err)
		}
		if got != v {
			t.Errorf("limiter round-trip: set %d got %d", v, got)
		}
		fv, err := d.LimiterLevel()
		if err != nil {
			t.Fatalf("LimiterLevel: %v", err)
		}
		if diff := float64(fv) - float64(v)/10; diff > 0.01 || diff < -0.01 {
			t.Errorf("limiter float: got %v want %v", fv, float64(v)/10)
		}
	}
}

func TestLimiterLevelRejectsOutOfRange(t *testing.T) {
	d, f := newTestDevice()
	for _, v := range []int32{-70, 95, -1000, 1000} {
		before := f.txs
		if err := d.SetLimiterLevel_decidB(v); !errors.Is(err, ErrLimiterRange) {
			t.Errorf("SetLimiterLevel_decidB(%d) = %v, want ErrLimiterRange", v, err)
		}
		if f.txs != before {
			t.Errorf("SetLimiterLevel_decidB(%d) touched the bus", v)
		}
	}
}

func TestMaxGainRoundTrip(t *testing.T) {
	d, _ := newTestDevice()
	for v := MaxGainMin_dB; v <= MaxGainMax_dB; v++ {
		if err := d.SetMaxGain(v); err != nil {
			t.Fatalf("SetMaxGain(%d): %v", v, err)
		}
		got, err := d.MaxGain()
		if err != nil {
			t.Fatalf("MaxGain: %v", err)
		}
		if got != v {
			t.Errorf("max gain round-trip: set %d got %d", v, got)
		}
	}
	for _, v := range []int{17, 31} {
		if err := d.SetMaxGain(v); !errors.Is(err, ErrMaxGainRange) {
			t.Errorf("SetMaxGain(%d) = %v, want ErrMaxGainRange", v, err)
		}
	}
}

func TestMaxGainPreservesCompression(t *testing.T) {
	d, f := newTestDevice()
	// Compression 4:1 strapped in, max gain code 0.
	f.regs[regAGC] = 0b0000_0010
	if err := d.SetMaxGain(24); err != nil {
		t.Fatalf("SetMaxGain: %v", err)
	}
	if f.regs[regAGC] != 0b0110_0010 {
		t.Fatalf("AGC register = %#08b, want %#08b", f.regs[regAGC], 0b0110_0010)
	}
}

func TestSpeakerEnablePreservesControlBits(t *testing.T) {
	d, f := newTestDevice()
	f.regs[regControl] = 0b0001_1101 // faults latched, noise gate on
	if err := d.SetSpeakerEnableL(true); err != nil {
		t.Fatalf("SetSpeakerEnableL: %v", err)
	}
	if f.regs[regControl] != 0b0101_1101 {
		t.Fatalf("control register = %#08b, want %#08b", f.regs[regControl], 0b0101_1101)
	}
	// L off, R on.
	if err := d.EnableSpeakers(false, true); err != nil {
		t.Fatalf("EnableSpeakers: %v", err)
	}
	if f.regs[regControl] != 0b1001_1101 {
		t.Fatalf("control register = %#08b, want %#08b", f.regs[regControl], 0b1001_1101)
	}
}

func TestAGCTimeScaling(t *testing.T) {
	d, f := newTestDevice()
	f.regs[regAttack] = 10
	got, err := d.AttackTime()
	if err != nil {
		t.Fatalf("AttackTime: %v", err)
	}
	if want := 1067 * time.Microsecond; got != want { // 10 × 0.1067 ms
		t.Errorf("attack time = %v, want %v", got, want)
	}

	f.regs[regRelease] = 20
	rel, err := d.ReleaseTime()
	if err != nil {
		t.Fatalf("ReleaseTime: %v", err)
	}
	if want := 274 * time.Microsecond; rel != want { // 20 × 0.0137 ms
		t.Errorf("release time = %v, want %v", rel, want)
	}

	f.regs[regHold] = 1
	hld, err := d.HoldTime()
	if err != nil {
		t.Fatalf("HoldTime: %v", err)
	}
	if want := 13700 * time.Nanosecond; hld != want {
		t.Errorf("hold time = %v, want %v", hld, want)
	}
}

func TestFieldRejectsWideCode(t *testing.T) {
	d, f := newTestDevice()
	before := f.txs
	if err := d.SetAttackCode(64); !errors.Is(err, ErrCodeRange) {
		t.Fatalf("SetAttackCode(64) = %v, want ErrCodeRange", err)
	}
	if err := d.SetCompressionRatio(4); !errors.Is(err, ErrCodeRange) {
		t.Fatalf("SetCompressionRatio(4) = %v, want ErrCodeRange", err)
	}
	if f.txs != before {
		t.Fatalf("rejected codes touched the bus")
	}
}

func TestNoiseGateThresholdPreservesLimiter(t *testing.T) {
	d, f := newTestDevice()
	f.regs[regLimiter] = 0b1000_1010 // limiter disabled, level code 10
	if err := d.SetNoiseGateThreshold(NoiseGate20mV); err != nil {
		t.Fatalf("SetNoiseGateThreshold: %v", err)
	}
	if f.regs[regLimiter] != 0b1110_1010 {
		t.Fatalf("limiter register = %#08b, want %#08b", f.regs[regLimiter], 0b1110_1010)
	}
	got, err := d.NoiseGateThresholdSetting()
	if err != nil {
		t.Fatalf("NoiseGateThresholdSetting: %v", err)
	}
	if got != NoiseGate20mV {
		t.Errorf("threshold = %v, want %v", got, NoiseGate20mV)
	}
	lvl, err := d.LimiterLevel_decidB()
	if err != nil {
		t.Fatalf("LimiterLevel_decidB: %v", err)
	}
	if lvl != -65+10*5 {
		t.Errorf("limiter level = %d, want %d", lvl, -65+10*5)
	}
}

func TestFaults(t *testing.T) {
	d, f := newTestDevice()
	f.regs[regControl] = 0b0001_1100 // both short-circuit latches + thermal
	l, r, th, err := d.Faults()
	if err != nil {
		t.Fatalf("Faults: %v", err)
	}
	if !l || !r || !th {
		t.Fatalf("faults = L:%v R:%v thermal:%v, want all true", l, r, th)
	}
	if err := d.ResetFaultL(); err != nil {
		t.Fatalf("ResetFaultL: %v", err)
	}
	if f.regs[regControl] != 0b0001_0100 {
		t.Fatalf("control register = %#08b after ResetFaultL", f.regs[regControl])
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	d, f := newTestDevice()
	busErr := errors.New("nak")
	f.fail = busErr
	if err := d.SetMaxGain(20); !errors.Is(err, busErr) {
		t.Errorf("SetMaxGain under bus failure = %v, want %v", err, busErr)
	}
	if _, err := d.FixedGain(); !errors.Is(err, busErr) {
		t.Errorf("FixedGain under bus failure = %v, want %v", err, busErr)
	}
	if ok, err := d.Connected(); ok || !errors.Is(err, busErr) {
		t.Errorf("Connected under bus failure = %v, %v", ok, err)
	}
}

func TestSnapshot(t *testing.T) {
	d, f := newTestDevice()
	f.regs[regControl] = 0b1100_0001 // both speakers on, noise gate on
	f.regs[regAttack] = 5
	f.regs[regRelease] = 11
	f.regs[regHold] = 0
	f.regs[regGain] = 0x3A           // -6 dB
	f.regs[regLimiter] = 0b0101_1010 // threshold 10mV, level code 26
	f.regs[regAGC] = 0b1100_0001     // max gain code 12, ratio 2:1

	s := d.Snapshot()
	if !s.SpeakerL || !s.SpeakerR || s.Shutdown {
		t.Errorf("speakers = L:%v R:%v shutdown:%v", s.SpeakerL, s.SpeakerR, s.Shutdown)
	}
	if !s.NoiseGateEnabled || s.LimiterDisabled {
		t.Errorf("gate=%v limiterDisabled=%v", s.NoiseGateEnabled, s.LimiterDisabled)
	}
	if s.AttackCode != 5 || s.ReleaseCode != 11 || s.HoldCode != 0 {
		t.Errorf("codes = %d/%d/%d", s.AttackCode, s.ReleaseCode, s.HoldCode)
	}
	if s.FixedGain_dB != -6 {
		t.Errorf("fixed gain = %d, want -6", s.FixedGain_dB)
	}
	if s.MaxGain_dB != 30 {
		t.Errorf("max gain = %d, want 30", s.MaxGain_dB)
	}
	if s.LimiterLevel_decidB != -65+26*5 {
		t.Errorf("limiter level = %d", s.LimiterLevel_decidB)
	}
	if s.Compression != Compression2to1 {
		t.Errorf("compression = %v", s.Compression)
	}
	if s.NoiseGate != NoiseGate10mV {
		t.Errorf("noise gate threshold = %v", s.NoiseGate)
	}
	if s.FaultL || s.FaultR || s.Thermal {
		t.Errorf("unexpected faults in snapshot")
	}
}
