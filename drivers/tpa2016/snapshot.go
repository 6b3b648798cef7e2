package tpa2016

// Snapshot collects the full AGC configuration and control state.
// Zero values remain where individual reads fail.
type Snapshot struct {
	AttackCode  uint8
	ReleaseCode uint8
	HoldCode    uint8

	FixedGain_dB        int
	MaxGain_dB          int
	LimiterLevel_decidB int32
	Compression         CompressionRatio
	NoiseGate           NoiseGateThreshold

	SpeakerL, SpeakerR bool
	Shutdown           bool
	NoiseGateEnabled   bool
	LimiterDisabled    bool

	FaultL, FaultR, Thermal bool
}

func (d *Device) Snapshot() Snapshot {
	var s Snapshot
	d.SnapshotInto(&s)
	return s
}

func (d *Device) SnapshotInto(out *Snapshot) {
	var s Snapshot
	if v, e := d.AttackCode(); e == nil {
		s.AttackCode = v
	}
	if v, e := d.ReleaseCode(); e == nil {
		s.ReleaseCode = v
	}
	if v, e := d.HoldCode(); e == nil {
		s.HoldCode = v
	}
	if v, e := d.FixedGain(); e == nil {
		s.FixedGain_dB = v
	}
	if v, e := d.MaxGain(); e == nil {
		s.MaxGain_dB = v
	}
	if v, e := d.LimiterLevel_decidB(); e == nil {
		s.LimiterLevel_decidB = v
	}
	if v, e := d.CompressionRatio(); e == nil {
		s.Compression = v
	}
	if v, e := d.NoiseGateThresholdSetting(); e == nil {
		s.NoiseGate = v
	}
	if v, e := d.SpeakerEnabledL(); e == nil {
		s.SpeakerL = v
	}
	if v, e := d.SpeakerEnabledR(); e == nil {
		s.SpeakerR = v
	}
	if v, e := d.ShutdownEnabled(); e == nil {
		s.Shutdown = v
	}
	if v, e := d.NoiseGateEnabled(); e == nil {
		s.NoiseGateEnabled = v
	}
	if v, e := d.LimiterDisabled(); e == nil {
		s.LimiterDisabled = v
	}
	if l, r, t, e := d.Faults(); e == nil {
		s.FaultL, s.FaultR, s.Thermal = l, r, t
	}
	*out = s
}
