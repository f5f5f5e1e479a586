package vtscreen

import "testing"

func TestNewModeSetDefaults(t *testing.T) {
	m := NewModeSet()
	if !m.DECAWM || !m.DECTCEM || !m.DECARM {
		t.Error("expected DECAWM, DECTCEM, DECARM set by default")
	}
	if m.LNM || m.IRM || m.DECOM || m.DECSCNM || m.DECCKM || m.DECCOLM {
		t.Error("expected all other boolean modes clear by default")
	}
	if m.MouseTrackingMode != MouseTrackingOff {
		t.Error("expected mouse tracking off by default")
	}
	if m.MouseTrackingProtocol != MouseProtocolNormal {
		t.Error("expected normal mouse protocol by default")
	}
}
