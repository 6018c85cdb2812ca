package types

import "testing"

func TestParseCultivationStatusRejectsUnknownOrdinals(t *testing.T) {
	for _, v := range []int64{-1, 5, 42} {
		if _, err := ParseCultivationStatus(v); err == nil {
			t.Fatalf("ParseCultivationStatus(%d) accepted an unknown ordinal", v)
		}
	}
	s, err := ParseCultivationStatus(3)
	if err != nil {
		t.Fatalf("ParseCultivationStatus(3) = %v", err)
	}
	if s != CultivationStatusHarvested {
		t.Fatalf("ParseCultivationStatus(3) = %v, want Harvested", s)
	}
}

func TestFieldStatusScanAcceptsDriverIntegers(t *testing.T) {
	for _, src := range []any{int64(1), int32(1), int16(1), int(1), []byte("1")} {
		var s FieldStatus
		if err := s.Scan(src); err != nil {
			t.Fatalf("Scan(%T %v) = %v", src, src, err)
		}
		if s != FieldStatusInactive {
			t.Fatalf("Scan(%T %v) = %v, want Inactive", src, src, s)
		}
	}

	var s FieldStatus
	if err := s.Scan(int64(7)); err == nil {
		t.Fatal("Scan accepted an unknown field status ordinal")
	}
	if err := s.Scan("active"); err == nil {
		t.Fatal("Scan accepted a non-integer value")
	}
}

func TestSoilTypeValueRejectsInvalid(t *testing.T) {
	if _, err := SoilType(99).Value(); err == nil {
		t.Fatal("Value() accepted an unknown soil type ordinal")
	}
	v, err := SoilTypeLoamy.Value()
	if err != nil {
		t.Fatalf("Value() = %v", err)
	}
	if v != int64(SoilTypeLoamy) {
		t.Fatalf("Value() = %v, want %d", v, int64(SoilTypeLoamy))
	}
}

func TestEnumStrings(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{FieldStatusUnderMaintenance.String(), "UnderMaintenance"},
		{SoilTypePeaty.String(), "Peaty"},
		{CultivationStatusGrowing.String(), "Growing"},
		{CultivationStatus(17).String(), "CultivationStatus(17)"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("String() = %q, want %q", c.got, c.want)
		}
	}
}
