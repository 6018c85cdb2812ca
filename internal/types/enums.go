package types

import (
	"database/sql/driver"
	"fmt"
)

// Enums are persisted as small integers with the ordinals the mobile
// and web clients already rely on. Scan and Value both reject unknown
// ordinals so a corrupt row fails loudly instead of leaking a bogus
// state into the domain.

type FieldStatus int16

const (
	FieldStatusActive FieldStatus = iota
	FieldStatusInactive
	FieldStatusUnderMaintenance
)

func (s FieldStatus) Valid() bool {
	return s >= FieldStatusActive && s <= FieldStatusUnderMaintenance
}

func (s FieldStatus) String() string {
	switch s {
	case FieldStatusActive:
		return "Active"
	case FieldStatusInactive:
		return "Inactive"
	case FieldStatusUnderMaintenance:
		return "UnderMaintenance"
	default:
		return fmt.Sprintf("FieldStatus(%d)", int16(s))
	}
}

func ParseFieldStatus(v int64) (FieldStatus, error) {
	s := FieldStatus(v)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown field status ordinal %d", v)
	}
	return s, nil
}

func (s *FieldStatus) Scan(value any) error {
	v, err := enumInt(value)
	if err != nil {
		return fmt.Errorf("field status: %w", err)
	}
	parsed, err := ParseFieldStatus(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s FieldStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown field status ordinal %d", int16(s))
	}
	return int64(s), nil
}

type SoilType int16

const (
	SoilTypeSandy SoilType = iota
	SoilTypeClay
	SoilTypeSilty
	SoilTypePeaty
	SoilTypeChalky
	SoilTypeLoamy
	SoilTypeOther
	SoilTypeGeneric
)

func (s SoilType) Valid() bool {
	return s >= SoilTypeSandy && s <= SoilTypeGeneric
}

func (s SoilType) String() string {
	switch s {
	case SoilTypeSandy:
		return "Sandy"
	case SoilTypeClay:
		return "Clay"
	case SoilTypeSilty:
		return "Silty"
	case SoilTypePeaty:
		return "Peaty"
	case SoilTypeChalky:
		return "Chalky"
	case SoilTypeLoamy:
		return "Loamy"
	case SoilTypeOther:
		return "Other"
	case SoilTypeGeneric:
		return "Generic"
	default:
		return fmt.Sprintf("SoilType(%d)", int16(s))
	}
}

func ParseSoilType(v int64) (SoilType, error) {
	s := SoilType(v)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown soil type ordinal %d", v)
	}
	return s, nil
}

func (s *SoilType) Scan(value any) error {
	v, err := enumInt(value)
	if err != nil {
		return fmt.Errorf("soil type: %w", err)
	}
	parsed, err := ParseSoilType(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s SoilType) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown soil type ordinal %d", int16(s))
	}
	return int64(s), nil
}

// CultivationStatus orders one planting-to-harvest cycle:
// Planned -> Planted -> Growing -> {Harvested | Failed}. The service
// deliberately does not enforce transition order (see UpdateStatus).
type CultivationStatus int16

const (
	CultivationStatusPlanned CultivationStatus = iota
	CultivationStatusPlanted
	CultivationStatusGrowing
	CultivationStatusHarvested
	CultivationStatusFailed
)

func (s CultivationStatus) Valid() bool {
	return s >= CultivationStatusPlanned && s <= CultivationStatusFailed
}

func (s CultivationStatus) String() string {
	switch s {
	case CultivationStatusPlanned:
		return "Planned"
	case CultivationStatusPlanted:
		return "Planted"
	case CultivationStatusGrowing:
		return "Growing"
	case CultivationStatusHarvested:
		return "Harvested"
	case CultivationStatusFailed:
		return "Failed"
	default:
		return fmt.Sprintf("CultivationStatus(%d)", int16(s))
	}
}

func ParseCultivationStatus(v int64) (CultivationStatus, error) {
	s := CultivationStatus(v)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown cultivation status ordinal %d", v)
	}
	return s, nil
}

func (s *CultivationStatus) Scan(value any) error {
	v, err := enumInt(value)
	if err != nil {
		return fmt.Errorf("cultivation status: %w", err)
	}
	parsed, err := ParseCultivationStatus(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s CultivationStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown cultivation status ordinal %d", int16(s))
	}
	return int64(s), nil
}

func enumInt(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int:
		return int64(v), nil
	case []byte:
		var i int64
		if _, err := fmt.Sscan(string(v), &i); err != nil {
			return 0, fmt.Errorf("cannot scan %q as enum ordinal", string(v))
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot scan %T as enum ordinal", value)
	}
}
