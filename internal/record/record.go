package record

import "fmt"

// NoValidatorDescription is the description carried by joined rows of
// municipalities that have no validator history.
const NoValidatorDescription = "SEM VALIDADOR"

// Flag is the S/N marker stored with every validator row.
type Flag string

const (
	// FlagFinal marks a validator row as final.
	FlagFinal Flag = "S"
	// FlagNotFinal marks a validator row as not final.
	FlagNotFinal Flag = "N"
)

// ParseFlag accepts only the literal values "S" and "N".
// Anything else, including lowercase variants, yields FlagNotFinal.
func ParseFlag(raw string) Flag {
	switch Flag(raw) {
	case FlagFinal:
		return FlagFinal
	default:
		return FlagNotFinal
	}
}

// Key identifies a municipality: state code plus numeric municipality code.
type Key struct {
	State string
	Code  int
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.State, k.Code)
}

// Municipality is a row of the municipality table.
type Municipality struct {
	State string `json:"state"`
	Code  int    `json:"code"`
	Name  string `json:"name"`
}

// Key returns the unique key of the municipality.
func (m Municipality) Key() Key {
	return Key{State: m.State, Code: m.Code}
}

// Validator is one entry of a municipality's validator history.
type Validator struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	StartDate   string `json:"start_date,omitempty"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
	Final       Flag   `json:"final"`
}

// Joined is a municipality paired with one of its validators, or with no
// validator at all.
//
// Rows without a validator have an empty ValidatorCode, the
// NoValidatorDescription sentinel, FlagNotFinal and no dates.
type Joined struct {
	State                string `json:"state"`
	Code                 int    `json:"code"`
	Name                 string `json:"name"`
	ValidatorCode        string `json:"validator_code,omitempty"`
	ValidatorDescription string `json:"validator_description"`
	StartDate            string `json:"start_date,omitempty"`
	ExpiryDate           string `json:"expiry_date,omitempty"`
	Final                Flag   `json:"final"`
}

// NewJoined pairs a municipality with a validator.
func NewJoined(m Municipality, v Validator) Joined {
	return Joined{
		State:                m.State,
		Code:                 m.Code,
		Name:                 m.Name,
		ValidatorCode:        v.Code,
		ValidatorDescription: v.Description,
		StartDate:            v.StartDate,
		ExpiryDate:           v.ExpiryDate,
		Final:                v.Final,
	}
}

// NewPlaceholder builds the single row emitted for a municipality that has
// no validator history.
func NewPlaceholder(m Municipality) Joined {
	return Joined{
		State:                m.State,
		Code:                 m.Code,
		Name:                 m.Name,
		ValidatorDescription: NoValidatorDescription,
		Final:                FlagNotFinal,
	}
}

// Key returns the municipality key of the row.
func (j Joined) Key() Key {
	return Key{State: j.State, Code: j.Code}
}

// HasValidator reports whether the row carries a real validator.
func (j Joined) HasValidator() bool {
	return j.ValidatorCode != ""
}
