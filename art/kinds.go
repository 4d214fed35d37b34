package art

import (
	"strings"

	"github.com/ittokunvim/cratesio"
)

// PrimaryColor the primary colors according to the RYB color model
type PrimaryColor int

const (
	Red PrimaryColor = iota
	Yellow
	Blue
)

// SecondaryColor the secondary colors according to the RYB color model
type SecondaryColor int

const (
	Orange SecondaryColor = iota
	Green
	Purple
)

var (
	primaryNames   = []string{"Red", "Yellow", "Blue"}
	primaryCodes   = []RGBCode{0xFF0000, 0xFFFF00, 0x0000FF}
	secondaryNames = []string{"Orange", "Green", "Purple"}
	secondaryCodes = []RGBCode{0xFFA500, 0x008000, 0x800080}
)

func (this PrimaryColor) IsValid() bool { return this >= 0 && int(this) < len(primaryNames) }
func (this PrimaryColor) String() string {
	if !this.IsValid() {
		return "Unknown"
	}
	return primaryNames[this]
}
func (this PrimaryColor) Code() RGBCode {
	if !this.IsValid() {
		return NoColorCode
	}
	return primaryCodes[this]
}

func (this SecondaryColor) IsValid() bool { return this >= 0 && int(this) < len(secondaryNames) }
func (this SecondaryColor) String() string {
	if !this.IsValid() {
		return "Unknown"
	}
	return secondaryNames[this]
}
func (this SecondaryColor) Code() RGBCode {
	if !this.IsValid() {
		return NoColorCode
	}
	return secondaryCodes[this]
}

// ParsePrimaryColor parse name of a primary color, ignoring its case
func ParsePrimaryColor(name string) (PrimaryColor, error) {
	i := cratesio.FindStringNC(primaryNames, strings.TrimSpace(name))
	if i == -1 {
		return 0, cratesio.OperationError{Operation: "ParsePrimaryColor", Input: name, Failure: ErrUnknownColor}
	}
	return PrimaryColor(i), nil
}
