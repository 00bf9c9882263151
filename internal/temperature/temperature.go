// Package temperature defines the unit and value model for the converter.
//
// A Temperature is an immutable (value, unit) pair; conversions return a
// new Temperature. The only failure mode in this package is parsing an
// unknown unit token.
package temperature

import (
	"fmt"
	"strings"
)

// Unit is one of the two supported temperature scales.
type Unit int

const (
	Fahrenheit Unit = iota
	Celsius
)

// String returns the single-letter scale symbol used in equation output.
func (u Unit) String() string {
	switch u {
	case Fahrenheit:
		return "F"
	case Celsius:
		return "C"
	default:
		return "?"
	}
}

// IsValid checks whether the Unit is one of the two supported scales.
func (u Unit) IsValid() bool {
	return u == Fahrenheit || u == Celsius
}

// Opposite returns the other supported scale.
func (u Unit) Opposite() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

// ParseUnit converts a user-entered token to a Unit. Matching is
// case-insensitive. "celcius" is the spelling the program has always
// accepted; "celsius" is not a recognized token.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "c", "celcius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return 0, fmt.Errorf("unknown temperature unit %q", s)
	}
}

// Temperature pairs a numeric value with its unit.
type Temperature struct {
	Value float64
	Unit  Unit
}

// New creates a Temperature from a value and a unit.
func New(value float64, unit Unit) Temperature {
	return Temperature{Value: value, Unit: unit}
}

// ToCelsius converts t to the Celsius scale.
func (t Temperature) ToCelsius() Temperature {
	return New((t.Value-32)*(5.0/9.0), Celsius)
}

// ToFahrenheit converts t to the Fahrenheit scale.
func (t Temperature) ToFahrenheit() Temperature {
	return New((t.Value*(9.0/5.0))+32, Fahrenheit)
}

// ConvertTo returns t expressed in the target scale. Converting to the
// scale t already has returns t unchanged.
func (t Temperature) ConvertTo(target Unit) Temperature {
	switch {
	case t.Unit == Fahrenheit && target == Celsius:
		return t.ToCelsius()
	case t.Unit == Celsius && target == Fahrenheit:
		return t.ToFahrenheit()
	default:
		return t
	}
}
