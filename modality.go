package unimode

import "strconv"

// Modality is the outcome of a classification. It is closed: the only
// implementations are Unimodal, Zero, Constant, Nonmodal and Multimodal.
type Modality interface {
	isModality()
}

// Unimodal holds the location of the single interior extremum.
type Unimodal struct {
	Mode float64
}

// Zero means every coefficient is zero.
type Zero struct{}

// Constant means the polynomial is a nonzero constant.
type Constant struct{}

// Nonmodal means there is no interior extremum.
type Nonmodal struct{}

// Multimodal means there are two or more interior extrema.
type Multimodal struct{}

func (Unimodal) isModality()   {}
func (Zero) isModality()       {}
func (Constant) isModality()   {}
func (Nonmodal) isModality()   {}
func (Multimodal) isModality() {}

// Code maps a Modality to its four character code.
func Code(m Modality) string {
	switch m.(type) {
	case Unimodal:
		return " :) "
	case Zero:
		return "zero"
	case Constant:
		return "cons"
	case Nonmodal:
		return "none"
	case Multimodal:
		return "mult"
	default:
		return "????"
	}
}

// Describe maps a Modality to a human readable label.
func Describe(m Modality) string {
	switch m := m.(type) {
	case Unimodal:
		return "Unimodal(" + strconv.FormatFloat(m.Mode, 'f', -1, 64) + ")"
	case Zero:
		return "Identically zero"
	case Constant:
		return "Constant"
	case Nonmodal:
		return "Without extrema"
	case Multimodal:
		return "Multiple extrema"
	default:
		return "Unknown"
	}
}
