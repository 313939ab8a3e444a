package models

// Case identifies one of the six Polish grammatical cases.
type Case int

const (
	Nominative Case = iota + 1
	Genitive
	Dative
	Accusative
	Instrumental
	Locative
)

// Cases lists the cases in traditional textbook order.
var Cases = [...]Case{Nominative, Genitive, Dative, Accusative, Instrumental, Locative}

// String returns the short label used in stored form tables.
func (c Case) String() string {
	switch c {
	case Nominative:
		return "NOM"
	case Genitive:
		return "GEN"
	case Dative:
		return "DAT"
	case Accusative:
		return "ACC"
	case Instrumental:
		return "INST"
	case Locative:
		return "LOC"
	}
	return "?"
}

// CaseForms holds one declined form per case for a single number or paradigm.
type CaseForms struct {
	Nominative   string `json:"NOM"`
	Genitive     string `json:"GEN"`
	Dative       string `json:"DAT"`
	Accusative   string `json:"ACC"`
	Instrumental string `json:"INST"`
	Locative     string `json:"LOC"`
}

// Form returns the form for the given case.
func (f *CaseForms) Form(c Case) string {
	switch c {
	case Nominative:
		return f.Nominative
	case Genitive:
		return f.Genitive
	case Dative:
		return f.Dative
	case Accusative:
		return f.Accusative
	case Instrumental:
		return f.Instrumental
	case Locative:
		return f.Locative
	}
	return ""
}

// SetForm sets the form for the given case.
func (f *CaseForms) SetForm(c Case, v string) {
	switch c {
	case Nominative:
		f.Nominative = v
	case Genitive:
		f.Genitive = v
	case Dative:
		f.Dative = v
	case Accusative:
		f.Accusative = v
	case Instrumental:
		f.Instrumental = v
	case Locative:
		f.Locative = v
	}
}

// IsZero reports whether no case has a form set.
func (f *CaseForms) IsZero() bool {
	return *f == CaseForms{}
}
