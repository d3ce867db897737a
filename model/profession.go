package model

import "fmt"

// Profession is the part a person plays in the catalogue.
type Profession int

const (
	ActorProfession Profession = iota
	DirectorProfession
)

func (p Profession) String() string {
	d, err := p.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (p Profession) MarshalText() ([]byte, error) {
	switch p {
	case ActorProfession:
		return []byte("actor"), nil
	case DirectorProfession:
		return []byte("director"), nil
	default:
		return nil, fmt.Errorf("invalid profession %d", int(p))
	}
}

func (p *Profession) UnmarshalText(d []byte) error {
	switch string(d) {
	case "actor":
		*p = ActorProfession
	case "director":
		*p = DirectorProfession
	default:
		return fmt.Errorf("invalid profession %q", d)
	}
	return nil
}
