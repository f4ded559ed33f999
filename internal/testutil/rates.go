package testutil

import "github.com/proyectos-indefinidos/AnaDec/internal/core/domain"

// MustParseRate parses a rate literal and panics when it is not valid notation.
func MustParseRate(text string) domain.Rate {
	r, err := domain.ParseRate(text)
	if err != nil {
		panic(err)
	}
	return r
}
