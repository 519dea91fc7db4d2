package apptype

import (
	"errors"
	"fmt"
	"strings"
)

// Gender of a person as recorded in the input file
type Gender int

const (
	Male Gender = iota
	Female
)

// ErrUnknownGender is returned when a gender token is not part of the vocabulary
var ErrUnknownGender = errors.New("unknown gender")

// ErrInvalidNetwork is returned for a facet token other than "product" or "company"
var ErrInvalidNetwork = errors.New("invalid network")

func (g Gender) String() string {
	switch g {
	case Male:
		return "MALE"
	case Female:
		return "FEMALE"
	default:
		return fmt.Sprintf("Gender(%d)", int(g))
	}
}

// ParseGender converts a raw token into a Gender. The token is trimmed and
// compared case-insensitively against "male" and "female".
func ParseGender(token string) (Gender, error) {
	s := strings.TrimSpace(token)
	switch {
	case strings.EqualFold(s, "male"):
		return Male, nil
	case strings.EqualFold(s, "female"):
		return Female, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGender, s)
	}
}

// Facet selects the per-person collection aggregated by a network query
type Facet int

const (
	// FacetProducts is the sequence of products a person owns
	FacetProducts Facet = iota
	// FacetCompanies is the sequence of manufacturers of the owned products
	FacetCompanies
)

func (f Facet) String() string {
	switch f {
	case FacetProducts:
		return "product"
	case FacetCompanies:
		return "company"
	default:
		return fmt.Sprintf("Facet(%d)", int(f))
	}
}

// ParseFacet maps a network token to a Facet. Only the exact tokens
// "product" and "company" are accepted.
func ParseFacet(token string) (Facet, error) {
	switch token {
	case "product":
		return FacetProducts, nil
	case "company":
		return FacetCompanies, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNetwork, token)
	}
}

// EntityRef is the wire representation of a person, product or company
type EntityRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}
