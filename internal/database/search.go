package database

import (
	"strings"
)

// matchName collects, in one pass over items, every entity whose name
// contains substring, ignoring case. Order follows items.
func matchName[T Entity](items []T, substring string) []T {
	needle := strings.ToLower(substring)
	var matches []T
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name()), needle) {
			matches = append(matches, it)
		}
	}
	return matches
}

// PeopleByName returns every person whose name contains substring
// (case-insensitive) in insertion order. No match yields ErrNoSuchPerson.
func (db *Database) PeopleByName(substring string) ([]*Person, error) {
	matches := matchName(db.peopleOrder, substring)
	if len(matches) == 0 {
		return nil, notFoundName(ErrNoSuchPerson, substring)
	}
	return matches, nil
}

// ProductsByName is the product counterpart of PeopleByName.
func (db *Database) ProductsByName(substring string) ([]*Product, error) {
	matches := matchName(db.productOrder, substring)
	if len(matches) == 0 {
		return nil, notFoundName(ErrNoSuchProduct, substring)
	}
	return matches, nil
}

// CompaniesByName is the company counterpart of PeopleByName.
func (db *Database) CompaniesByName(substring string) ([]*Company, error) {
	matches := matchName(db.companiesOrder, substring)
	if len(matches) == 0 {
		return nil, notFoundName(ErrNoSuchCompany, substring)
	}
	return matches, nil
}
