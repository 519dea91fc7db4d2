package database

import (
	"slices"
)

// Database is the in-memory graph of people, products and companies. It owns
// every entity; relations between entities are stored as ids.
//
// A Database is filled once during ingestion and then only read. It performs
// no locking, so concurrent readers are fine but mutation must not overlap
// with any other access.
type Database struct {
	people    map[int]*Person
	products  map[int]*Product
	companies map[int]*Company

	// insertion order, used for listings and name search
	peopleOrder    []*Person
	productOrder   []*Product
	companiesOrder []*Company
}

// Stats summarizes the size of the graph
type Stats struct {
	People      int `json:"people"`
	Products    int `json:"products"`
	Companies   int `json:"companies"`
	Friendships int `json:"friendships"`
	Ownerships  int `json:"ownerships"`
}

// New creates an empty database
func New() *Database {
	return &Database{
		people:    make(map[int]*Person),
		products:  make(map[int]*Product),
		companies: make(map[int]*Company),
	}
}

// People returns every person in insertion order.
func (db *Database) People() []*Person { return slices.Clone(db.peopleOrder) }

// Products returns every product in insertion order.
func (db *Database) Products() []*Product { return slices.Clone(db.productOrder) }

// Companies returns every company in insertion order.
func (db *Database) Companies() []*Company { return slices.Clone(db.companiesOrder) }

// Stats counts entities and relations. Each friendship is counted once.
func (db *Database) Stats() Stats {
	s := Stats{
		People:    len(db.peopleOrder),
		Products:  len(db.productOrder),
		Companies: len(db.companiesOrder),
	}
	for _, p := range db.peopleOrder {
		s.Friendships += len(p.friends)
		s.Ownerships += len(p.products)
	}
	s.Friendships /= 2
	return s
}
