package database

import (
	"slices"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/apptype"
)

// Entity is the shape shared by people, products and companies
type Entity interface {
	ID() int
	Name() string
}

// Record holds the id and name of an entity. The id is assigned by the input
// file and never changes; the name may be updated.
type Record struct {
	id   int
	name string
}

func (r *Record) ID() int { return r.id }

func (r *Record) Name() string { return r.name }

// SetName replaces the display name.
func (r *Record) SetName(name string) { r.name = name }

// Person is a node of the friendship graph. Friends and products are kept as
// ids into the owning Database.
type Person struct {
	Record
	Gender apptype.Gender

	friends  []int // ordered set
	products []int // acquisition order, duplicates allowed
}

// NewPerson creates an unlinked person
func NewPerson(id int, name string, gender apptype.Gender) *Person {
	return &Person{Record: Record{id: id, name: name}, Gender: gender}
}

// FriendIDs returns the ids of the person's friends in the order they were linked.
func (p *Person) FriendIDs() []int { return slices.Clone(p.friends) }

// ProductIDs returns the ids of owned products in acquisition order.
func (p *Person) ProductIDs() []int { return slices.Clone(p.products) }

func (p *Person) hasFriend(id int) bool { return slices.Contains(p.friends, id) }

func (p *Person) addFriend(id int) {
	if !p.hasFriend(id) {
		p.friends = append(p.friends, id)
	}
}

func (p *Person) removeFriend(id int) {
	p.friends = slices.DeleteFunc(p.friends, func(f int) bool { return f == id })
}

// Product is something a person can own and a company can manufacture
type Product struct {
	Record

	manufacturer    int
	hasManufacturer bool
}

// NewProduct creates a product without a manufacturer
func NewProduct(id int, name string) *Product {
	return &Product{Record: Record{id: id, name: name}}
}

// ManufacturerID reports the manufacturing company's id, if one was recorded.
func (p *Product) ManufacturerID() (int, bool) { return p.manufacturer, p.hasManufacturer }

// Company manufactures products
type Company struct {
	Record

	products []int // one entry per SetManufacturer call
}

// NewCompany creates a company without products
func NewCompany(id int, name string) *Company {
	return &Company{Record: Record{id: id, name: name}}
}

// ProductIDs returns the ids of products recorded for this company.
func (c *Company) ProductIDs() []int { return slices.Clone(c.products) }

// KindOf names the entity kind: "person", "product" or "company".
func KindOf(e Entity) string {
	switch e.(type) {
	case *Person:
		return "person"
	case *Product:
		return "product"
	case *Company:
		return "company"
	default:
		return "unknown"
	}
}

// Ref converts an entity to its wire representation.
func Ref(e Entity) apptype.EntityRef {
	return apptype.EntityRef{ID: e.ID(), Name: e.Name(), Kind: KindOf(e)}
}

// Refs converts a sequence of entities, preserving order.
func Refs[T Entity](es []T) []apptype.EntityRef {
	out := make([]apptype.EntityRef, 0, len(es))
	for _, e := range es {
		out = append(out, Ref(e))
	}
	return out
}
