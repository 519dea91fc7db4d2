package database

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/apptype"
)

// Friends returns the person's friends in the order the friendships were linked.
func (db *Database) Friends(p *Person) []*Person {
	if p == nil {
		return nil
	}
	out := make([]*Person, 0, len(p.friends))
	for _, id := range p.friends {
		if f, ok := db.people[id]; ok {
			out = append(out, f)
		}
	}
	return out
}

// OwnedProducts returns the person's products in acquisition order,
// repeated acquisitions included.
func (db *Database) OwnedProducts(p *Person) []*Product {
	if p == nil {
		return nil
	}
	out := make([]*Product, 0, len(p.products))
	for _, id := range p.products {
		if pr, ok := db.products[id]; ok {
			out = append(out, pr)
		}
	}
	return out
}

// OwningCompanies returns the manufacturer of each owned product, in the
// same order as OwnedProducts. A company appears once per product it made;
// products without a manufacturer are skipped.
func (db *Database) OwningCompanies(p *Person) []*Company {
	products := db.OwnedProducts(p)
	out := make([]*Company, 0, len(products))
	for _, pr := range products {
		if c := db.Manufacturer(pr); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// ProductNetwork returns the products owned by p's friends that p does not
// own, sorted by name and deduplicated.
func (db *Database) ProductNetwork(p *Person) []*Product {
	return aggregate(p, db.Friends(p), db.OwnedProducts)
}

// CompanyNetwork returns the manufacturers of the friends' products, minus
// p's own manufacturers, sorted by name and deduplicated.
func (db *Database) CompanyNetwork(p *Person) []*Company {
	return aggregate(p, db.Friends(p), db.OwningCompanies)
}

// Network dispatches to ProductNetwork or CompanyNetwork.
func (db *Database) Network(p *Person, facet apptype.Facet) ([]Entity, error) {
	switch facet {
	case apptype.FacetProducts:
		return toEntities(db.ProductNetwork(p)), nil
	case apptype.FacetCompanies:
		return toEntities(db.CompanyNetwork(p)), nil
	default:
		return nil, fmt.Errorf("%w: %v", apptype.ErrInvalidNetwork, facet)
	}
}

// aggregate collects facet values of every friend (friend order, then facet
// order), drops values that are also in p's own facet, stable-sorts by
// lower-cased name and keeps the first occurrence of each value. Values are
// compared by identity.
func aggregate[T interface {
	comparable
	Entity
}](p *Person, friends []*Person, facet func(*Person) []T) []T {
	if p == nil {
		return nil
	}

	own := make(map[T]struct{})
	for _, v := range facet(p) {
		own[v] = struct{}{}
	}

	var collected []T
	for _, f := range friends {
		for _, v := range facet(f) {
			if _, mine := own[v]; !mine {
				collected = append(collected, v)
			}
		}
	}

	slices.SortStableFunc(collected, func(a, b T) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})

	seen := make(map[T]struct{}, len(collected))
	out := collected[:0]
	for _, v := range collected {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func toEntities[T Entity](in []T) []Entity {
	out := make([]Entity, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
