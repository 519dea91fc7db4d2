package database

// SetFriends links two people in both directions. id1 is resolved before id2,
// so when both are unknown the error names id1. Linking an existing
// friendship is a no-op.
func (db *Database) SetFriends(id1, id2 int) error {
	p1, ok := db.people[id1]
	if !ok {
		return notFoundID(ErrNoSuchPerson, id1)
	}
	p2, ok := db.people[id2]
	if !ok {
		return notFoundID(ErrNoSuchPerson, id2)
	}
	if id1 == id2 {
		return ErrSelfFriendship
	}

	p1.addFriend(id2)
	p2.addFriend(id1)
	return nil
}

// RemoveFriends unlinks two people in both directions. Removing a friendship
// that does not exist is a no-op.
func (db *Database) RemoveFriends(id1, id2 int) error {
	p1, ok := db.people[id1]
	if !ok {
		return notFoundID(ErrNoSuchPerson, id1)
	}
	p2, ok := db.people[id2]
	if !ok {
		return notFoundID(ErrNoSuchPerson, id2)
	}

	p1.removeFriend(id2)
	p2.removeFriend(id1)
	return nil
}

// HasFriend reports whether a and b are friends.
func (db *Database) HasFriend(a, b *Person) bool {
	return a != nil && b != nil && a.hasFriend(b.ID())
}

// SetPersonProduct records that a person acquired a product. The person is
// resolved first. Repeated acquisitions are kept.
func (db *Database) SetPersonProduct(personID, productID int) error {
	person, ok := db.people[personID]
	if !ok {
		return notFoundID(ErrNoSuchPerson, personID)
	}
	if _, ok := db.products[productID]; !ok {
		return notFoundID(ErrNoSuchProduct, productID)
	}

	person.products = append(person.products, productID)
	return nil
}

// SetManufacturer records which company makes a product. The product is
// resolved first. A later call replaces the product's manufacturer but leaves
// the product in the previous company's listing.
func (db *Database) SetManufacturer(productID, companyID int) error {
	product, ok := db.products[productID]
	if !ok {
		return notFoundID(ErrNoSuchProduct, productID)
	}
	company, ok := db.companies[companyID]
	if !ok {
		return notFoundID(ErrNoSuchCompany, companyID)
	}

	product.manufacturer = companyID
	product.hasManufacturer = true
	company.products = append(company.products, productID)
	return nil
}

// Manufacturer returns the company that makes the product, or nil when none
// has been recorded.
func (db *Database) Manufacturer(p *Product) *Company {
	if p == nil {
		return nil
	}
	id, ok := p.ManufacturerID()
	if !ok {
		return nil
	}
	return db.companies[id]
}

// ProductsOf returns the company's product listing, stale entries included.
func (db *Database) ProductsOf(c *Company) []*Product {
	if c == nil {
		return nil
	}
	out := make([]*Product, 0, len(c.products))
	for _, id := range c.products {
		if p, ok := db.products[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
