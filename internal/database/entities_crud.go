package database

// AddPerson inserts a person. Ids must be unique per kind; a second person
// with the same id is rejected with ErrDuplicateID.
func (db *Database) AddPerson(p *Person) error {
	if _, exists := db.people[p.ID()]; exists {
		return duplicateID("person", p.ID())
	}
	db.people[p.ID()] = p
	db.peopleOrder = append(db.peopleOrder, p)
	return nil
}

// AddProduct inserts a product, rejecting duplicate ids.
func (db *Database) AddProduct(p *Product) error {
	if _, exists := db.products[p.ID()]; exists {
		return duplicateID("product", p.ID())
	}
	db.products[p.ID()] = p
	db.productOrder = append(db.productOrder, p)
	return nil
}

// AddCompany inserts a company, rejecting duplicate ids.
func (db *Database) AddCompany(c *Company) error {
	if _, exists := db.companies[c.ID()]; exists {
		return duplicateID("company", c.ID())
	}
	db.companies[c.ID()] = c
	db.companiesOrder = append(db.companiesOrder, c)
	return nil
}

// PersonByID returns the person with the given id
func (db *Database) PersonByID(id int) (*Person, error) {
	if p, ok := db.people[id]; ok {
		return p, nil
	}
	return nil, notFoundID(ErrNoSuchPerson, id)
}

// ProductByID returns the product with the given id
func (db *Database) ProductByID(id int) (*Product, error) {
	if p, ok := db.products[id]; ok {
		return p, nil
	}
	return nil, notFoundID(ErrNoSuchProduct, id)
}

// CompanyByID returns the company with the given id
func (db *Database) CompanyByID(id int) (*Company, error) {
	if c, ok := db.companies[id]; ok {
		return c, nil
	}
	return nil, notFoundID(ErrNoSuchCompany, id)
}
