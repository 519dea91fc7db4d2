package apptype

// SearchArgs represents the arguments for the search_people and search_products tools
type SearchArgs struct {
	Query string `json:"query" jsonschema:"Case-insensitive substring to match against entity names."`
}

// SearchResult lists the matches of a name search in insertion order
type SearchResult struct {
	Query   string      `json:"query"`
	Matches []EntityRef `json:"matches"`
}

// NetworkArgs represents the arguments for the get_network tool
type NetworkArgs struct {
	PersonID int    `json:"personId" jsonschema:"Id of the person whose friends are aggregated."`
	Facet    string `json:"facet" jsonschema:"Which network to compute: product or company."`
}

// NetworkResult is the deduplicated, name-sorted network of a person
type NetworkResult struct {
	Person  EntityRef   `json:"person"`
	Facet   string      `json:"facet"`
	Members []EntityRef `json:"members"`
}

// GetByIDArgs represents the arguments for the get_person, get_product and get_company tools
type GetByIDArgs struct {
	ID int `json:"id" jsonschema:"Entity id as assigned by the input file."`
}

// PersonResult describes a person together with its relations
type PersonResult struct {
	Person   EntityRef   `json:"person"`
	Gender   string      `json:"gender"`
	Friends  []EntityRef `json:"friends"`
	Products []EntityRef `json:"products"`
}

// ProductResult describes a product and its manufacturer, if any
type ProductResult struct {
	Product      EntityRef  `json:"product"`
	Manufacturer *EntityRef `json:"manufacturer,omitempty"`
}

// CompanyResult describes a company and the products it manufactures
type CompanyResult struct {
	Company  EntityRef   `json:"company"`
	Products []EntityRef `json:"products"`
}

// Health
type HealthArgs struct{}

type HealthResult struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuildDate string `json:"buildDate"`
	DataFile  string `json:"dataFile"`
	People    int    `json:"people"`
	Products  int    `json:"products"`
	Companies int    `json:"companies"`
	Rejected  int    `json:"rejectedRows"`
}
