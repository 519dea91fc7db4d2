package socialgraph

import (
	"errors"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/apptype"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/database"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/loader"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/metrics"
)

// Errors callers can match with errors.Is.
var (
	ErrNoSuchPerson   = database.ErrNoSuchPerson
	ErrNoSuchProduct  = database.ErrNoSuchProduct
	ErrNoSuchCompany  = database.ErrNoSuchCompany
	ErrInvalidNetwork = apptype.ErrInvalidNetwork
	ErrFileUnreadable = loader.ErrFileUnreadable
)

// Service provides a library-first API over a loaded graph without MCP transport.
type Service struct {
	db       *database.Database
	report   loader.Report
	dataFile string
}

// Open loads cfg.DataFile and returns a Service over it. An unreadable file
// yields an error wrapping ErrFileUnreadable and no Service.
func Open(cfg *Config) (*Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	db, report, err := loader.LoadFile(cfg.DataFile, cfg.toLoaderOptions())
	if err != nil {
		return nil, err
	}
	return &Service{db: db, report: report, dataFile: cfg.DataFile}, nil
}

// NewService wraps an already populated store.
func NewService(db *database.Database) *Service {
	if db == nil {
		db = database.New()
	}
	return &Service{db: db}
}

// DataFile is the path the graph was loaded from, empty for NewService.
func (s *Service) DataFile() string { return s.dataFile }

// Report is the ingestion summary of Open.
func (s *Service) Report() loader.Report { return s.report }

// Stats counts the loaded entities and relations.
func (s *Service) Stats() database.Stats { return s.db.Stats() }

// SearchPeople finds people whose name contains text, ignoring case.
func (s *Service) SearchPeople(text string) (people []*database.Person, err error) {
	done := metrics.TimeOp("search_people")
	defer func() { done(err == nil) }()
	return s.db.PeopleByName(text)
}

// SearchProducts finds products whose name contains text, ignoring case.
func (s *Service) SearchProducts(text string) (products []*database.Product, err error) {
	done := metrics.TimeOp("search_products")
	defer func() { done(err == nil) }()
	return s.db.ProductsByName(text)
}

// SearchCompanies finds companies whose name contains text, ignoring case.
func (s *Service) SearchCompanies(text string) (companies []*database.Company, err error) {
	done := metrics.TimeOp("search_companies")
	defer func() { done(err == nil) }()
	return s.db.CompaniesByName(text)
}

// Network returns the product or company network of a person. The facet
// token is validated before the person is looked up.
func (s *Service) Network(personID int, facet string) (members []database.Entity, err error) {
	done := metrics.TimeOp("network")
	defer func() { done(err == nil) }()

	f, err := apptype.ParseFacet(facet)
	if err != nil {
		return nil, err
	}
	p, err := s.db.PersonByID(personID)
	if err != nil {
		return nil, err
	}
	return s.db.Network(p, f)
}

// ProductNetwork is Network with the product facet.
func (s *Service) ProductNetwork(personID int) ([]*database.Product, error) {
	p, err := s.Person(personID)
	if err != nil {
		return nil, err
	}
	return s.db.ProductNetwork(p), nil
}

// CompanyNetwork is Network with the company facet.
func (s *Service) CompanyNetwork(personID int) ([]*database.Company, error) {
	p, err := s.Person(personID)
	if err != nil {
		return nil, err
	}
	return s.db.CompanyNetwork(p), nil
}

// Lookups
func (s *Service) Person(id int) (p *database.Person, err error) {
	done := metrics.TimeOp("get_person")
	defer func() { done(err == nil) }()
	return s.db.PersonByID(id)
}

func (s *Service) Product(id int) (p *database.Product, err error) {
	done := metrics.TimeOp("get_product")
	defer func() { done(err == nil) }()
	return s.db.ProductByID(id)
}

func (s *Service) Company(id int) (c *database.Company, err error) {
	done := metrics.TimeOp("get_company")
	defer func() { done(err == nil) }()
	return s.db.CompanyByID(id)
}

// Relation views
func (s *Service) Friends(p *database.Person) []*database.Person { return s.db.Friends(p) }

func (s *Service) OwnedProducts(p *database.Person) []*database.Product {
	return s.db.OwnedProducts(p)
}

func (s *Service) Manufacturer(p *database.Product) *database.Company { return s.db.Manufacturer(p) }

func (s *Service) ProductsOf(c *database.Company) []*database.Product { return s.db.ProductsOf(c) }

// IsNotFound reports whether err is a failed person, product or company lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoSuchPerson) || errors.Is(err, ErrNoSuchProduct) || errors.Is(err, ErrNoSuchCompany)
}
