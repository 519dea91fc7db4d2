package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/apptype"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/buildinfo"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/database"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/logger"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/metrics"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/pkg/socialgraph"
)

const serverName = "mcp-socialgraph-go"

// MCPServer handles MCP protocol communication
type MCPServer struct {
	server *mcp.Server
	svc    *socialgraph.Service
	log    *zap.Logger
}

// NewMCPServer creates a new MCP server over a loaded graph
func NewMCPServer(svc *socialgraph.Service, log *zap.Logger) *MCPServer {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: buildinfo.Version,
	}, nil)

	mcpServer := &MCPServer{
		server: server,
		svc:    svc,
		log:    logger.OrNop(log),
	}
	mcpServer.setupToolHandlers()
	return mcpServer
}

func mustSchema[T any](what string) *jsonschema.Schema {
	schema, err := jsonschema.For[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to create schema for %s: %v", what, err))
	}
	return schema
}

// setupToolHandlers registers all MCP tools
func (s *MCPServer) setupToolHandlers() {
	// schemas are resolved once per tool; sharing a root between tools is not supported
	mcp.AddTool(s.server, &mcp.Tool{
		Annotations:  &mcp.ToolAnnotations{Title: "Search People"},
		Name:         "search_people",
		Title:        "Search People",
		Description:  "Find people whose name contains the query, ignoring case. Results keep input order.",
		InputSchema:  mustSchema[apptype.SearchArgs]("SearchArgs (people)"),
		OutputSchema: mustSchema[apptype.SearchResult]("SearchResult (people)"),
	}, s.handleSearchPeople)

	mcp.AddTool(s.server, &mcp.Tool{
		Annotations:  &mcp.ToolAnnotations{Title: "Search Products"},
		Name:         "search_products",
		Title:        "Search Products",
		Description:  "Find products whose name contains the query, ignoring case. Results keep input order.",
		InputSchema:  mustSchema[apptype.SearchArgs]("SearchArgs (products)"),
		OutputSchema: mustSchema[apptype.SearchResult]("SearchResult (products)"),
	}, s.handleSearchProducts)

	mcp.AddTool(s.server, &mcp.Tool{
		Annotations:  &mcp.ToolAnnotations{Title: "Get Network"},
		Name:         "get_network",
		Title:        "Get Network",
		Description:  "Products (facet=product) or manufacturers (facet=company) reachable through a person's friends that the person does not already have, sorted by name.",
		InputSchema:  mustSchema[apptype.NetworkArgs]("NetworkArgs"),
		OutputSchema: mustSchema[apptype.NetworkResult]("NetworkResult"),
	}, s.handleGetNetwork)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "get_person",
		Title:        "Get Person",
		Description:  "Fetch a person by id with friends and owned products.",
		InputSchema:  mustSchema[apptype.GetByIDArgs]("GetByIDArgs (person)"),
		OutputSchema: mustSchema[apptype.PersonResult]("PersonResult"),
	}, s.handleGetPerson)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "get_product",
		Title:        "Get Product",
		Description:  "Fetch a product by id with its manufacturer.",
		InputSchema:  mustSchema[apptype.GetByIDArgs]("GetByIDArgs (product)"),
		OutputSchema: mustSchema[apptype.ProductResult]("ProductResult"),
	}, s.handleGetProduct)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "get_company",
		Title:        "Get Company",
		Description:  "Fetch a company by id with the products recorded for it.",
		InputSchema:  mustSchema[apptype.GetByIDArgs]("GetByIDArgs (company)"),
		OutputSchema: mustSchema[apptype.CompanyResult]("CompanyResult"),
	}, s.handleGetCompany)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:         "health_check",
		Title:        "Health Check",
		Description:  "Returns server build information and graph size.",
		InputSchema:  mustSchema[apptype.HealthArgs]("HealthArgs"),
		OutputSchema: mustSchema[apptype.HealthResult]("HealthResult"),
	}, s.handleHealth)
}

func textContent(text string) []mcp.Content {
	return []mcp.Content{&mcp.TextContent{Text: text}}
}

// toolError logs a failed call. Lookup misses are expected and stay at debug.
func (s *MCPServer) toolError(tool string, err error) error {
	if socialgraph.IsNotFound(err) || errors.Is(err, socialgraph.ErrInvalidNetwork) {
		s.log.Debug("tool lookup failed", zap.String("tool", tool), zap.Error(err))
	} else {
		s.log.Error("tool failed", zap.String("tool", tool), zap.Error(err))
	}
	return fmt.Errorf("%s: %w", tool, err)
}

// handleSearchPeople handles the search_people tool call
func (s *MCPServer) handleSearchPeople(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.SearchArgs],
) (*mcp.CallToolResultFor[apptype.SearchResult], error) {
	done := metrics.TimeTool("search_people")
	var success bool
	defer func() { done(success) }()

	query := params.Arguments.Query
	people, err := s.svc.SearchPeople(query)
	if err != nil {
		return nil, s.toolError("search_people", err)
	}
	success = true

	return &mcp.CallToolResultFor[apptype.SearchResult]{
		Content:           textContent(fmt.Sprintf("Search for %q returned %d hits", query, len(people))),
		StructuredContent: apptype.SearchResult{Query: query, Matches: database.Refs(people)},
	}, nil
}

// handleSearchProducts handles the search_products tool call
func (s *MCPServer) handleSearchProducts(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.SearchArgs],
) (*mcp.CallToolResultFor[apptype.SearchResult], error) {
	done := metrics.TimeTool("search_products")
	var success bool
	defer func() { done(success) }()

	query := params.Arguments.Query
	products, err := s.svc.SearchProducts(query)
	if err != nil {
		return nil, s.toolError("search_products", err)
	}
	success = true

	return &mcp.CallToolResultFor[apptype.SearchResult]{
		Content:           textContent(fmt.Sprintf("Search for %q returned %d hits", query, len(products))),
		StructuredContent: apptype.SearchResult{Query: query, Matches: database.Refs(products)},
	}, nil
}

// handleGetNetwork handles the get_network tool call
func (s *MCPServer) handleGetNetwork(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.NetworkArgs],
) (*mcp.CallToolResultFor[apptype.NetworkResult], error) {
	done := metrics.TimeTool("get_network")
	var success bool
	defer func() { done(success) }()

	args := params.Arguments
	members, err := s.svc.Network(args.PersonID, args.Facet)
	if err != nil {
		return nil, s.toolError("get_network", err)
	}
	person, err := s.svc.Person(args.PersonID)
	if err != nil {
		return nil, s.toolError("get_network", err)
	}
	facet, _ := apptype.ParseFacet(args.Facet)
	success = true

	return &mcp.CallToolResultFor[apptype.NetworkResult]{
		Content: textContent(socialgraph.JoinNames(members)),
		StructuredContent: apptype.NetworkResult{
			Person:  database.Ref(person),
			Facet:   facet.String(),
			Members: database.Refs(members),
		},
	}, nil
}

// handleGetPerson handles the get_person tool call
func (s *MCPServer) handleGetPerson(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.GetByIDArgs],
) (*mcp.CallToolResultFor[apptype.PersonResult], error) {
	done := metrics.TimeTool("get_person")
	var success bool
	defer func() { done(success) }()

	p, err := s.svc.Person(params.Arguments.ID)
	if err != nil {
		return nil, s.toolError("get_person", err)
	}
	success = true

	return &mcp.CallToolResultFor[apptype.PersonResult]{
		Content: textContent(socialgraph.FormatHit(p)),
		StructuredContent: apptype.PersonResult{
			Person:   database.Ref(p),
			Gender:   p.Gender.String(),
			Friends:  database.Refs(s.svc.Friends(p)),
			Products: database.Refs(s.svc.OwnedProducts(p)),
		},
	}, nil
}

// handleGetProduct handles the get_product tool call
func (s *MCPServer) handleGetProduct(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.GetByIDArgs],
) (*mcp.CallToolResultFor[apptype.ProductResult], error) {
	done := metrics.TimeTool("get_product")
	var success bool
	defer func() { done(success) }()

	p, err := s.svc.Product(params.Arguments.ID)
	if err != nil {
		return nil, s.toolError("get_product", err)
	}
	success = true

	res := apptype.ProductResult{Product: database.Ref(p)}
	if c := s.svc.Manufacturer(p); c != nil {
		ref := database.Ref(c)
		res.Manufacturer = &ref
	}
	return &mcp.CallToolResultFor[apptype.ProductResult]{
		Content:           textContent(socialgraph.FormatHit(p)),
		StructuredContent: res,
	}, nil
}

// handleGetCompany handles the get_company tool call
func (s *MCPServer) handleGetCompany(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.GetByIDArgs],
) (*mcp.CallToolResultFor[apptype.CompanyResult], error) {
	done := metrics.TimeTool("get_company")
	var success bool
	defer func() { done(success) }()

	c, err := s.svc.Company(params.Arguments.ID)
	if err != nil {
		return nil, s.toolError("get_company", err)
	}
	success = true

	return &mcp.CallToolResultFor[apptype.CompanyResult]{
		Content: textContent(socialgraph.FormatHit(c)),
		StructuredContent: apptype.CompanyResult{
			Company:  database.Ref(c),
			Products: database.Refs(s.svc.ProductsOf(c)),
		},
	}, nil
}

// handleHealth returns basic server health information
func (s *MCPServer) handleHealth(
	ctx context.Context,
	session *mcp.ServerSession,
	params *mcp.CallToolParamsFor[apptype.HealthArgs],
) (*mcp.CallToolResultFor[apptype.HealthResult], error) {
	done := metrics.TimeTool("health_check")
	defer func() { done(true) }()

	stats := s.svc.Stats()
	res := apptype.HealthResult{
		Name:      serverName,
		Version:   buildinfo.Version,
		Revision:  buildinfo.Revision,
		BuildDate: buildinfo.BuildDate,
		DataFile:  s.svc.DataFile(),
		People:    stats.People,
		Products:  stats.Products,
		Companies: stats.Companies,
		Rejected:  s.svc.Report().TotalRejected(),
	}
	return &mcp.CallToolResultFor[apptype.HealthResult]{
		Content:           textContent(fmt.Sprintf("%s %s: %d people, %d products, %d companies", serverName, res.Version, res.People, res.Products, res.Companies)),
		StructuredContent: res,
	}, nil
}

// Run starts the MCP server over stdio
func (s *MCPServer) Run(ctx context.Context) error {
	transport := mcp.NewStdioTransport()
	s.log.Info("stdio MCP server started")
	return s.server.Run(ctx, transport)
}

// RunSSE starts the MCP server over SSE at the given address and endpoint.
// It returns once ctx is cancelled and the HTTP server has shut down.
func (s *MCPServer) RunSSE(ctx context.Context, addr string, endpoint string) error {
	handler := mcp.NewSSEHandler(func(r *http.Request) *mcp.Server { return s.server })
	mux := http.NewServeMux()
	mux.Handle(endpoint, handler)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("SSE MCP server listening", zap.String("addr", addr), zap.String("endpoint", endpoint))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
