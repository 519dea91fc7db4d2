package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/apptype"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/database"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/logger"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/metrics"
)

// ErrFileUnreadable is returned by LoadFile when the input cannot be opened or read.
var ErrFileUnreadable = errors.New("file unreadable")

var (
	errMissingField    = errors.New("missing field")
	errWrongIdentifier = errors.New("wrong identifier")
)

// Rejection reasons attached to logged rows and counted in Report.Rejected.
const (
	ReasonNumberFormat    = "number-format"
	ReasonMissingField    = "missing-field"
	ReasonUnknownGender   = "unknown-gender"
	ReasonNoSuchPerson    = "no-such-person"
	ReasonNoSuchProduct   = "no-such-product"
	ReasonNoSuchCompany   = "no-such-company"
	ReasonDuplicateID     = "duplicate-id"
	ReasonSelfFriendship  = "self-friendship"
	ReasonWrongIdentifier = "wrong-identifier"
	ReasonOther           = "other"
)

const headerMarker = "New_Entity"

// BlockKind is the record kind announced by a block header.
type BlockKind int

const (
	BlockNone BlockKind = iota
	BlockPerson
	BlockProduct
	BlockCompany
	BlockFriendship
	BlockOwnership
	BlockManufacture
)

func (k BlockKind) String() string {
	switch k {
	case BlockPerson:
		return "person"
	case BlockProduct:
		return "product"
	case BlockCompany:
		return "company"
	case BlockFriendship:
		return "friendship"
	case BlockOwnership:
		return "ownership"
	case BlockManufacture:
		return "manufacture"
	default:
		return "none"
	}
}

// Tested in order; the first token contained in the header wins.
var headerTokens = []struct {
	token string
	kind  BlockKind
}{
	{"person_name", BlockPerson},
	{"product_name", BlockProduct},
	{"company_name", BlockCompany},
	{"person1_id", BlockFriendship},
	{"person_id", BlockOwnership},
	{"company_id", BlockManufacture},
}

func isHeader(line string) bool { return strings.Contains(line, headerMarker) }

// classify strips the marker prefix and quotes from a header line and maps
// it to a block kind by substring presence.
func classify(header string) BlockKind {
	h := strings.Replace(header, headerMarker+":", "", 1)
	h = strings.ReplaceAll(h, `"`, "")
	for _, t := range headerTokens {
		if strings.Contains(h, t.token) {
			return t.kind
		}
	}
	return BlockNone
}

// Options configures a parse.
type Options struct {
	// Logger receives one warning per rejected row. Nil discards.
	Logger *zap.Logger
}

// Report summarizes a parse.
type Report struct {
	Lines    int               `json:"lines"`
	Accepted map[string]int    `json:"accepted"`
	Rejected map[string]int    `json:"rejected"`
	Blocks   map[BlockKind]int `json:"-"`
}

func newReport() Report {
	return Report{
		Accepted: make(map[string]int),
		Rejected: make(map[string]int),
		Blocks:   make(map[BlockKind]int),
	}
}

// TotalAccepted is the number of rows applied to the store.
func (r Report) TotalAccepted() int {
	n := 0
	for _, v := range r.Accepted {
		n += v
	}
	return n
}

// TotalRejected is the number of rows logged and skipped.
func (r Report) TotalRejected() int {
	n := 0
	for _, v := range r.Rejected {
		n += v
	}
	return n
}

type parser struct {
	db     *database.Database
	log    *zap.Logger
	report Report
}

// Parse reads block-structured records from r into db. Malformed rows are
// logged and skipped; only a failing reader returns an error.
func Parse(r io.Reader, db *database.Database, opts Options) (Report, error) {
	p := &parser{db: db, log: logger.OrNop(opts.Logger), report: newReport()}
	src := NewLineSource(r)

	line, ok, err := src.ReadLine()
	for ok {
		if !isHeader(line) {
			line, ok, err = src.ReadLine()
			continue
		}

		kind := classify(line)
		p.report.Blocks[kind]++
		p.log.Debug("block", zap.Stringer("kind", kind), zap.Int("line", src.CurrentLine()))

		for {
			line, ok, err = src.ReadLine()
			if !ok || line == "" || isHeader(line) {
				break
			}
			p.row(kind, line, src.CurrentLine())
		}
	}

	p.report.Lines = src.CurrentLine()
	if err != nil {
		return p.report, fmt.Errorf("read line %d: %w", src.CurrentLine()+1, err)
	}
	return p.report, nil
}

func (p *parser) row(kind BlockKind, line string, lineNo int) {
	if err := p.apply(kind, splitFields(line)); err != nil {
		reason := reasonFor(err)
		p.report.Rejected[reason]++
		metrics.Default().IncRowsRejected(reason)
		p.log.Warn("invalid record",
			zap.Int("line", lineNo),
			zap.String("reason", reason),
			zap.Stringer("block", kind),
			zap.Error(err),
		)
		return
	}
	p.report.Accepted[kind.String()]++
	metrics.Default().IncRowsAccepted(kind.String())
}

func (p *parser) apply(kind BlockKind, fields []string) error {
	if kind == BlockNone {
		return errWrongIdentifier
	}

	// The id is parsed as written; padding makes it a number-format error.
	id, err := strconv.Atoi(field(fields, 0))
	if err != nil {
		return err
	}
	if len(fields) < 2 {
		return fmt.Errorf("%w: expected at least 2, got %d", errMissingField, len(fields))
	}
	second := strings.TrimSpace(fields[1])

	switch kind {
	case BlockPerson:
		if len(fields) < 3 {
			return fmt.Errorf("%w: gender", errMissingField)
		}
		gender, err := apptype.ParseGender(fields[2])
		if err != nil {
			return err
		}
		return p.db.AddPerson(database.NewPerson(id, second, gender))
	case BlockProduct:
		return p.db.AddProduct(database.NewProduct(id, second))
	case BlockCompany:
		return p.db.AddCompany(database.NewCompany(id, second))
	}

	other, err := strconv.Atoi(second)
	if err != nil {
		return err
	}
	switch kind {
	case BlockFriendship:
		return p.db.SetFriends(id, other)
	case BlockOwnership:
		return p.db.SetPersonProduct(id, other)
	case BlockManufacture:
		return p.db.SetManufacturer(id, other)
	default:
		return errWrongIdentifier
	}
}

// splitFields removes quotes and splits on commas. Trailing empty fields
// are dropped.
func splitFields(line string) []string {
	fields := strings.Split(strings.ReplaceAll(line, `"`, ""), ",")
	for len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}

func reasonFor(err error) string {
	var numErr *strconv.NumError
	switch {
	case errors.As(err, &numErr):
		return ReasonNumberFormat
	case errors.Is(err, errMissingField):
		return ReasonMissingField
	case errors.Is(err, apptype.ErrUnknownGender):
		return ReasonUnknownGender
	case errors.Is(err, database.ErrNoSuchPerson):
		return ReasonNoSuchPerson
	case errors.Is(err, database.ErrNoSuchProduct):
		return ReasonNoSuchProduct
	case errors.Is(err, database.ErrNoSuchCompany):
		return ReasonNoSuchCompany
	case errors.Is(err, database.ErrDuplicateID):
		return ReasonDuplicateID
	case errors.Is(err, database.ErrSelfFriendship):
		return ReasonSelfFriendship
	case errors.Is(err, errWrongIdentifier):
		return ReasonWrongIdentifier
	default:
		return ReasonOther
	}
}

// LoadFile builds a new store from the file at path. The file is always
// closed. When it cannot be opened or read the error wraps ErrFileUnreadable
// and no store is returned.
func LoadFile(path string, opts Options) (db *database.Database, report Report, err error) {
	done := metrics.TimeOp("load_file")
	defer func() { done(err == nil) }()

	log := logger.OrNop(opts.Logger)

	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}
	defer f.Close()

	db = database.New()
	report, err = Parse(f, db, Options{Logger: log})
	if err != nil {
		return nil, report, fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}

	log.Info("data file loaded",
		zap.String("path", path),
		zap.Int("lines", report.Lines),
		zap.Int("accepted", report.TotalAccepted()),
		zap.Int("rejected", report.TotalRejected()),
	)
	return db, report, nil
}
