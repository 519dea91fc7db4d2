package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/apptype"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/config"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/database"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/pkg/socialgraph"
)

var (
	errMissingArgument = errors.New("missing argument")
	errInvalidID       = errors.New("invalid id")
	errUnknownFormat   = errors.New("unknown output format")
)

// loadService loads the data file named by --data. A file that cannot be read
// leaves nothing to query.
func loadService(cmd *cli.Command, log *zap.Logger) (*socialgraph.Service, error) {
	svc, err := socialgraph.Open(&socialgraph.Config{DataFile: cmd.String("data"), Logger: log})
	if err != nil {
		return nil, fmt.Errorf("cannot proceed: %w", err)
	}
	return svc, nil
}

func textArg(cmd *cli.Command, what string) (string, error) {
	if cmd.Args().Len() == 0 {
		return "", fmt.Errorf("%w: %s", errMissingArgument, what)
	}
	return cmd.Args().First(), nil
}

func idArg(cmd *cli.Command) (int, error) {
	raw, err := textArg(cmd, "person id")
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidID, raw)
	}
	return id, nil
}

// printLookupError reports query misses as output. Anything else is returned.
func printLookupError(out io.Writer, err error) error {
	if socialgraph.IsNotFound(err) || errors.Is(err, socialgraph.ErrInvalidNetwork) {
		_, _ = fmt.Fprintln(out, err)
		return nil
	}
	return err
}

func printHits[T database.Entity](out io.Writer, text string, hits []T) {
	_, _ = fmt.Fprintf(out, "Search for %q returned %d hits:\n", text, len(hits))
	for _, h := range hits {
		_, _ = fmt.Fprintln(out, socialgraph.FormatHit(h))
	}
}

func peopleCommand(out io.Writer, cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "people",
		Usage:     "Search people by name (case-insensitive substring)",
		ArgsUsage: "<text>",
		Flags:     []cli.Flag{dataFlag(cfg)},
		Action: func(_ context.Context, cmd *cli.Command) error {
			text, err := textArg(cmd, "search text")
			if err != nil {
				return err
			}
			svc, err := loadService(cmd, log)
			if err != nil {
				return err
			}
			people, err := svc.SearchPeople(text)
			if err != nil {
				return printLookupError(out, err)
			}
			printHits(out, text, people)
			return nil
		},
	}
}

func productsCommand(out io.Writer, cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "products",
		Usage:     "Search products by name (case-insensitive substring)",
		ArgsUsage: "<text>",
		Flags:     []cli.Flag{dataFlag(cfg)},
		Action: func(_ context.Context, cmd *cli.Command) error {
			text, err := textArg(cmd, "search text")
			if err != nil {
				return err
			}
			svc, err := loadService(cmd, log)
			if err != nil {
				return err
			}
			products, err := svc.SearchProducts(text)
			if err != nil {
				return printLookupError(out, err)
			}
			printHits(out, text, products)
			return nil
		},
	}
}

func runNetwork(out io.Writer, cmd *cli.Command, log *zap.Logger, facet string) error {
	id, err := idArg(cmd)
	if err != nil {
		return err
	}
	svc, err := loadService(cmd, log)
	if err != nil {
		return err
	}
	members, err := svc.Network(id, facet)
	if err != nil {
		return printLookupError(out, err)
	}
	person, err := svc.Person(id)
	if err != nil {
		return printLookupError(out, err)
	}
	f, _ := apptype.ParseFacet(facet)
	_, _ = fmt.Fprintf(out, "%s network of %s:\n", f, socialgraph.FormatHit(person))
	_, _ = fmt.Fprintln(out, socialgraph.JoinNames(members))
	return nil
}

func networkCommand(out io.Writer, cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "network",
		Usage:     "Show what a person's friends have that the person does not",
		ArgsUsage: "<person-id>",
		Flags: []cli.Flag{
			dataFlag(cfg),
			&cli.StringFlag{
				Name:    "facet",
				Aliases: []string{"f"},
				Usage:   "network to compute: product or company",
				Value:   "product",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runNetwork(out, cmd, log, cmd.String("facet"))
		},
	}
}

func productNetworkCommand(out io.Writer, cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "product-network",
		Usage:     "Products owned by a person's friends but not by the person",
		ArgsUsage: "<person-id>",
		Flags:     []cli.Flag{dataFlag(cfg)},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runNetwork(out, cmd, log, "product")
		},
	}
}

func companyNetworkCommand(out io.Writer, cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "company-network",
		Usage:     "Manufacturers of friends' products that the person does not already buy from",
		ArgsUsage: "<person-id>",
		Flags:     []cli.Flag{dataFlag(cfg)},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runNetwork(out, cmd, log, "company")
		},
	}
}

// statsView is the machine-readable form of the stats command.
type statsView struct {
	People      int            `json:"people" yaml:"people"`
	Products    int            `json:"products" yaml:"products"`
	Companies   int            `json:"companies" yaml:"companies"`
	Friendships int            `json:"friendships" yaml:"friendships"`
	Ownerships  int            `json:"ownerships" yaml:"ownerships"`
	Lines       int            `json:"lines" yaml:"lines"`
	Accepted    map[string]int `json:"accepted" yaml:"accepted"`
	Rejected    map[string]int `json:"rejected" yaml:"rejected"`
}

func statsCommand(out io.Writer, cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Print graph size and ingestion summary",
		Flags: []cli.Flag{
			dataFlag(cfg),
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: text, json or yaml",
				Value: "text",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			svc, err := loadService(cmd, log)
			if err != nil {
				return err
			}
			s := svc.Stats()
			r := svc.Report()
			view := statsView{
				People:      s.People,
				Products:    s.Products,
				Companies:   s.Companies,
				Friendships: s.Friendships,
				Ownerships:  s.Ownerships,
				Lines:       r.Lines,
				Accepted:    r.Accepted,
				Rejected:    r.Rejected,
			}

			switch format := cmd.String("format"); format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			case "yaml":
				enc := yaml.NewEncoder(out)
				if err := enc.Encode(view); err != nil {
					_ = enc.Close()
					return err
				}
				return enc.Close()
			case "text":
				printStats(out, view, r.TotalAccepted(), r.TotalRejected())
				return nil
			default:
				return fmt.Errorf("%w: %q", errUnknownFormat, format)
			}
		},
	}
}

func printStats(out io.Writer, v statsView, accepted, rejected int) {
	_, _ = fmt.Fprintf(out, "people: %d\nproducts: %d\ncompanies: %d\nfriendships: %d\nownerships: %d\n",
		v.People, v.Products, v.Companies, v.Friendships, v.Ownerships)
	_, _ = fmt.Fprintf(out, "lines: %d\naccepted rows: %d\nrejected rows: %d\n", v.Lines, accepted, rejected)

	reasons := make([]string, 0, len(v.Rejected))
	for reason := range v.Rejected {
		reasons = append(reasons, reason)
	}
	slices.Sort(reasons)
	for _, reason := range reasons {
		_, _ = fmt.Fprintf(out, "  %s: %d\n", reason, v.Rejected[reason])
	}
}
