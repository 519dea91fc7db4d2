package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v3"

	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/apptype"
	"github.com/ZanzyTHEbar/mcp-socialgraph-go/internal/buildinfo"
)

type StepResult struct {
	Name      string `json:"name"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

type Report struct {
	RunID      string       `json:"run_id"`
	SSEURL     string       `json:"sse_url"`
	StartedAt  time.Time    `json:"started_at"`
	DurationMs int64        `json:"duration_ms"`
	Steps      []StepResult `json:"steps"`
	Passed     bool         `json:"passed"`
}

var errFailed = errors.New("integration run failed")

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "integration-tester",
		Version: buildinfo.Version,
		Usage:   "Call every socialgraph MCP tool over SSE and print a JSON report",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sse-url", Value: "http://localhost:8080/sse", Usage: "SSE endpoint URL"},
			&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "overall timeout"},
			&cli.IntFlag{Name: "person", Value: 1, Usage: "person id used for lookups and networks"},
			&cli.StringFlag{Name: "query", Value: "a", Usage: "substring used for the search tools"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			report := run(ctx, cmd.String("sse-url"), cmd.Int("person"), cmd.String("query"))
			writeReport(out, report)
			if !report.Passed {
				return errFailed
			}
			return nil
		},
	}
}

func run(ctx context.Context, sseURL string, personID int, query string) Report {
	client := mcp.NewClient(&mcp.Implementation{Name: "integration-tester", Version: buildinfo.Version}, nil)
	transport := mcp.NewSSEClientTransport(sseURL, nil)

	start := time.Now()
	report := Report{RunID: uuid.NewString(), SSEURL: sseURL, StartedAt: start}

	// Connect
	tConn := time.Now()
	connRes := StepResult{Name: "connect"}
	session, err := client.Connect(ctx, transport)
	if err != nil {
		connRes.Error = err.Error()
		connRes.ElapsedMs = elapsedMsSince(tConn)
		report.Steps = []StepResult{connRes}
		report.DurationMs = elapsedMsSince(start)
		return report
	}
	defer session.Close()
	connRes.Success = true
	connRes.ElapsedMs = elapsedMsSince(tConn)

	steps := []StepResult{
		connRes,
		runListTools(ctx, session),
		runTool(ctx, session, "search_people", apptype.SearchArgs{Query: query}),
		runTool(ctx, session, "search_products", apptype.SearchArgs{Query: query}),
		runTool(ctx, session, "get_person", apptype.GetByIDArgs{ID: personID}),
		runTool(ctx, session, "get_network", apptype.NetworkArgs{PersonID: personID, Facet: "product"}),
		runTool(ctx, session, "get_network", apptype.NetworkArgs{PersonID: personID, Facet: "company"}),
		runToolExpectError(ctx, session, "get_network", apptype.NetworkArgs{PersonID: personID, Facet: "friends"}),
		runTool(ctx, session, "health_check", apptype.HealthArgs{}),
	}

	// finalize report
	report.Steps = steps
	report.DurationMs = elapsedMsSince(start)
	report.Passed = true
	for _, s := range steps {
		if !s.Success {
			report.Passed = false
			break
		}
	}
	return report
}

func writeReport(w io.Writer, report Report) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(report)
}

func runListTools(ctx context.Context, session *mcp.ClientSession) StepResult {
	t0 := time.Now()
	res := StepResult{Name: "list_tools"}
	if _, err := session.ListTools(ctx, &mcp.ListToolsParams{}); err != nil {
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

func callTool(ctx context.Context, session *mcp.ClientSession, tool string, args any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return err
	}
	out, err := session.CallTool(ctx, &mcp.CallToolParams{Name: tool, Arguments: json.RawMessage(raw)})
	if err != nil {
		return err
	}
	if out.IsError {
		return fmt.Errorf("%s returned an error result", tool)
	}
	return nil
}

func runTool(ctx context.Context, session *mcp.ClientSession, tool string, args any) StepResult {
	t0 := time.Now()
	res := StepResult{Name: tool}
	if err := callTool(ctx, session, tool, args); err != nil {
		res.Error = err.Error()
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

// runToolExpectError passes when the call is rejected.
func runToolExpectError(ctx context.Context, session *mcp.ClientSession, tool string, args any) StepResult {
	t0 := time.Now()
	res := StepResult{Name: tool + " (rejected)"}
	if err := callTool(ctx, session, tool, args); err == nil {
		res.Error = "expected an error, call succeeded"
	} else {
		res.Success = true
	}
	res.ElapsedMs = elapsedMsSince(t0)
	return res
}

// elapsedMsSince returns max(1ms, elapsed) to avoid zero durations on fast steps
func elapsedMsSince(t0 time.Time) int64 {
	d := time.Since(t0) / time.Millisecond
	if d <= 0 {
		return 1
	}
	return int64(d)
}
