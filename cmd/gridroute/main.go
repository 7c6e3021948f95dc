// Command gridroute computes least-cost routes over a lattice file.
//
// It supports three modes:
//  1. "route" (default) – one search from -from to -to, printed as JSON
//  2. "batch" – every query of a JSON file, searched in parallel
//  3. "serve" – an HTTP server with POST /route and GET /metrics
//
// Defaults for -grid and -addr may come from GRIDROUTE_GRID and
// GRIDROUTE_ADDR, optionally set in a .env file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/gridfile"
	"github.com/katalvlaran/gridroute/lattice"
	"github.com/katalvlaran/gridroute/metrics"
)

// Version information
const (
	Version = "0.3.0"
	AppName = "gridroute"
)

var (
	gridPath      = flag.String("grid", "", "Lattice file (.json, .yaml); defaults to $GRIDROUTE_GRID")
	from          = flag.String("from", "", "Start coordinate as x,y")
	to            = flag.String("to", "", "Goal coordinate as x,y")
	queriesPath   = flag.String("queries", "", "Batch mode: JSON file of [{\"from\":[x,y],\"to\":[x,y]}]")
	workers       = flag.Int("workers", 0, "Batch mode: parallel searches (0 = number of CPUs)")
	maxExpansions = flag.Int("max-expansions", 0, "Stop a search after this many expansions (0 = no limit)")
	timeout       = flag.Duration("timeout", 0, "Abort route/batch after this long; in serve mode, bound each search (0 = no timeout)")
	addr          = flag.String("addr", "", "Serve mode: listen address; defaults to $GRIDROUTE_ADDR or localhost:8080")
	debug         = flag.Bool("debug", false, "Enable debug logging")
	version       = flag.Bool("version", false, "Show version information")
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [MODE]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "%s v%s\n\n", AppName, Version)
		fmt.Fprintf(os.Stderr, "Available modes:\n")
		fmt.Fprintf(os.Stderr, "  route   Find one path (default)\n")
		fmt.Fprintf(os.Stderr, "  batch   Find the paths of -queries in parallel\n")
		fmt.Fprintf(os.Stderr, "  serve   Run the HTTP API with Prometheus metrics\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -grid city.json -from -87.70,41.80 -to -87.62,41.88\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -grid city.json -queries trips.json batch\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -grid city.json -addr :9090 serve\n", os.Args[0])
	}
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	flag.Parse()

	if *version {
		fmt.Printf("%s v%s\n", AppName, Version)
		os.Exit(0)
	}

	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	mode := "route"
	if args := flag.Args(); len(args) > 0 {
		mode = args[0]
	}

	path := envDefault(*gridPath, "GRIDROUTE_GRID", "")
	if path == "" {
		log.Fatalf("No lattice file: pass -grid or set GRIDROUTE_GRID")
	}
	g, err := gridfile.Load(path)
	if err != nil {
		log.Fatalf("Failed to load lattice: %v", err)
	}
	nx, ny := g.Size()
	if *debug {
		log.Printf("Loaded %s: %d×%d positions, cell size %g", path, nx, ny, g.CellSize())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch mode {
	case "route", "batch":
		// the whole run shares one deadline
		searchCtx := ctx
		if *timeout > 0 {
			var stop context.CancelFunc
			searchCtx, stop = context.WithTimeout(ctx, *timeout)
			defer stop()
		}
		opts := searchOptions(searchCtx)
		if mode == "route" {
			err = runRoute(g, opts)
		} else {
			err = runBatch(searchCtx, g, opts)
		}
	case "serve", "http":
		err = runServer(ctx, g, envDefault(*addr, "GRIDROUTE_ADDR", "localhost:8080"), *timeout)
	default:
		log.Fatalf("Unknown mode: %s. Use 'route' (default), 'batch' or 'serve'", mode)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", mode, err)
	}
}

// envDefault returns the flag value, or the environment variable, or def.
func envDefault(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func searchOptions(ctx context.Context) []astar.Option {
	opts := []astar.Option{
		astar.WithContext(ctx),
		astar.WithMaxExpansions(*maxExpansions),
	}
	if *workers > 0 {
		opts = append(opts, astar.WithWorkers(*workers))
	}
	if *debug {
		opts = append(opts, astar.WithObserver(logObserver{}))
	}
	return opts
}

func runRoute(g *lattice.Geometry, opts []astar.Option) error {
	start, err := parseCoordinate(*from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	goal, err := parseCoordinate(*to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	res, err := astar.FindPath(g, start, goal, opts...)
	if err != nil && !errors.Is(err, astar.ErrUnreachable) {
		return err
	}
	return writeJSON(newRouteResponse(res, err))
}

func runBatch(ctx context.Context, g *lattice.Geometry, opts []astar.Option) error {
	if *queriesPath == "" {
		return errors.New("batch mode needs -queries")
	}
	data, err := os.ReadFile(*queriesPath)
	if err != nil {
		return fmt.Errorf("failed to read queries: %w", err)
	}
	var reqs []routeRequest
	if err := json.Unmarshal(data, &reqs); err != nil {
		return fmt.Errorf("failed to parse queries: %w", err)
	}

	queries := make([]astar.Query, len(reqs))
	for i, r := range reqs {
		queries[i] = r.query()
	}

	started := time.Now()
	out, err := astar.FindPaths(ctx, g, queries, opts...)
	if err != nil {
		return err
	}
	log.Printf("Searched %d queries in %v", len(queries), time.Since(started))

	resp := make([]routeResponse, len(out))
	for i, o := range out {
		resp[i] = newRouteResponse(o.Result, o.Err)
	}
	return writeJSON(resp)
}

// runServer serves until ctx is done; searchTimeout, if > 0, bounds every search.
func runServer(ctx context.Context, g *lattice.Geometry, listen string, searchTimeout time.Duration) error {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      newServer(g, reg, searchTimeout, astar.WithObserver(rec), astar.WithMaxExpansions(*maxExpansions)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s", listen)
		log.Printf("Route API: POST http://%s/route", listen)
		log.Printf("Metrics:   http://%s/metrics", listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

// parseCoordinate reads "x,y".
func parseCoordinate(s string) (lattice.Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return lattice.Coordinate{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return lattice.Coordinate{}, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return lattice.Coordinate{}, fmt.Errorf("bad y: %w", err)
	}
	return lattice.Coordinate{X: x, Y: y}, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// logObserver prints every search outcome in debug mode.
type logObserver struct{}

func (logObserver) ObserveSearch(res astar.Result, err error) {
	log.Printf("search: found=%t cost=%g expanded=%d discovered=%d relaxed=%d err=%v",
		res.Found, res.Cost, res.Stats.Expanded, res.Stats.Discovered, res.Stats.Relaxed, err)
}
