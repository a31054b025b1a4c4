package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/gcbaptista/go-fuzzy-search/api"
	"github.com/gcbaptista/go-fuzzy-search/internal/classroom"
	"github.com/gcbaptista/go-fuzzy-search/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help        = flag.Bool("help", false, "Show help message")
		version     = flag.Bool("version", false, "Show version information")
		port        = flag.String("port", "8080", "Port to run the server on")
		maxBodySize = flag.Int64("max-body-size", 32<<20, "Maximum request body size in bytes")
		rateLimit   = flag.Float64("rate-limit", 0, "Maximum requests per second (0 disables limiting)")
		rateBurst   = flag.Int("rate-burst", 20, "Burst size allowed above the rate limit")
		records     = flag.String("records", "", "Optional Classroom JSON export to load at startup")
		recordsType = flag.String("type", "courses", "Entity type of --records: courses, assignments or announcements")
		threshold   = flag.Float64("threshold", 0, "Threshold of the preloaded index (0 uses the default)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Go Fuzzy Search - approximate text matching and ranking over JSON records\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                                      # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000 --rate-limit 50          # Limit to 50 requests per second\n", os.Args[0])
		fmt.Printf("  %s --records courses.json --type courses # Preload a courses index\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Go Fuzzy Search v1.0.0\n")
		fmt.Printf("Bitap prefilter with bounded edit distance scoring\n")
		return
	}

	searchEngine := engine.NewEngine()

	if *records != "" {
		if err := preload(searchEngine, *records, *recordsType, *threshold); err != nil {
			log.Fatalf("Failed to preload records: %v", err)
		}
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(api.CORSMiddleware())
	router.Use(api.RequestSizeLimitMiddleware(*maxBodySize))
	if *rateLimit > 0 {
		log.Printf("Rate limiting to %.1f requests/s (burst %d)", *rateLimit, *rateBurst)
		router.Use(api.RateLimitMiddleware(rate.Limit(*rateLimit), *rateBurst))
	}

	// Setup API routes
	api.SetupRoutes(router, searchEngine)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// preload creates an index named after the entity type from a Classroom export.
func preload(eng *engine.Engine, path, kindName string, threshold float64) error {
	kind, err := classroom.ParseKind(kindName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	records, err := classroom.LoadRecords(data, kind, "")
	if err != nil {
		return err
	}

	return eng.CreateIndex(classroom.Settings(kind, threshold), records)
}
