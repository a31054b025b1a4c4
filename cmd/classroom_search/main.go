package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/internal/classroom"
)

func main() {
	var (
		help      = flag.Bool("help", false, "Show help message")
		records   = flag.String("records", "", "JSON file with exported Classroom data (\"-\" reads stdin)")
		kindName  = flag.String("type", "courses", "Entity type to search: courses, assignments or announcements")
		query     = flag.String("query", "", "Query to run; prompts interactively when empty")
		threshold = flag.Float64("threshold", config.DefaultThreshold, "Maximum accepted score in (0,1]")
		courseID  = flag.String("course", "", "Only search assignments or announcements of this course ID")
	)

	flag.Parse()

	if *help || *records == "" {
		fmt.Printf("Classroom Search - fuzzy search over exported Google Classroom data\n\n")
		fmt.Printf("Usage: %s --records <file> [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s --records courses.json --query biology\n", os.Args[0])
		fmt.Printf("  %s --records coursework.json --type assignments --course 101\n", os.Args[0])
		if *records == "" && !*help {
			os.Exit(2)
		}
		return
	}

	kind, err := classroom.ParseKind(*kindName)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	data, err := readRecords(*records)
	if err != nil {
		log.Fatalf("Failed to read records: %v", err)
	}

	searcher, err := classroom.NewSearcher(kind, *threshold, data, *courseID)
	if err != nil {
		log.Fatalf("Failed to build %s index: %v", kind, err)
	}

	if *query != "" {
		if err := searcher.Search(os.Stdout, *query); err != nil {
			log.Fatalf("Failed to write results: %v", err)
		}
		return
	}

	if *records == "-" {
		log.Fatalf("Interactive mode needs --records to be a file, stdin already held the records")
	}
	if err := searcher.Interactive(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func readRecords(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
