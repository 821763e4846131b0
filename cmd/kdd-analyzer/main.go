package main

import (
	"NopeNet/internal/engine/classifier"
	"NopeNet/internal/engine/kdd"
	"NopeNet/internal/engine/recommender"
	"NopeNet/internal/reporter"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

func main() {
	filePath := flag.String("file", "", "Path to a KDD-formatted file, '-' reads stdin")
	outputFmt := flag.String("output", "table", "Output format: table, json, csv")
	outputFile := flag.String("out", "", "Write report to file instead of stdout")
	minFields := flag.Int("min-fields", kdd.MinFields, "Minimum number of fields on the first line")
	seed := flag.Uint64("seed", 0, "Seed for synthetic confidence scores, 0 seeds from the clock")
	sample := flag.Bool("sample", false, "Print a well-formed sample KDD record and exit")
	sampleData := flag.Bool("sample-data", false, "Print a multi-line sample KDD dataset and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  kdd-analyzer -file <kdd file> [options]\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kdd-analyzer -file kddcup.data_10_percent\n")
		fmt.Fprintf(os.Stderr, "  kdd-analyzer -file - -output json < records.csv\n")
		fmt.Fprintf(os.Stderr, "  kdd-analyzer -sample-data | kdd-analyzer -file -\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// 1. Sample output short-circuits everything else
	if *sample {
		fmt.Println(kdd.SampleRecord)
		return
	}
	if *sampleData {
		fmt.Println(kdd.SampleDataset)
		return
	}
	if *filePath == "" {
		flag.Usage()
		os.Exit(1)
	}

	input, err := readInput(*filePath)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	if err := kdd.Validate(input, *minFields); err != nil {
		fmt.Fprintf(os.Stderr, "[!] Invalid input: %v\n", err)
		fmt.Fprintln(os.Stderr, "[*] Provide KDD-formatted data, or try this sample record (kdd-analyzer -sample):")
		fmt.Fprintln(os.Stderr, kdd.SampleRecord)
		os.Exit(2)
	}

	var opts []classifier.Option
	if *seed != 0 {
		opts = append(opts, classifier.WithSeed(*seed))
	}
	batch := classifier.New(opts...).Classify(input)
	report := reporter.Report{Batch: batch, Recommendations: recommender.Recommend(batch.Results)}

	format := reporter.Format(strings.ToLower(*outputFmt))
	if *outputFile != "" {
		if err := reporter.WriteToFile(report, format, *outputFile); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Fprintf(os.Stderr, "[+] Report written to %s\n", *outputFile)
	} else if err := reporter.Write(report, format, os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}

	if batch.AttacksDetected > 0 {
		fmt.Fprintf(os.Stderr, "[!] ALERT: %d of %d records classified as attacks\n", batch.AttacksDetected, batch.TotalPackets)
	} else {
		fmt.Fprintln(os.Stderr, "[+] No attacks detected.")
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
