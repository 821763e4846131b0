package main

import (
	"NopeNet/internal/engine/classifier"
	"NopeNet/internal/engine/kdd"
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"
)

var (
	protocols = []string{"tcp", "udp", "icmp"}
	services  = []string{"http", "private", "smtp", "ftp_data", "domain_u", "ecr_i", "other"}
	flags     = []string{"SF", "S0", "REJ", "RSTR", "SH", "S1"}
)

func main() {
	outputFile := flag.String("o", "sample.kdd", "Output file path")
	recordCount := flag.Int("c", 1000, "Number of records to generate")
	attackRatio := flag.Float64("attack-ratio", 0.3, "Fraction of records labelled with a known attack")
	seed := flag.Uint64("seed", 1, "Random seed")
	flag.Parse()

	f, err := os.Create(*outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	rng := rand.New(rand.NewPCG(*seed, *seed))
	var labels []string
	for _, rule := range classifier.DefaultRules() {
		labels = append(labels, rule.Keywords...)
	}

	log.Printf("Generating %d records into %s...", *recordCount, *outputFile)

	w := bufio.NewWriter(f)
	for i := 0; i < *recordCount; i++ {
		if (i+1)%100000 == 0 {
			log.Printf("Generated %d records...", i+1)
		}

		label := "normal"
		if rng.Float64() < *attackRatio {
			label = labels[rng.IntN(len(labels))]
		}
		fmt.Fprintln(w, record(rng, label))
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("Failed to write records: %v", err)
	}

	log.Printf("Successfully generated %d records into %s", *recordCount, *outputFile)
}

// record builds a line with the KDD field count: duration, protocol_type,
// service, flag, byte counts, then numeric features, then the label.
func record(rng *rand.Rand, label string) string {
	fields := make([]string, 0, kdd.MinFields+1)
	fields = append(fields,
		fmt.Sprint(rng.IntN(60)),
		protocols[rng.IntN(len(protocols))],
		services[rng.IntN(len(services))],
		flags[rng.IntN(len(flags))],
		fmt.Sprint(rng.IntN(5000)),
		fmt.Sprint(rng.IntN(50000)),
	)
	for len(fields) < kdd.MinFields {
		fields = append(fields, fmt.Sprintf("%.2f", rng.Float64()))
	}
	fields = append(fields, label+".")
	return strings.Join(fields, ",")
}
