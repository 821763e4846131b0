package reporter

import (
	"NopeNet/internal/model"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Format specifies the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// Report is everything produced for one detection run.
type Report struct {
	Batch           *model.DetectionBatch  `json:"batch"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// Write outputs the report in the requested format.
func Write(r Report, format Format, w io.Writer) error {
	switch format {
	case FormatTable:
		return writeTable(r, w)
	case FormatJSON:
		return writeJSON(r, w)
	case FormatCSV:
		return writeCSV(r, w)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteToFile writes the report to a file instead of stdout.
func WriteToFile(r Report, format Format, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	return Write(r, format, f)
}

func writeTable(r Report, w io.Writer) error {
	b := r.Batch

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  NOPENET - Detection Results")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "  Batch:            %s\n", b.ID)
	fmt.Fprintf(w, "  Total packets:    %d\n", b.TotalPackets)
	fmt.Fprintf(w, "  Attacks detected: %d\n", b.AttacksDetected)
	fmt.Fprintf(w, "  Processing time:  %s\n", b.ProcessingTime)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if b.TotalPackets > 0 {
		fmt.Fprintln(w, "\n  ATTACK DISTRIBUTION")
		fmt.Fprintln(w, strings.Repeat("-", 40))
		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		for _, t := range append(model.AttackTypes(), model.AttackNormal) {
			if n := b.ByAttackType[t]; n > 0 {
				fmt.Fprintf(tw, "  %s\t%d\t%.1f%%\n", t, n, 100*float64(n)/float64(b.TotalPackets))
			}
		}
		tw.Flush()

		fmt.Fprintln(w, "\n  DETECTIONS")
		fmt.Fprintln(w, strings.Repeat("-", 60))
		tw = tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  TIMESTAMP\tPROTOCOL\tFLAG\tATTACK TYPE\tCONFIDENCE")
		for _, res := range b.Results {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%.0f%%\n", res.Timestamp, res.Protocol, res.Flag, res.AttackType, res.Confidence*100)
		}
		tw.Flush()
	}

	fmt.Fprintln(w, "\n  RECOMMENDATIONS")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, rec := range r.Recommendations {
		fmt.Fprintf(w, "  [%s] %s\n", rec.AttackType, rec.Text)
	}
	fmt.Fprintln(w)
	return nil
}

func writeJSON(r Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeCSV(r Report, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "protocol", "flag", "attack_type", "confidence", "raw_label"}); err != nil {
		return err
	}
	for _, res := range r.Batch.Results {
		row := []string{
			res.Timestamp,
			res.Protocol,
			res.Flag,
			string(res.AttackType),
			strconv.FormatFloat(res.Confidence, 'f', 4, 64),
			res.RawLabel,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
