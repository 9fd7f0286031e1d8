// bench - joto corpus throughput runner
//
// Parses every spelling in the cross-spelling corpus, checks the
// parses agree with the recorded base-unit values and that base-unit
// round trips are exact, then times parsing and display formatting
// per spelling.
//
// Usage:
//
//	bench [corpus-file] [iterations]
//
// The corpus may be zstd-compressed (.zst). Without arguments the
// runner looks for joto/testdata/corpus.txt near the working
// directory.
//
// Output: CSV and markdown summary
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"

	"github.com/xorgy/joto/joto"
)

const defaultIterations = 200_000

type CaseResult struct {
	Domain   string
	Spelling string
	Value    int64
	ParseNs  float64
	Display  string
	FormatNs float64
}

type corpusLine struct {
	Domain    string
	Value     int64
	Spellings []string
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	corpusPath := findCorpus()
	iters := defaultIterations
	if len(os.Args) > 1 {
		corpusPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil || n <= 0 {
			logrus.Fatalf("bad iteration count %q", os.Args[2])
		}
		iters = n
	}
	if corpusPath == "" {
		logrus.Fatal("cannot find corpus file; pass a path")
	}

	lines, err := loadCorpus(corpusPath)
	if err != nil {
		logrus.WithError(err).Fatal("cannot load corpus")
	}
	logrus.WithFields(logrus.Fields{"corpus": corpusPath, "lines": len(lines)}).Info("corpus loaded")

	var results []CaseResult
	failures := 0
	for _, line := range lines {
		parse := parser(line.Domain)
		render := display(line.Domain)
		for _, spelling := range line.Spellings {
			v, perr := parse(spelling)
			if perr != nil {
				logrus.WithFields(logrus.Fields{"spelling": spelling, "err": perr}).Error("corpus parse failed")
				failures++
				continue
			}
			if v != line.Value {
				logrus.WithFields(logrus.Fields{
					"spelling": spelling,
					"expected": line.Value,
					"got":      v,
				}).Error("corpus value mismatch")
				failures++
				continue
			}
			if !verifyBaseRoundTrip(line.Domain, v) {
				logrus.WithFields(logrus.Fields{"domain": line.Domain, "value": v}).
					Error("base-unit round trip not exact")
				failures++
				continue
			}

			parseNs := timeIt(iters, func() { _, _ = parse(spelling) })
			shown := render(v)
			formatNs := timeIt(iters, func() { _ = render(v) })

			results = append(results, CaseResult{
				Domain:   line.Domain,
				Spelling: spelling,
				Value:    line.Value,
				ParseNs:  parseNs,
				Display:  shown.Text,
				FormatNs: formatNs,
			})
		}
	}

	csvPath := "bench_results.csv"
	if csvFile, err := os.Create(csvPath); err == nil {
		writeCSV(csvFile, results)
		csvFile.Close()
		logrus.WithField("file", csvPath).Info("CSV written")
	}

	mdPath := "BENCH.md"
	if mdFile, err := os.Create(mdPath); err == nil {
		writeMarkdown(mdFile, results, iters, corpusPath)
		mdFile.Close()
		logrus.WithField("file", mdPath).Info("markdown written")
	}

	// Summary to stdout
	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Spellings: %d (%d failures)\n", len(results), failures)
	for _, d := range []string{"L", "M", "T"} {
		p, f, n := domainAverages(results, d)
		if n == 0 {
			continue
		}
		fmt.Printf("%-13s %3d spellings, parse %.0f ns/op, format %.0f ns/op\n",
			domainName(d)+":", n, p, f)
	}
	if failures > 0 {
		os.Exit(1)
	}
}

// findCorpus tries relative paths from likely working directories.
func findCorpus() string {
	paths := []string{
		filepath.Join("joto", "testdata", "corpus.txt"),
		filepath.Join("testdata", "corpus.txt"),
		filepath.Join("..", "..", "joto", "testdata", "corpus.txt"),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// loadCorpus reads and splits the corpus file, transparently
// decompressing zstd archives.
func loadCorpus(path string) ([]corpusLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var lines []corpusLine
	for i, text := range strings.Split(string(data), "\n") {
		text = strings.TrimPrefix(text, "\uFEFF")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "|")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: malformed corpus line %q", i+1, text)
		}
		if domainName(fields[0]) == "" {
			return nil, fmt.Errorf("line %d: unknown domain %q", i+1, fields[0])
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad value %q", i+1, fields[1])
		}
		lines = append(lines, corpusLine{Domain: fields[0], Value: v, Spellings: fields[2:]})
	}
	return lines, nil
}

func domainName(d string) string {
	switch d {
	case "L":
		return "length"
	case "M":
		return "mass"
	case "T":
		return "temperature"
	}
	return ""
}

func parser(domain string) func(string) (int64, *joto.ParseError) {
	switch domain {
	case "L":
		return joto.ParseLengthDiagnostic
	case "M":
		return joto.ParseMassDiagnostic
	default:
		return joto.ParseTemperatureDiagnostic
	}
}

// display renders a value the way an interactive client would: mixed
// feet and inches, mixed pounds and ounces, plain celsius.
func display(domain string) func(int64) joto.FormatResult {
	mixed := joto.DefaultFormatOptions()
	mixed.MixedUnits = true
	plain := joto.DefaultFormatOptions()
	switch domain {
	case "L":
		return func(q int64) joto.FormatResult { return joto.FormatLength(q, joto.Foot, mixed) }
	case "M":
		return func(q int64) joto.FormatResult { return joto.FormatMass(q, joto.Pound, mixed) }
	default:
		return func(q int64) joto.FormatResult { return joto.FormatTemperature(q, joto.Celsius, plain) }
	}
}

// verifyBaseRoundTrip formats v in the domain's base unit and parses
// it back. Base units resolve every quantity, so the trip must be
// exact and equal.
func verifyBaseRoundTrip(domain string, v int64) bool {
	var res joto.FormatResult
	switch domain {
	case "L":
		res = joto.FormatLength(v, joto.Nanometer, joto.ASCIIFormatOptions())
	case "M":
		res = joto.FormatMass(v, joto.Nanogram, joto.ASCIIFormatOptions())
	default:
		res = joto.FormatTemperature(v, joto.Millirankine, joto.ASCIIFormatOptions())
	}
	if !res.Exact {
		return false
	}
	back, err := parser(domain)(res.Text)
	return err == nil && back == v
}

func timeIt(iters int, f func()) float64 {
	start := time.Now()
	for i := 0; i < iters; i++ {
		f()
	}
	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func domainAverages(results []CaseResult, domain string) (parseNs, formatNs float64, n int) {
	for _, r := range results {
		if r.Domain != domain {
			continue
		}
		parseNs += r.ParseNs
		formatNs += r.FormatNs
		n++
	}
	if n > 0 {
		parseNs /= float64(n)
		formatNs /= float64(n)
	}
	return parseNs, formatNs, n
}

func writeCSV(w io.Writer, results []CaseResult) {
	fmt.Fprintln(w, "domain,spelling,value,parse_ns,display,format_ns")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%q,%d,%.1f,%q,%.1f\n",
			domainName(r.Domain), r.Spelling, r.Value, r.ParseNs, r.Display, r.FormatNs)
	}
}

func writeMarkdown(w io.Writer, results []CaseResult, iters int, corpusPath string) {
	fmt.Fprintf(w, "# joto Corpus Throughput\n\n")
	fmt.Fprintf(w, "**Corpus:** %s (%d spellings)  \n", corpusPath, len(results))
	fmt.Fprintf(w, "**Iterations:** %d per spelling  \n\n", iters)

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Domain | Spellings | Parse ns/op | Format ns/op |\n")
	fmt.Fprintf(w, "|--------|-----------|-------------|--------------|\n")
	for _, d := range []string{"L", "M", "T"} {
		p, f, n := domainAverages(results, d)
		if n == 0 {
			continue
		}
		fmt.Fprintf(w, "| %s | %d | %.0f | %.0f |\n", domainName(d), n, p, f)
	}

	// Slowest parses tell you which notations cost the most
	sorted := make([]CaseResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ParseNs > sorted[j].ParseNs
	})

	fmt.Fprintf(w, "\n## Slowest 5 Parses\n\n")
	fmt.Fprintf(w, "| Spelling | Parse ns/op | Display |\n")
	fmt.Fprintf(w, "|----------|-------------|--------|\n")
	for i := 0; i < min(5, len(sorted)); i++ {
		r := sorted[i]
		fmt.Fprintf(w, "| `%s` | %.0f | `%s` |\n", r.Spelling, r.ParseNs, r.Display)
	}

	fmt.Fprintf(w, "\n## Detailed Results\n\n")
	fmt.Fprintf(w, "| Domain | Spelling | Value | Parse ns/op | Display | Format ns/op |\n")
	fmt.Fprintf(w, "|--------|----------|-------|-------------|---------|--------------|\n")
	for _, r := range results {
		fmt.Fprintf(w, "| %s | `%s` | %d | %.0f | `%s` | %.0f |\n",
			domainName(r.Domain), r.Spelling, r.Value, r.ParseNs, r.Display, r.FormatNs)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
