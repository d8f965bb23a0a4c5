package rosalind

import (
	"errors"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/avilaHugo/rosalind/config"
)

func TestCountNucleotides(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"rosalind sample",
			"AGCTTTTCATTCTGACTGCAACGGGCAATATGTCTCTGTGTGGATTAAAAAAAGAGTGTCTGATAGCAGC",
			"20 12 17 21",
		},
		{
			"trailing newline is ignored",
			"ACGT\n",
			"1 1 1 1",
		},
		{
			"missing bases count as zero",
			"AAA",
			"3 0 0 0",
		},
		{
			"empty",
			"",
			"0 0 0 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountNucleotides(tt.input); got != tt.want {
				t.Errorf("CountNucleotides() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTranscribeDNA(t *testing.T) {
	got := TranscribeDNA("GATGGAACTTGACTACGTAAATT")
	if want := "GAUGGAACUUGACUACGUAAAUU"; got != want {
		t.Errorf("TranscribeDNA() = %q, want %q", got, want)
	}
}

func TestReverseComplementDNA(t *testing.T) {
	got, err := ReverseComplementDNA("  AAAACCCGGT\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := "ACCGGGTTTT"; got != want {
		t.Errorf("ReverseComplementDNA() = %q, want %q", got, want)
	}

	if _, err := ReverseComplementDNA("ACGN"); !errors.Is(err, ErrUnknownBase) {
		t.Errorf("ReverseComplementDNA() error = %v, want %v", err, ErrUnknownBase)
	}
}

func TestRabbitPairs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"rosalind sample", "5 3", "19", nil},
		{"single month", "1 4", "1", nil},
		{"fibonacci", "10 1", "55", nil},
		{"trailing newline", "5 3\n", "19", nil},
		{"no litters", "6 0", "1", nil},
		{"missing k", "5", "", ErrMalformedInput},
		{"too many numbers", "5 3 1", "", ErrMalformedInput},
		{"zero months", "0 3", "", ErrMalformedInput},
		{"negative litter", "5 -3", "", ErrMalformedInput},
		{"not a number", "five 3", "", ErrMalformedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RabbitPairs(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RabbitPairs() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("RabbitPairs() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Rabbits should match a month by month simulation of every pair
func TestRabbitsSimulation(t *testing.T) {
	for k := uint64(0); k <= 5; k++ {
		for n := uint64(1); n <= 15; n++ {
			// ages of each pair in months
			pairs := []int{0}
			for month := uint64(2); month <= n; month++ {
				var next []int
				for _, age := range pairs {
					if age >= 1 {
						for i := uint64(0); i < k; i++ {
							next = append(next, 0)
						}
					}
					next = append(next, age+1)
				}
				pairs = next
			}

			if got := Rabbits(n, k); got.Cmp(big.NewInt(int64(len(pairs)))) != 0 {
				t.Errorf("Rabbits(%d, %d) = %v, want %d", n, k, got, len(pairs))
			}
		}
	}
}

func TestRabbitsLarge(t *testing.T) {
	// F(100) overflows a uint64 after month 93
	want, _ := new(big.Int).SetString("354224848179261915075", 10)
	if got := Rabbits(100, 1); got.Cmp(want) != 0 {
		t.Errorf("Rabbits(100, 1) = %v, want %v", got, want)
	}
}

func TestHighestGCContent(t *testing.T) {
	dat, err := os.ReadFile(sampleGC)
	if err != nil {
		t.Fatal(err)
	}

	got, err := HighestGCContent(string(dat), -1)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("HighestGCContent() = %q, want two lines", got)
	}
	if lines[0] != "Rosalind_0808" {
		t.Errorf("HighestGCContent() id = %q, want Rosalind_0808", lines[0])
	}
	gc, err := strconv.ParseFloat(lines[1], 64)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(gc-60.919540) > 1e-4 {
		t.Errorf("HighestGCContent() gc = %v, want ~60.919540", gc)
	}

	got, err = HighestGCContent(string(dat), 6)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Rosalind_0808\n60.919540"; got != want {
		t.Errorf("HighestGCContent() with precision 6 = %q, want %q", got, want)
	}

	if _, err := HighestGCContent("no records here", -1); !errors.Is(err, ErrEmptyRecord) {
		t.Errorf("HighestGCContent() error = %v, want %v", err, ErrEmptyRecord)
	}
	if _, err := HighestGCContent(">bad", -1); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("HighestGCContent() error = %v, want %v", err, ErrMalformedRecord)
	}
}

func TestLookupProblem(t *testing.T) {
	for _, id := range []string{"DNA", "rna", "Revc", "FIB", "gc"} {
		p, err := LookupProblem(id)
		if err != nil {
			t.Errorf("LookupProblem(%q) error = %v", id, err)
			continue
		}
		if !strings.EqualFold(p.ID, id) {
			t.Errorf("LookupProblem(%q) = %s", id, p.ID)
		}
	}

	if _, err := LookupProblem("PROT"); !errors.Is(err, ErrUnknownProblem) {
		t.Errorf("LookupProblem(PROT) error = %v, want %v", err, ErrUnknownProblem)
	}
}

func TestProblems(t *testing.T) {
	want := []string{"DNA", "RNA", "REVC", "FIB", "GC"}
	got := Problems()
	if len(got) != len(want) {
		t.Fatalf("Problems() = %v, want ids %v", got, want)
	}
	for i, p := range got {
		if p.ID != want[i] || p.Title == "" {
			t.Errorf("Problems()[%d] = %s %q, want %s", i, p.ID, p.Title, want[i])
		}
	}
}

func TestSolveFileErrors(t *testing.T) {
	conf := &config.Config{GCPrecision: -1}

	if _, err := SolveFile("DNA", "missing.txt", conf); !errors.Is(err, ErrIO) {
		t.Errorf("SolveFile() of a missing file error = %v, want %v", err, ErrIO)
	}
	if _, err := SolveFile("PROT", sampleGC, conf); !errors.Is(err, ErrUnknownProblem) {
		t.Errorf("SolveFile() of an unknown problem error = %v, want %v", err, ErrUnknownProblem)
	}
}
