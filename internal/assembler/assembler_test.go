package assembler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"casecorpus/internal/collector"
	"casecorpus/internal/logger"
	"casecorpus/internal/lookup"
	"casecorpus/internal/models"
)

// writeFiles creates each name with its content inside dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

// run executes the load, join, attach and assemble steps over a temp directory.
func run(t *testing.T, csv string, files map[string]string) (*models.Dataset, *Summary) {
	t.Helper()

	root := t.TempDir()
	casesDir := filepath.Join(root, "cases")

	if err := os.MkdirAll(casesDir, 0755); err != nil {
		t.Fatalf("Failed to create cases dir: %v", err)
	}

	writeFiles(t, root, map[string]string{"justice.csv": csv})
	writeFiles(t, casesDir, files)

	table, err := lookup.NewLoader().LoadFile(filepath.Join(root, "justice.csv"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	c := collector.NewCollector(casesDir, table, logger.Discard())
	set := collector.NewCaseSet()

	base, err := c.CollectBaseCases(set)
	if err != nil {
		t.Fatalf("CollectBaseCases failed: %v", err)
	}

	transcripts, err := c.AttachTranscripts(set)
	if err != nil {
		t.Fatalf("AttachTranscripts failed: %v", err)
	}

	return Assemble(set, models.Stats{TotalBaseCaseFiles: base, TotalTranscriptFiles: transcripts})
}

const oneBlock = `{"transcript":{"sections":[{"turns":[{"text_blocks":[{"text":"Hello Court"}]}]}]}}`

func TestAssemble_EndToEnd(t *testing.T) {
	csv := "href,name,term,first_party,second_party,facts,first_party_winner\n" +
		`/case/1,One v. Two,1999,One,Two,"<p>Hi there</p>` + "\n" + `",True` + "\n"

	dataset, summary := run(t, csv, map[string]string{
		"1.json":    `{"href":"/case/1"}`,
		"1-t1.json": oneBlock,
	})

	if len(dataset.Cases) != 1 {
		t.Fatalf("Expected 1 case, got %d", len(dataset.Cases))
	}

	got := dataset.Cases[0]
	want := models.OutputCase{
		CaseName:    "One v. Two",
		Href:        "/case/1",
		Year:        "1999",
		FirstParty:  "One",
		SecondParty: "Two",
		Decision:    true,
		Facts:       "Hi there",
		Transcript:  "Hello Court",
	}

	if got != want {
		t.Errorf("case = %+v, want %+v", got, want)
	}

	if dataset.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", dataset.Skipped)
	}

	if summary.FirstPartyWins != 1 || summary.SecondPartyWins != 0 {
		t.Errorf("wins = %d/%d, want 1/0", summary.FirstPartyWins, summary.SecondPartyWins)
	}
}

func TestAssemble_Stats(t *testing.T) {
	csv := "href,first_party_winner\n/case/1,yes\n/case/2,no\n/case/3,\n"

	dataset, summary := run(t, csv, map[string]string{
		"a.json":         `{"href":"/case/1"}`,
		"b.json":         `{"href":"/case/2"}`,
		"c.json":         `{"href":"/case/3"}`,
		"d.json":         `{"href":"/case/4"}`,
		"e.json":         `{"href":"/case/1"}`,
		"a-t1.json":      oneBlock,
		"a_T2.json":      oneBlock,
		"orphan-t1.json": oneBlock,
	})

	if dataset.Stats.TotalBaseCaseFiles != 5 {
		t.Errorf("TotalBaseCaseFiles = %d, want 5", dataset.Stats.TotalBaseCaseFiles)
	}

	if dataset.Stats.TotalTranscriptFiles != 3 {
		t.Errorf("TotalTranscriptFiles = %d, want 3", dataset.Stats.TotalTranscriptFiles)
	}

	if len(dataset.Cases) != 1 {
		t.Fatalf("Expected 1 case, got %d", len(dataset.Cases))
	}

	if dataset.Cases[0].Transcript != "Hello Court Hello Court" {
		t.Errorf("Transcript = %q, want both parts", dataset.Cases[0].Transcript)
	}

	if dataset.Skipped != 4 {
		t.Errorf("Skipped = %d, want 4", dataset.Skipped)
	}

	wantReasons := map[string]int{
		string(models.SkipNoCSVMatch):       1,
		string(models.SkipWinnerMissingCSV): 1,
		ReasonNoTranscript:                  2,
	}

	for reason, n := range wantReasons {
		if summary.SkipReasons[reason] != n {
			t.Errorf("SkipReasons[%s] = %d, want %d", reason, summary.SkipReasons[reason], n)
		}
	}
}

func TestAssemble_SortedOrder(t *testing.T) {
	set := collector.NewCaseSet()

	for _, name := range []string{"c.json", "a.json", "b.json"} {
		c := &models.CaseRecord{Href: "/" + name}
		c.AttachTranscript("text")
		set.Put(name, models.Joined(c))
	}

	dataset, _ := Assemble(set, models.Stats{})

	var hrefs []string
	for _, c := range dataset.Cases {
		hrefs = append(hrefs, c.Href)
	}

	if strings.Join(hrefs, ",") != "/a.json,/b.json,/c.json" {
		t.Errorf("order = %v, want sorted by file name", hrefs)
	}
}

func TestEncode(t *testing.T) {
	dataset := &models.Dataset{
		Cases: []models.OutputCase{{
			CaseName: "Société v. <Doe> & Co",
			Href:     "/case/1",
			Decision: false,
		}},
		Skipped: 2,
		Stats:   models.Stats{TotalBaseCaseFiles: 3, TotalTranscriptFiles: 1},
	}

	data, err := Encode(dataset, 2)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	out := string(data)

	if !strings.Contains(out, `"case_name": "Société v. <Doe> & Co"`) {
		t.Errorf("text should be written literally:\n%s", out)
	}

	if strings.HasSuffix(out, "\n") {
		t.Error("output should not end with a newline")
	}

	if !strings.HasPrefix(out, "{\n  \"cases\": [\n    {\n      \"case_name\"") {
		t.Errorf("unexpected indentation:\n%s", out)
	}

	var decoded models.Dataset
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Stats.TotalBaseCaseFiles != 3 || decoded.Skipped != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestEncode_EmptyCases(t *testing.T) {
	dataset, _ := Assemble(collector.NewCaseSet(), models.Stats{})

	data, err := Encode(dataset, 2)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := `{
  "cases": [],
  "skipped": 0,
  "stats": {
    "total_base_case_files": 0,
    "total_transcript_files": 0
  }
}`

	if string(data) != want {
		t.Errorf("Encode = %s, want %s", data, want)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "cases.json")

	written, err := WriteFile(path, &models.Dataset{Cases: []models.OutputCase{}}, 0)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}

	if string(data) != string(written) {
		t.Errorf("file content %q differs from returned bytes %q", data, written)
	}

	if strings.Contains(string(data), "\n") {
		t.Errorf("indent 0 should give compact output, got %q", data)
	}
}
