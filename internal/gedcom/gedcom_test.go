package gedcom

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"gedcard/internal/config"
	"gedcard/internal/family"
	"gedcard/internal/fieldrec"
)

const focalURL = "https://www.familysearch.org/tree/person/details/ABCD-123"

var viewed = time.Date(2024, 6, 28, 15, 4, 0, 0, time.UTC)

func testEncoder() *Encoder {
	defaults := config.Default()
	return &Encoder{
		Source: defaults.Source,
		Submitter: config.Submitter{
			Name:    "Tester",
			Address: []string{"1 Main St", "Town"},
			WWW:     "example.org",
		},
	}
}

func smithSnapshot() *fieldrec.Snapshot {
	return &fieldrec.Snapshot{
		Source: fieldrec.Source{Title: "page", URL: focalURL, Viewed: viewed},
		Vitals: &fieldrec.PersonFields{FullName: "John James Smith", Gender: "Male"},
		Households: []fieldrec.Household{
			{
				Husband:  &fieldrec.PersonFields{PID: "ABCD-123", FullName: "John James Smith", Lifespan: "1850–1920", Gender: "Male"},
				Wife:     &fieldrec.PersonFields{PID: "EFGH-456", FullName: "Jane Ann Doe", Gender: "Female"},
				Marriage: &fieldrec.EventFields{Date: "about 1875"},
			},
		},
	}
}

func TestEncodeEndToEnd(t *testing.T) {
	g := family.Build(smithSnapshot(), nil)
	got, err := testEncoder().Encode(g, "")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := strings.Join([]string{
		"0 HEAD",
		"1 SOUR FamilySearch",
		"2 CORP FamilySearch International",
		"1 DATE 28 Jun 2024",
		"1 SUBM @SUB1@",
		"1 FILE John James Smith (1850–1920, ABCD-123).ged",
		"1 GEDC",
		"2 VERS 5.5.1",
		"2 FORM LINEAGE-LINKED",
		"1 CHAR UTF-8",
		"0 @I1@ INDI",
		"1 NAME John James /Smith/",
		"1 SEX M",
		"1 BIRT",
		"2 DATE 1850",
		"1 DEAT",
		"2 DATE 1920",
		"1 IDNO ABCD-123",
		"2 TYPE FamilySearch Person ID",
		"1 REFN ABCD-123",
		"1 FAMS @F1@",
		"1 SOUR @S1@",
		"0 @I2@ INDI",
		"1 NAME Jane Ann /Doe/",
		"1 SEX F",
		"1 IDNO EFGH-456",
		"2 TYPE FamilySearch Person ID",
		"1 REFN EFGH-456",
		"1 FAMS @F1@",
		"1 SOUR @S1@",
		"0 @SUB1@ SUBM",
		"1 NAME Tester",
		"1 ADDR 1 Main St",
		"2 CONT Town",
		"1 WWW example.org",
		"0 @F1@ FAM",
		"1 HUSB @I1@",
		"1 WIFE @I2@",
		"1 MARR",
		"2 DATE ABT 1875",
		"0 @S1@ SOUR",
		"1 TYPE Web Site",
		"1 TITL John James Smith (1850–1920, ABCD-123)",
		"1 URL " + focalURL,
		"1 AUTH FamilySearch",
		"1 DATV 28 Jun 2024",
		"0 TRLR",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("unexpected document\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	enc := testEncoder()
	first, err := enc.Encode(family.Build(extendedSnapshot(), nil), "report\nline two")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	second, err := enc.Encode(family.Build(extendedSnapshot(), nil), "report\nline two")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if first != second {
		t.Fatal("expected identical output for identical graphs")
	}
}

func extendedSnapshot() *fieldrec.Snapshot {
	snap := smithSnapshot()
	child := &fieldrec.PersonFields{PID: "KID-1", FullName: "Mary Smith", Gender: "Female", Lifespan: "1877–1950"}
	snap.Households[0].Children = []*fieldrec.PersonFields{
		child,
		{PID: "KID-2", FullName: "Tom Smith", Gender: "Male", Death: &fieldrec.EventFields{Date: "Living"}},
		{FullName: "Unknown Child"},
	}
	snap.Households = append(snap.Households,
		fieldrec.Household{
			Husband:  &fieldrec.PersonFields{PID: "OLD-1", FullName: "Adam Smith", Gender: "Male"},
			Wife:     &fieldrec.PersonFields{PID: "OLD-2", FullName: "Eve Brown", Gender: "Female"},
			Children: []*fieldrec.PersonFields{{PID: "ABCD-123", FullName: "John James Smith"}},
		},
		fieldrec.Household{
			Wife:     &fieldrec.PersonFields{PID: "KID-1", FullName: "Mary Smith"},
			Children: []*fieldrec.PersonFields{{PID: "GRAND-1", FullName: "Pat Smith"}},
		},
		snap.Households[0],
	)
	return snap
}

var pointerPattern = regexp.MustCompile(`^\d+ (FAMS|FAMC|HUSB|WIFE|CHIL|SUBM|SOUR) (@[^@]+@)$`)

func TestEncodeHasNoDanglingReferences(t *testing.T) {
	doc, err := testEncoder().Encode(family.Build(extendedSnapshot(), nil), "")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(doc, "\n"), "\n")
	defined := make(map[string]bool)
	for _, l := range lines {
		if fields := strings.Fields(l); len(fields) == 3 && fields[0] == "0" {
			if defined[fields[1]] {
				t.Fatalf("record %s defined twice", fields[1])
			}
			defined[fields[1]] = true
		}
	}
	refs := 0
	for _, l := range lines {
		match := pointerPattern.FindStringSubmatch(l)
		if match == nil {
			continue
		}
		refs++
		if !defined[match[2]] {
			t.Fatalf("line %q points at undefined record", l)
		}
	}
	if refs == 0 {
		t.Fatal("expected pointer lines in document")
	}
	if !defined["@F3@"] || defined["@F4@"] {
		t.Fatalf("expected exactly three families, defined=%v", defined)
	}
	if strings.Count(doc, "1 CHIL @I3@\n") != 1 {
		t.Fatalf("expected a single CHIL line for the first child:\n%s", doc)
	}
}

func TestEncodeBackReferencesFollowFamilies(t *testing.T) {
	doc, err := testEncoder().Encode(family.Build(extendedSnapshot(), nil), "")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	focal := recordLines(doc, "@I1@")
	want := []string{"1 FAMS @F1@", "1 FAMC @F2@", "1 SOUR @S1@"}
	if len(focal) < len(want) {
		t.Fatalf("focal record too short: %v", focal)
	}
	tail := focal[len(focal)-len(want):]
	for i := range want {
		if tail[i] != want[i] {
			t.Fatalf("unexpected focal record tail %v, want %v", tail, want)
		}
	}
	mary := strings.Join(recordLines(doc, "@I3@"), "\n")
	for _, fragment := range []string{"1 BIRT\n2 DATE 1877", "1 DEAT\n2 DATE 1950", "1 FAMC @F1@", "1 FAMS @F3@"} {
		if !strings.Contains(mary, fragment) {
			t.Fatalf("expected %q in record:\n%s", fragment, mary)
		}
	}
	tom := strings.Join(recordLines(doc, "@I4@"), "\n")
	if strings.Contains(tom, "DEAT") {
		t.Fatalf("expected living person to have no death record:\n%s", tom)
	}
}

func recordLines(doc, xref string) []string {
	var out []string
	inside := false
	for _, l := range strings.Split(doc, "\n") {
		if strings.HasPrefix(l, "0 ") {
			inside = strings.HasPrefix(l, "0 "+xref+" ")
		}
		if inside {
			out = append(out, l)
		}
	}
	return out
}

func TestEncodeFocalNotFound(t *testing.T) {
	snap := smithSnapshot()
	snap.Source.URL = "https://example.org/no-person"
	_, err := testEncoder().Encode(family.Build(snap, nil), "")
	if !errors.Is(err, ErrFocalNotFound) {
		t.Fatalf("expected ErrFocalNotFound, got %v", err)
	}
	if got := Diagnostic(err); got != "No person id found for https://example.org/no-person" {
		t.Fatalf("Diagnostic() = %q", got)
	}
	if _, err := testEncoder().Encode(nil, ""); !errors.Is(err, ErrFocalNotFound) {
		t.Fatalf("expected ErrFocalNotFound for nil graph, got %v", err)
	}
}

func TestDiagnostic(t *testing.T) {
	err := fmt.Errorf("encode page: %w", &FocalError{FocalID: "ABCD-123", URL: focalURL})
	if got := Diagnostic(err); got != "Person ABCD-123 was not found on "+focalURL {
		t.Fatalf("Diagnostic() = %q", got)
	}
	if got := Diagnostic(errors.New("boom")); got != "boom" {
		t.Fatalf("Diagnostic() = %q", got)
	}
	if Diagnostic(nil) != "" {
		t.Fatal("expected empty diagnostic for nil error")
	}
}

func TestEncodeRecordedEventsWinOverLifespan(t *testing.T) {
	snap := smithSnapshot()
	snap.Vitals.Birth = &fieldrec.EventFields{Date: "3 March 1850", Place: "York @ home"}
	doc, err := testEncoder().Encode(family.Build(snap, nil), "")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "1 BIRT\n2 DATE 3 Mar 1850\n2 PLAC York @@ home\n1 DEAT\n2 DATE 1920\n1 IDNO"
	if !strings.Contains(doc, want) {
		t.Fatalf("expected events %q in:\n%s", want, doc)
	}
}

func TestEncodeEmbedsReportText(t *testing.T) {
	report := "Title\n\nName: John"
	doc, err := testEncoder().Encode(family.Build(smithSnapshot(), nil), report)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "1 DATV 28 Jun 2024\n1 TEXT Title\n2 CONT\n2 CONT Name: John\n0 TRLR\n"
	if !strings.HasSuffix(doc, want) {
		t.Fatalf("expected document to end with %q, got:\n%s", want, doc)
	}
}

func TestFileName(t *testing.T) {
	g := family.Build(smithSnapshot(), nil)
	if got := FileName(g); got != "John James Smith (1850–1920, ABCD-123).ged" {
		t.Fatalf("FileName() = %q", got)
	}
}
