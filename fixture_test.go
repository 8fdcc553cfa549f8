package coha_filter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	testLexicon = "wID\twordCS\tword\tlemma\tPoS\n" +
		"----\t----\t----\t----\t----\n" +
		"\n" +
		"1\tHe\the\the\tpphs1\n" +
		"2\tis\tis\tbe\tvbz\n" +
		"3\twas\twas\tbe\tvbdz\n" +
		"5\tgoing\tgoing\tgo\tvvg\n" +
		"6\tleave\tleave\tleave\tvvi\n" +
		"9\tto\tto\tto\tprep\n" +
		"11\thome\thome\thome\tnn1\n"

	testSources = "textID\t # words \tgenre\tyear\ttitle\tauthor\tPublication information\t" +
		"Library of Congress classification (NF)\tFIXED\n" +
		"100\t6\tFIC\t1950\tA Title\tSome Author\tpub\t\t\n" +
		"200\t4\tNEWS\t1961\tHeadline\tReporter\tpub\t\t\n" +
		"300\t3\tNF\t1962\tEssay\tScholar\tpub\tPN\t\n"

	// text 100: He is going to leave home
	testCorpus1950s = "100\t10\t1\n" +
		"100\t11\t2\n" +
		"100\t12\t5\n" +
		"100\t13\t9\n" +
		"100\t14\t6\n" +
		"100\t15\t11\n"

	// text 200: going to going to, 999 is missing from the sources, 300: He was home
	testCorpus1960s = "200\t1\t5\n" +
		"200\t2\t9\n" +
		"200\t3\t5\n" +
		"200\t4\t9\n" +
		"999\t1\t5\n" +
		"999\t2\t9\n" +
		"300\t1\t1\n" +
		"300\t2\t3\n" +
		"300\t3\t11\n"
)

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// buildTestCorpus lay out a small COHA tree: shared/ tables and two decade files
func buildTestCorpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, SourcesFile), testSources)
	writeTestFile(t, filepath.Join(root, LexiconFile), testLexicon)
	writeTestFile(t, filepath.Join(root, CorpusDir, "1950s", "coha_db_1950s.txt"), testCorpus1950s)
	writeTestFile(t, filepath.Join(root, CorpusDir, "1960s", "coha_db_1960s.txt"), testCorpus1960s)
	return root
}

func mustParseLexicon(t *testing.T, content string) *Lexicon {
	t.Helper()
	lexicon, err := parseLexicon("lexicon.txt", strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	return lexicon
}

// readCSV all rows of a result file, header included
func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}
