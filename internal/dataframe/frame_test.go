package dataframe

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const surveyCSV = `Year,Industry_code,Industry_name,Units,Value
2024,99999,All industries,Dollars (millions),979594
2024,AA,"Agriculture, Forestry and Fishing",Dollars (millions),54633
2023,AA11,Agriculture,Dollars (millions),30785
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestFromCSV(t *testing.T) {
	frame, err := FromCSV(writeTempCSV(t, surveyCSV), Options{})
	if err != nil {
		t.Fatalf("FromCSV() error = %v", err)
	}

	if frame.Columns() != 5 {
		t.Errorf("Columns() = %d, want 5", frame.Columns())
	}
	if frame.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", frame.Len())
	}
	if got := frame.Records[1][2]; got != "Agriculture, Forestry and Fishing" {
		t.Errorf("quoted field = %q", got)
	}
}

func TestFromReaderHeaderOnly(t *testing.T) {
	frame, err := FromReader(strings.NewReader("a,b,c\n"), Options{})
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if frame.Len() != 0 {
		t.Errorf("Len() = %d, want 0", frame.Len())
	}
}

func TestFromReaderStripsBOM(t *testing.T) {
	frame, err := FromReader(strings.NewReader("\ufeffYear,Value\n2024,1\n"), Options{})
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if frame.Header[0] != "Year" {
		t.Errorf("Header[0] = %q, want %q", frame.Header[0], "Year")
	}
}

func TestFromReaderDelimiter(t *testing.T) {
	frame, err := FromReader(strings.NewReader("a;b\n1;2\n"), Options{Comma: ';'})
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if frame.Records[0][1] != "2" {
		t.Errorf("Records[0] = %v", frame.Records[0])
	}
	if frame.Comma != ';' {
		t.Errorf("Comma = %q, want ';'", frame.Comma)
	}
}

func TestFromReaderErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     Options
		wantLine int
	}{
		{name: "empty input", input: ""},
		{name: "ragged row", input: "a,b\n1,2\n3\n", wantLine: 3},
		{name: "bare quote", input: "a,b\n1,\"x\"y\n", wantLine: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromReader(strings.NewReader(tt.input), tt.opts)
			if err == nil {
				t.Fatal("FromReader() expected error")
			}
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("error %T is not *LoadError", err)
			}
			if le.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", le.Line, tt.wantLine)
			}
		})
	}
}

func TestFromReaderLenient(t *testing.T) {
	frame, err := FromReader(strings.NewReader("a,b\n1,2\n3\n"), Options{Lenient: true})
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if frame.Len() != 2 {
		t.Errorf("Len() = %d, want 2", frame.Len())
	}
}

func TestFromCSVMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	_, err := FromCSV(path, Options{})
	if err == nil {
		t.Fatal("FromCSV() expected error")
	}

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error %T is not *LoadError", err)
	}
	if le.Path != path {
		t.Errorf("Path = %q, want %q", le.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("error should wrap os.ErrNotExist")
	}
	if !strings.Contains(err.Error(), "missing.csv") {
		t.Errorf("Error() = %q, should name the file", err.Error())
	}
}

func TestFromCSVParseErrorKeepsPath(t *testing.T) {
	path := writeTempCSV(t, "a,b\n1\n")
	_, err := FromCSV(path, Options{})

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("error %T is not *LoadError", err)
	}
	if le.Path != path || le.Line != 2 {
		t.Errorf("LoadError = %+v", le)
	}
}
