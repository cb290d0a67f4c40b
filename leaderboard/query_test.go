package leaderboard

import (
	"errors"
	"testing"
)

func TestParseQueryEmptyArgs(t *testing.T) {
	query, err := ParseQuery("roro", "aa", nil)

	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if query.Type != SearchName {
		t.Errorf("expected name search, got %s", query.Type)
	}

	if query.Params["name"] != "roro" {
		t.Errorf("expected name param to be the channel, got %q", query.Params["name"])
	}

	if query.Term != "roro" {
		t.Errorf("expected term to be the channel, got %q", query.Term)
	}
}

func TestParseQueryRange(t *testing.T) {
	tests := []struct {
		args      []string
		wantPlace string
		wantTake  string
		wantTerm  string
	}{
		{[]string{"range", "1", "1"}, "1", "1", "1 - 1"},
		{[]string{"range", "5", "10"}, "5", "6", "5 - 10"},
		{[]string{"range", "3", "7"}, "3", "5", "3 - 7"},
	}

	for _, tt := range tests {
		query, err := ParseQuery("roro", "any", tt.args)

		if err != nil {
			t.Fatalf("%v: parse failed: %v", tt.args, err)
		}

		if query.Type != SearchRange {
			t.Errorf("%v: expected range search, got %s", tt.args, query.Type)
		}

		if query.Params["place"] != tt.wantPlace || query.Params["take"] != tt.wantTake {
			t.Errorf("%v: expected place=%s take=%s, got place=%s take=%s",
				tt.args, tt.wantPlace, tt.wantTake, query.Params["place"], query.Params["take"])
		}

		if query.Term != tt.wantTerm {
			t.Errorf("%v: expected term %q, got %q", tt.args, tt.wantTerm, query.Term)
		}

		if !query.Multiple() {
			t.Errorf("%v: range queries should request multiple rows", tt.args)
		}
	}
}

func TestParseQueryRangeInvalid(t *testing.T) {
	tests := [][]string{
		{"range"},
		{"range", "1"},
		{"range", "a", "5"},
		{"range", "1", "b"},
		{"range", "0", "5"},
		{"range", "5", "4"},
	}

	for _, args := range tests {
		if _, err := ParseQuery("roro", "any", args); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("%v: expected ErrInvalidQuery, got %v", args, err)
		}
	}
}

func TestParseQueryTop(t *testing.T) {
	query, err := ParseQuery("roro", "any", []string{"top", "5"})

	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if query.Type != SearchTop {
		t.Errorf("expected top search, got %s", query.Type)
	}

	if query.Params["place"] != "1" || query.Params["take"] != "5" {
		t.Errorf("expected place=1 take=5, got place=%s take=%s", query.Params["place"], query.Params["take"])
	}

	if query.Term != "top 5" {
		t.Errorf("expected term %q, got %q", "top 5", query.Term)
	}
}

func TestParseQueryTopInvalid(t *testing.T) {
	for _, args := range [][]string{{"top"}, {"top", "abc"}} {
		if _, err := ParseQuery("roro", "any", args); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("%v: expected ErrInvalidQuery, got %v", args, err)
		}
	}
}

func TestParseQueryPlace(t *testing.T) {
	query, err := ParseQuery("roro", "any", []string{"42"})

	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if query.Type != SearchPlace {
		t.Errorf("expected place search, got %s", query.Type)
	}

	if query.Params["place"] != "42" {
		t.Errorf("expected place=42, got %s", query.Params["place"])
	}

	if query.Multiple() {
		t.Error("place queries should not request multiple rows")
	}
}

func TestParseQueryName(t *testing.T) {
	query, err := ParseQuery("roro", "any", []string{"some", "player"})

	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if query.Type != SearchName {
		t.Errorf("expected name search, got %s", query.Type)
	}

	if query.Params["name"] != "some player" {
		t.Errorf("expected joined name, got %q", query.Params["name"])
	}
}

func TestParseQueryTime(t *testing.T) {
	tests := []struct {
		category string
		arg      string
		wantType SearchType
		wantKey  string
		wantTime string
	}{
		{"aa", "5:00:00", SearchGteTime, "gtetime", "05:00:00"},
		{"aa", "5:30", SearchGteTime, "gtetime", "05:30:00"},
		{"any", "5:30", SearchGteTime, "gtetime", "00:05:30"},
		{"any", "1:30:10", SearchGteTime, "gtetime", "01:30:10"},
		{"any", "<1:30", SearchLteTime, "ltetime", "00:01:30"},
		{"aa", ">2:15", SearchGteTime, "gtetime", "02:15:00"},
	}

	for _, tt := range tests {
		query, err := ParseQuery("roro", tt.category, []string{tt.arg})

		if err != nil {
			t.Fatalf("%s/%s: parse failed: %v", tt.category, tt.arg, err)
		}

		if query.Type != tt.wantType {
			t.Errorf("%s/%s: expected %s, got %s", tt.category, tt.arg, tt.wantType, query.Type)
		}

		if query.Params[tt.wantKey] != tt.wantTime {
			t.Errorf("%s/%s: expected %s=%s, got %s", tt.category, tt.arg, tt.wantKey, tt.wantTime, query.Params[tt.wantKey])
		}

		if query.Term != tt.wantTime {
			t.Errorf("%s/%s: expected term %q, got %q", tt.category, tt.arg, tt.wantTime, query.Term)
		}
	}
}

// A lone number without a colon is a place lookup, but with a sign and colon
// it becomes a time; the category decides whether it means hours or minutes.
func TestParseQueryTimeCategorySemantics(t *testing.T) {
	query, err := ParseQuery("roro", "aa", []string{">5:0"})

	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if query.Params["gtetime"] != "05:00:00" {
		t.Errorf("aa category should read a short tuple as hours-first, got %s", query.Params["gtetime"])
	}

	query, err = ParseQuery("roro", "any", []string{">5:0"})

	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if query.Params["gtetime"] != "00:05:00" {
		t.Errorf("non-aa category should read a short tuple as minutes-first, got %s", query.Params["gtetime"])
	}
}

// The tuple normalizer on its own: a lone component is hours for the aa
// category and minutes for everything else.
func TestParseTimeString(t *testing.T) {
	tests := []struct {
		category string
		in       string
		want     string
	}{
		{"aa", "5", "05:00:00"},
		{"any", "5", "00:05:00"},
		{"aa", "1:30", "01:30:00"},
		{"any", "1:30", "00:01:30"},
		{"any", "2:3:4", "02:03:04"},
	}

	for _, tt := range tests {
		p := &queryParser{category: tt.category}

		got, err := p.parseTimeString(tt.in)

		if err != nil {
			t.Fatalf("%s/%s: parse failed: %v", tt.category, tt.in, err)
		}

		if got != tt.want {
			t.Errorf("%s/%s: expected %s, got %s", tt.category, tt.in, tt.want, got)
		}
	}
}

func TestParseQueryTimeInvalid(t *testing.T) {
	tests := [][]string{
		{"5:"},
		{":30"},
		{"a:b"},
		{"<1:b"},
		{"1:2:3:4"},
	}

	for _, args := range tests {
		if _, err := ParseQuery("roro", "any", args); !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("%v: expected ErrInvalidQuery, got %v", args, err)
		}
	}
}

func TestParseQueryTermNeverEmpty(t *testing.T) {
	query, err := ParseQuery("", "any", nil)

	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if query.Term != "ERROR" {
		t.Errorf("expected error marker for empty term, got %q", query.Term)
	}
}
