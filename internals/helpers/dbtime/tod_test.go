// file: internals/helpers/dbtime/tod_test.go
package dbtime

import (
	"encoding/json"
	"testing"
)

func TestParseAndMinutes(t *testing.T) {
	tod, err := Parse("09:30")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tod.Minutes() != 570 {
		t.Errorf("Minutes = %d, want 570", tod.Minutes())
	}

	tod, err = Parse("23:59:59")
	if err != nil {
		t.Fatalf("Parse dengan detik: %v", err)
	}
	if tod.Minutes() != 1439 {
		t.Errorf("Minutes = %d, want 1439", tod.Minutes())
	}

	if _, err := Parse("25:00"); err == nil {
		t.Error("jam 25 harus gagal")
	}
	if _, err := Parse("banana"); err == nil {
		t.Error("string acak harus gagal")
	}
}

func TestFromMinutesRoundTrip(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 480, 1200, 1439} {
		if got := FromMinutes(m).Minutes(); got != m {
			t.Errorf("FromMinutes(%d).Minutes() = %d", m, got)
		}
	}
}

func TestBeforeTod(t *testing.T) {
	open := FromMinutes(480)
	close := FromMinutes(1200)
	if !open.BeforeTod(close) {
		t.Error("08:00 harus sebelum 20:00")
	}
	if close.BeforeTod(open) {
		t.Error("20:00 tidak boleh sebelum 08:00")
	}
	if open.BeforeTod(open) {
		t.Error("waktu sama bukan before")
	}
}

func TestStringAndJSON(t *testing.T) {
	tod := FromMinutes(570)
	if tod.String() != "09:30" {
		t.Errorf("String = %q", tod.String())
	}

	b, err := json.Marshal(tod)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"09:30"` {
		t.Errorf("Marshal = %s", b)
	}

	var back Tod
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Minutes() != 570 {
		t.Errorf("roundtrip Minutes = %d", back.Minutes())
	}
}

func TestScanValue(t *testing.T) {
	var tod Tod
	if err := tod.Scan("08:15:00"); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if tod.Minutes() != 495 {
		t.Errorf("Minutes = %d", tod.Minutes())
	}

	v, err := tod.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != "08:15:00" {
		t.Errorf("Value = %v", v)
	}

	if err := tod.Scan([]byte("18:45")); err != nil {
		t.Fatalf("Scan []byte: %v", err)
	}
	if tod.Minutes() != 1125 {
		t.Errorf("Minutes = %d", tod.Minutes())
	}

	if err := tod.Scan(42); err == nil {
		t.Error("Scan int harus gagal")
	}
}
