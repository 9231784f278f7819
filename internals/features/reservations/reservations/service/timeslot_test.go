// file: internals/features/reservations/reservations/service/timeslot_test.go
package service

import (
	"reflect"
	"testing"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"identik", 600, 660, 600, 660, true},
		{"sebagian", 600, 660, 630, 690, true},
		{"satu di dalam", 600, 720, 630, 660, true},
		{"membungkus", 630, 660, 600, 720, true},
		{"terpisah jauh", 600, 660, 720, 780, false},
		{"sentuhan batas e1==s2", 600, 660, 660, 720, false},
		{"sentuhan batas e2==s1", 660, 720, 600, 660, false},
		{"selisih satu menit", 600, 659, 660, 720, false},
		{"overlap satu menit", 600, 661, 660, 720, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
				t.Errorf("Overlaps(%d,%d,%d,%d) = %v, want %v", tc.s1, tc.e1, tc.s2, tc.e2, got, tc.want)
			}
			// predikatnya simetris
			if got := Overlaps(tc.s2, tc.e2, tc.s1, tc.e1); got != tc.want {
				t.Errorf("Overlaps tidak simetris untuk %s", tc.name)
			}
		})
	}
}

func TestClipSlot(t *testing.T) {
	if s, ok := ClipSlot(Slot{Start: 400, End: 700}, 480, 1200); !ok || s != (Slot{Start: 480, End: 700}) {
		t.Errorf("clip kiri salah: %v %v", s, ok)
	}
	if s, ok := ClipSlot(Slot{Start: 1100, End: 1300}, 480, 1200); !ok || s != (Slot{Start: 1100, End: 1200}) {
		t.Errorf("clip kanan salah: %v %v", s, ok)
	}
	if _, ok := ClipSlot(Slot{Start: 100, End: 200}, 480, 1200); ok {
		t.Error("slot di luar jendela harus dibuang")
	}
	if _, ok := ClipSlot(Slot{Start: 400, End: 480}, 480, 1200); ok {
		t.Error("slot yang hanya menyentuh batas open harus dibuang")
	}
}

func TestMergeSlots(t *testing.T) {
	got := MergeSlots([]Slot{
		{Start: 600, End: 660},
		{Start: 840, End: 900},
		{Start: 630, End: 720}, // overlap dengan pertama
		{Start: 720, End: 750}, // adjacent → ikut tergabung
	})
	want := []Slot{{Start: 600, End: 750}, {Start: 840, End: 900}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeSlots = %v, want %v", got, want)
	}

	if MergeSlots(nil) != nil {
		t.Error("MergeSlots(nil) harus nil")
	}
	if got := MergeSlots([]Slot{{Start: 100, End: 100}}); got != nil {
		t.Errorf("slot kosong harus dibuang, got %v", got)
	}
}

func TestFreeSlots(t *testing.T) {
	// 08:00-20:00, busy 09:00-10:00 → free [08:00-09:00, 10:00-20:00]
	got := FreeSlots(480, 1200, []Slot{{Start: 540, End: 600}})
	want := []Slot{{Start: 480, End: 540}, {Start: 600, End: 1200}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FreeSlots = %v, want %v", got, want)
	}
}

func TestFreeSlotsEdges(t *testing.T) {
	// busy menutupi seluruh jendela → tidak ada free
	if got := FreeSlots(480, 1200, []Slot{{Start: 480, End: 1200}}); got != nil {
		t.Errorf("jendela penuh harus kosong, got %v", got)
	}
	// tanpa busy → satu slot penuh
	got := FreeSlots(480, 1200, nil)
	want := []Slot{{Start: 480, End: 1200}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FreeSlots tanpa busy = %v, want %v", got, want)
	}
	// busy di luar jendela dibuang
	got = FreeSlots(480, 1200, []Slot{{Start: 0, End: 120}, {Start: 1300, End: 1400}})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("busy di luar jendela harus diabaikan, got %v", got)
	}
	// jendela invalid
	if got := FreeSlots(1200, 480, nil); got != nil {
		t.Errorf("close <= open harus nil, got %v", got)
	}
}

// busy ∪ free harus menutup [open, close) persis, tanpa celah dan tanpa overlap.
func TestFreeSlotsUnionInvariant(t *testing.T) {
	open, close := 420, 1320
	busyIn := []Slot{
		{Start: 400, End: 500},
		{Start: 490, End: 560},
		{Start: 700, End: 760},
		{Start: 760, End: 800},
		{Start: 1300, End: 1340},
	}

	clipped := make([]Slot, 0, len(busyIn))
	for _, b := range busyIn {
		if c, ok := ClipSlot(b, open, close); ok {
			clipped = append(clipped, c)
		}
	}
	busy := MergeSlots(clipped)
	free := FreeSlots(open, close, busyIn)

	all := append(append([]Slot{}, busy...), free...)
	merged := MergeSlots(all)
	if len(merged) != 1 || merged[0] != (Slot{Start: open, End: close}) {
		t.Fatalf("busy ∪ free != [open, close): %v", merged)
	}

	for _, b := range busy {
		for _, f := range free {
			if Overlaps(b.Start, b.End, f.Start, f.End) {
				t.Fatalf("busy %v overlap dengan free %v", b, f)
			}
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(0); got != "00:00" {
		t.Errorf("got %q", got)
	}
	if got := FormatMinutes(540); got != "09:00" {
		t.Errorf("got %q", got)
	}
	if got := FormatMinutes(1439); got != "23:59" {
		t.Errorf("got %q", got)
	}
}
