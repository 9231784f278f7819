// file: internals/features/reservations/reservations/service/timeslot.go
package service

import (
	"fmt"
	"sort"
)

// Slot: interval half-open [Start, End) dalam menit sejak tengah malam.
type Slot struct {
	Start int `json:"-"`
	End   int `json:"-"`
}

func (s Slot) Empty() bool { return s.End <= s.Start }

// FormatMinutes: menit → "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps: dua interval half-open bentrok kecuali hanya bersentuhan di batas.
// Non-overlap iff e1 <= s2 || e2 <= s1.
func Overlaps(s1, e1, s2, e2 int) bool {
	return !(e1 <= s2 || e2 <= s1)
}

// ClipSlot memotong slot ke jendela [open, close). ok=false kalau tidak tersisa.
func ClipSlot(s Slot, open, close int) (Slot, bool) {
	if s.Start < open {
		s.Start = open
	}
	if s.End > close {
		s.End = close
	}
	if s.Empty() {
		return Slot{}, false
	}
	return s, true
}

// MergeSlots mengurutkan dan menggabungkan interval yang tumpang tindih atau
// bersinggungan. Sweep availability mensyaratkan busy non-overlapping; merge di
// sini membuat hasil tetap benar walau data ledger sempat drift.
func MergeSlots(in []Slot) []Slot {
	if len(in) == 0 {
		return nil
	}
	slots := make([]Slot, 0, len(in))
	for _, s := range in {
		if !s.Empty() {
			slots = append(slots, s)
		}
	}
	if len(slots) == 0 {
		return nil
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Start != slots[j].Start {
			return slots[i].Start < slots[j].Start
		}
		return slots[i].End < slots[j].End
	})

	out := []Slot{slots[0]}
	for _, s := range slots[1:] {
		last := &out[len(out)-1]
		if s.Start <= last.End { // overlap atau adjacent
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// FreeSlots menghitung komplemen busy terhadap [open, close).
// Busy di luar jendela dibuang, yang memotong batas di-clip, lalu merge,
// lalu sweep kiri→kanan dengan cursor.
func FreeSlots(open, close int, busy []Slot) []Slot {
	if close <= open {
		return nil
	}

	clipped := make([]Slot, 0, len(busy))
	for _, b := range busy {
		if c, ok := ClipSlot(b, open, close); ok {
			clipped = append(clipped, c)
		}
	}
	merged := MergeSlots(clipped)

	var free []Slot
	cursor := open
	for _, b := range merged {
		if cursor < b.Start {
			free = append(free, Slot{Start: cursor, End: b.Start})
		}
		if b.End > cursor {
			cursor = b.End
		}
	}
	if cursor < close {
		free = append(free, Slot{Start: cursor, End: close})
	}
	return free
}
