package utf16text

import "testing"

// FuzzFromString checks construction invariants over arbitrary strings.
func FuzzFromString(f *testing.F) {
	f.Add("")
	f.Add("hello")
	f.Add("a😀b")
	f.Add("🇺🇸b")
	f.Add("🇺🇸🇩🇪")
	f.Add("世界")
	f.Add("\x00\x01\x02")

	f.Fuzz(func(t *testing.T, s string) {
		text := FromString(s)

		if text.Len() > text.Summary().CodePoints || text.Summary().CodePoints > text.UnitLen() {
			t.Errorf("count ordering violated: %d chars, %d codepoints, %d units",
				text.Len(), text.Summary().CodePoints, text.UnitLen())
		}

		// Length contract against the scanning primitive.
		if text.Len() != text.FindCharIndex(text.UnitLen()-1)+1 {
			t.Errorf("Len() = %d, translation gives %d",
				text.Len(), text.FindCharIndex(text.UnitLen()-1)+1)
		}

		// The iterator partitions the units exactly.
		sum := 0
		count := 0
		for it := text.Iter(); it.Next(); {
			sum += it.Width()
			count++
		}
		if sum != text.UnitLen() || count != text.Len() {
			t.Errorf("iterator walked %d units over %d chars, want %d over %d",
				sum, count, text.UnitLen(), text.Len())
		}
	})
}

// FuzzTranslation checks the index mapping round trip.
func FuzzTranslation(f *testing.F) {
	f.Add("a😀b", 0)
	f.Add("a😀b", 2)
	f.Add("🇺🇸b", 1)
	f.Add("", 0)

	f.Fuzz(func(t *testing.T, s string, i int) {
		text := FromString(s)

		off := text.FindByteIndex(i)
		if i < 0 || i >= text.Len() {
			if off != NotFound {
				t.Errorf("FindByteIndex(%d) = %d, want NotFound", i, off)
			}
			return
		}

		if off < 0 || off >= text.UnitLen() {
			t.Fatalf("FindByteIndex(%d) = %d, out of unit range", i, off)
		}
		if back := text.FindCharIndex(off); back != i {
			t.Errorf("round trip %d -> %d -> %d", i, off, back)
		}
	})
}

// FuzzSliceSubstr checks that slicing is total and reconstructable.
func FuzzSliceSubstr(f *testing.F) {
	f.Add("a😀b", 0, 2)
	f.Add("a😀b", -4, 9)
	f.Add("🇺🇸b", 1, 1)
	f.Add("", 3, -3)

	f.Fuzz(func(t *testing.T, s string, start, end int) {
		text := FromString(s)

		part := text.Slice(start, end)
		if part.UnitLen() > text.UnitLen() {
			t.Errorf("slice grew: %d > %d units", part.UnitLen(), text.UnitLen())
		}

		sub := text.Substr(start, end)
		_ = sub

		if start >= 0 && start <= text.Len() {
			left := text.Slice(0, start)
			right := text.Slice(start)
			if !left.Concat(right).Equals(text) {
				t.Errorf("split at %d does not reconstruct", start)
			}
		}
	})
}

// FuzzFromBytes checks the byte constructor over arbitrary input.
func FuzzFromBytes(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x61})
	f.Add([]byte{0xd8, 0x3d, 0xde, 0x00})
	f.Add([]byte{0x12})

	f.Fuzz(func(t *testing.T, b []byte) {
		text := FromBytes(b)

		want := (len(b) + 1) / 2
		if text.UnitLen() != want {
			t.Errorf("UnitLen() = %d, want %d", text.UnitLen(), want)
		}

		if len(b)%2 == 0 {
			round := text.Bytes()
			if len(round) != len(b) {
				t.Fatalf("round trip length %d, want %d", len(round), len(b))
			}
			for i := range round {
				if round[i] != b[i] {
					t.Errorf("byte %d = %#x, want %#x", i, round[i], b[i])
				}
			}
		}
	})
}
