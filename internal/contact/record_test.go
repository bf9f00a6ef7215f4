package contact

import (
	"errors"
	"slices"
	"testing"
)

func phoneStrings(r *Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r := NewRecord(name)
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}
	return r
}

func TestRecord_AddPhone(t *testing.T) {
	t.Run("appends in order and allows duplicates", func(t *testing.T) {
		r := newTestRecord(t, "John", "1234567890", "5555555555", "1234567890")

		want := []string{"1234567890", "5555555555", "1234567890"}
		if got := phoneStrings(r); !slices.Equal(got, want) {
			t.Errorf("phones = %v, want %v", got, want)
		}
	})

	t.Run("invalid phone is rejected and not stored", func(t *testing.T) {
		r := NewRecord("John")
		err := r.AddPhone("12345")
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("AddPhone error = %v, want ErrInvalidPhone", err)
		}
		if len(r.Phones()) != 0 {
			t.Errorf("phones = %v, want empty", phoneStrings(r))
		}
	})
}

func TestRecord_Phones_ReturnsCopy(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890")
	phones := r.Phones()
	phones[0] = "0000000000"

	if got := phoneStrings(r); got[0] != "1234567890" {
		t.Errorf("mutating Phones() result changed record: %v", got)
	}
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("replaces only the first match and preserves order", func(t *testing.T) {
		// Given: a record with two phones and a duplicate of the first
		r := newTestRecord(t, "John", "1234567890", "5555555555", "1234567890")

		// When: the first phone is edited
		res, err := r.EditPhone("1234567890", "1112223333")

		// Then: only the first occurrence changes
		if err != nil {
			t.Fatalf("EditPhone error = %v", err)
		}
		if !res.OK {
			t.Errorf("OK = false, want true")
		}
		want := []string{"1112223333", "5555555555", "1234567890"}
		if got := phoneStrings(r); !slices.Equal(got, want) {
			t.Errorf("phones = %v, want %v", got, want)
		}
		wantMsg := "Phone 1234567890 was updated to 1112223333 for contact John."
		if res.Message != wantMsg {
			t.Errorf("Message = %q, want %q", res.Message, wantMsg)
		}
	})

	t.Run("missing phone reports not found", func(t *testing.T) {
		r := newTestRecord(t, "John", "1234567890")
		res, err := r.EditPhone("9999999999", "1112223333")
		if err != nil {
			t.Fatalf("EditPhone error = %v", err)
		}
		if res.OK {
			t.Error("OK = true, want false")
		}
		if res.Message != "Phone 9999999999 not found in contact John." {
			t.Errorf("Message = %q", res.Message)
		}
	})

	t.Run("invalid replacement leaves record untouched", func(t *testing.T) {
		r := newTestRecord(t, "John", "1234567890")
		_, err := r.EditPhone("1234567890", "bad")
		if !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("EditPhone error = %v, want ErrInvalidPhone", err)
		}
		if got := phoneStrings(r); !slices.Equal(got, []string{"1234567890"}) {
			t.Errorf("phones = %v, want unchanged", got)
		}
	})

	t.Run("invalid old phone fails validation", func(t *testing.T) {
		r := newTestRecord(t, "John", "1234567890")
		if _, err := r.EditPhone("123", "1112223333"); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("EditPhone error = %v, want ErrInvalidPhone", err)
		}
	})

	t.Run("arguments are validated before the lookup", func(t *testing.T) {
		tests := []struct {
			name     string
			phones   []string
			oldPhone string
			newPhone string
		}{
			{"empty record, invalid old", nil, "123", "1112223333"},
			{"empty record, invalid new", nil, "1234567890", "bad"},
			{"unmatched old, invalid new", []string{"5555555555"}, "1234567890", "bad"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := newTestRecord(t, "John", tt.phones...)
				res, err := r.EditPhone(tt.oldPhone, tt.newPhone)
				if !errors.Is(err, ErrInvalidPhone) {
					t.Fatalf("EditPhone = (%v, %v), want ErrInvalidPhone", res, err)
				}
				if got := phoneStrings(r); !slices.Equal(got, tt.phones) {
					t.Errorf("phones = %v, want %v", got, tt.phones)
				}
			})
		}
	})
}

func TestRecord_RemovePhone(t *testing.T) {
	t.Run("removes first match", func(t *testing.T) {
		r := newTestRecord(t, "John", "1234567890", "5555555555", "1234567890")
		res, err := r.RemovePhone("1234567890")
		if err != nil {
			t.Fatalf("RemovePhone error = %v", err)
		}
		if !res.OK || res.Message != "Phone 1234567890 was removed from contact John." {
			t.Errorf("result = %+v", res)
		}
		want := []string{"5555555555", "1234567890"}
		if got := phoneStrings(r); !slices.Equal(got, want) {
			t.Errorf("phones = %v, want %v", got, want)
		}
	})

	t.Run("absent phone leaves sequence unchanged", func(t *testing.T) {
		r := newTestRecord(t, "John", "1234567890", "5555555555")
		res, err := r.RemovePhone("9876543210")
		if err != nil {
			t.Fatalf("RemovePhone error = %v", err)
		}
		if res.OK {
			t.Error("OK = true, want false")
		}
		if res.Message != "Phone 9876543210 not found in contact John." {
			t.Errorf("Message = %q", res.Message)
		}
		want := []string{"1234567890", "5555555555"}
		if got := phoneStrings(r); !slices.Equal(got, want) {
			t.Errorf("phones = %v, want %v", got, want)
		}
	})

	t.Run("invalid input fails before search", func(t *testing.T) {
		r := newTestRecord(t, "John", "1234567890")
		if _, err := r.RemovePhone("12-34"); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("RemovePhone error = %v, want ErrInvalidPhone", err)
		}
	})
}

func TestRecord_FindPhone(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "5555555555")

	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantMsg string
	}{
		{"present", "5555555555", true, "John: 5555555555"},
		{"absent", "9876543210", false, "Phone 9876543210 not found for contact John."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.FindPhone(tt.input)
			if err != nil {
				t.Fatalf("FindPhone error = %v", err)
			}
			if res.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v", res.OK, tt.wantOK)
			}
			if res.String() != tt.wantMsg {
				t.Errorf("String() = %q, want %q", res.String(), tt.wantMsg)
			}
		})
	}

	t.Run("invalid input", func(t *testing.T) {
		if _, err := r.FindPhone("abc"); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("FindPhone error = %v, want ErrInvalidPhone", err)
		}
	})
}

func TestRecord_String(t *testing.T) {
	tests := []struct {
		name   string
		phones []string
		want   string
	}{
		{"two phones", []string{"1234567890", "5555555555"}, "Contact name: John, phones: 1234567890; 5555555555"},
		{"no phones", nil, "Contact name: John, phones: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(t, "John", tt.phones...)
			if got := r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
