package contact

import (
	"fmt"
	"strings"
)

// Result is the outcome of a lookup-style operation. OK is false when the
// target was not found; Message is the human-readable status either way.
type Result struct {
	OK      bool
	Message string
}

func (r Result) String() string { return r.Message }

// Record holds one contact's name and phone numbers in insertion order.
// Duplicate phones are allowed.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord creates a Record with no phones.
func NewRecord(name string) *Record {
	return &Record{name: Name(name)}
}

// Name returns the contact name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the record's phones in insertion order.
func (r *Record) Phones() []Phone {
	return append([]Phone(nil), r.phones...)
}

// AddPhone validates s and appends it.
func (r *Record) AddPhone(s string) error {
	p, err := NewPhone(s)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to s.
func (r *Record) RemovePhone(s string) (Result, error) {
	p, err := NewPhone(s)
	if err != nil {
		return Result{}, err
	}
	i := r.index(p)
	if i < 0 {
		return Result{Message: fmt.Sprintf("Phone %s not found in contact %s.", s, r.name)}, nil
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return Result{OK: true, Message: fmt.Sprintf("Phone %s was removed from contact %s.", s, r.name)}, nil
}

// EditPhone replaces the first phone equal to oldPhone with newPhone.
// Both values are validated before the record is touched.
func (r *Record) EditPhone(oldPhone, newPhone string) (Result, error) {
	op, err := NewPhone(oldPhone)
	if err != nil {
		return Result{}, err
	}
	np, err := NewPhone(newPhone)
	if err != nil {
		return Result{}, err
	}
	i := r.index(op)
	if i < 0 {
		return Result{Message: fmt.Sprintf("Phone %s not found in contact %s.", oldPhone, r.name)}, nil
	}
	r.phones[i] = np
	return Result{OK: true, Message: fmt.Sprintf("Phone %s was updated to %s for contact %s.", oldPhone, newPhone, r.name)}, nil
}

// FindPhone reports whether s is one of the record's phones.
func (r *Record) FindPhone(s string) (Result, error) {
	p, err := NewPhone(s)
	if err != nil {
		return Result{}, err
	}
	if r.index(p) < 0 {
		return Result{Message: fmt.Sprintf("Phone %s not found for contact %s.", s, r.name)}, nil
	}
	return Result{OK: true, Message: fmt.Sprintf("%s: %s", r.name, s)}, nil
}

func (r *Record) index(p Phone) int {
	for i, q := range r.phones {
		if q == p {
			return i
		}
	}
	return -1
}

func (r *Record) String() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(parts, "; "))
}
