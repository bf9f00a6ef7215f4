package contact

import "fmt"

// AddressBook maps contact names to records. Iteration follows first
// insertion; overwriting a name keeps its original position.
// It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty AddressBook.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name, silently replacing any existing record.
func (b *AddressBook) AddRecord(r *Record) {
	key := r.Name().String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) Result {
	if _, ok := b.records[name]; !ok {
		return Result{Message: fmt.Sprintf("No contact with the name %s was found.", name)}
	}
	delete(b.records, name)
	for i, k := range b.order {
		if k == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return Result{OK: true, Message: fmt.Sprintf("Contact %s has been deleted.", name)}
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Names returns record names in iteration order.
func (b *AddressBook) Names() []string {
	return append([]string(nil), b.order...)
}

// Records returns the records in iteration order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, len(b.order))
	for i, k := range b.order {
		out[i] = b.records[k]
	}
	return out
}

// NotFoundMessage is the status shown when Find misses.
func NotFoundMessage(name string) string {
	return fmt.Sprintf("No contact with the name %s found.", name)
}
