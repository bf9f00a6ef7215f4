package shell

import (
	"fmt"

	"github.com/smileynet/phonebook/internal/contact"
)

// grammar is the kong model for one shell line.
type grammar struct {
	Add    AddCmd    `cmd:"" help:"Add a contact, or phones to an existing contact."`
	Phone  PhoneCmd  `cmd:"" help:"Manage a contact's phones."`
	Show   ShowCmd   `cmd:"" help:"Show one contact."`
	All    AllCmd    `cmd:"" help:"Show every contact."`
	Delete DeleteCmd `cmd:"" help:"Delete a contact."`
	Help   HelpCmd   `cmd:"" help:"List commands."`
	Exit   ExitCmd   `cmd:"" aliases:"close,quit" help:"End the session."`
}

// usage is printed by the help command.
const usage = `Commands:
  add NAME [PHONE...]            add a contact, or phones to an existing contact
  phone add NAME PHONE           add a phone
  phone remove NAME PHONE        remove a phone
  phone edit NAME OLD NEW        replace a phone
  phone find NAME PHONE          look up a phone
  show NAME                      show one contact
  all                            show every contact
  delete NAME                    delete a contact
  help                           show this list
  exit | close                   end the session
Quote names containing spaces: add "Mary Ann" 1234567890`

// AddCmd creates a contact when absent and appends any given phones.
// All phones are validated before the book changes.
type AddCmd struct {
	Name   string   `arg:"" help:"Contact name."`
	Phones []string `arg:"" optional:"" help:"Phone numbers (10 digits)."`
}

func (c *AddCmd) Run(s *Session) error {
	for _, p := range c.Phones {
		if _, err := contact.NewPhone(p); err != nil {
			return err
		}
	}

	r, exists := s.book.Find(c.Name)
	if !exists {
		r = contact.NewRecord(c.Name)
	}
	for _, p := range c.Phones {
		if err := r.AddPhone(p); err != nil {
			return err
		}
	}
	if !exists {
		s.book.AddRecord(r)
		s.out.Result(contact.Result{OK: true, Message: fmt.Sprintf("Contact %s added.", c.Name)})
		return nil
	}
	s.out.Result(contact.Result{OK: true, Message: fmt.Sprintf("Contact %s updated.", c.Name)})
	return nil
}

// PhoneCmd groups the per-record phone operations.
type PhoneCmd struct {
	Add    PhoneAddCmd    `cmd:"" help:"Add a phone to a contact."`
	Remove PhoneRemoveCmd `cmd:"" aliases:"rm" help:"Remove a phone from a contact."`
	Edit   PhoneEditCmd   `cmd:"" help:"Replace a contact's phone."`
	Find   PhoneFindCmd   `cmd:"" help:"Look up a phone on a contact."`
}

// PhoneAddCmd appends a phone to an existing contact.
type PhoneAddCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"Phone number."`
}

func (c *PhoneAddCmd) Run(s *Session) error {
	r, ok := s.record(c.Name)
	if !ok {
		return nil
	}
	if err := r.AddPhone(c.Phone); err != nil {
		return err
	}
	s.out.Result(contact.Result{OK: true, Message: fmt.Sprintf("Phone %s was added to contact %s.", c.Phone, c.Name)})
	return nil
}

// PhoneRemoveCmd removes a phone from a contact.
type PhoneRemoveCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"Phone number."`
}

func (c *PhoneRemoveCmd) Run(s *Session) error {
	r, ok := s.record(c.Name)
	if !ok {
		return nil
	}
	res, err := r.RemovePhone(c.Phone)
	if err != nil {
		return err
	}
	s.out.Result(res)
	return nil
}

// PhoneEditCmd replaces a contact's phone.
type PhoneEditCmd struct {
	Name string `arg:"" help:"Contact name."`
	Old  string `arg:"" help:"Phone to replace."`
	New  string `arg:"" help:"Replacement phone."`
}

func (c *PhoneEditCmd) Run(s *Session) error {
	r, ok := s.record(c.Name)
	if !ok {
		return nil
	}
	res, err := r.EditPhone(c.Old, c.New)
	if err != nil {
		return err
	}
	s.out.Result(res)
	return nil
}

// PhoneFindCmd looks up a phone on a contact.
type PhoneFindCmd struct {
	Name  string `arg:"" help:"Contact name."`
	Phone string `arg:"" help:"Phone number."`
}

func (c *PhoneFindCmd) Run(s *Session) error {
	r, ok := s.record(c.Name)
	if !ok {
		return nil
	}
	res, err := r.FindPhone(c.Phone)
	if err != nil {
		return err
	}
	s.out.Result(res)
	return nil
}

// ShowCmd prints one contact.
type ShowCmd struct {
	Name string `arg:"" help:"Contact name."`
}

func (c *ShowCmd) Run(s *Session) error {
	if r, ok := s.record(c.Name); ok {
		s.out.Record(r)
	}
	return nil
}

// AllCmd prints every contact in insertion order.
type AllCmd struct{}

func (c *AllCmd) Run(s *Session) error {
	s.out.Records(s.book.Records())
	return nil
}

// DeleteCmd removes a contact.
type DeleteCmd struct {
	Name string `arg:"" help:"Contact name."`
}

func (c *DeleteCmd) Run(s *Session) error {
	s.out.Result(s.book.Delete(c.Name))
	return nil
}

// HelpCmd prints the command list.
type HelpCmd struct{}

func (c *HelpCmd) Run(s *Session) error {
	s.out.Message(usage)
	return nil
}

// ExitCmd ends the session.
type ExitCmd struct{}

func (c *ExitCmd) Run(s *Session) error {
	s.done = true
	return nil
}
