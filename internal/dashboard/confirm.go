package dashboard

import (
	"fmt"
	"strings"

	"github.com/smileynet/phonebook/internal/contact"
)

// confirmState holds the data needed for the delete confirmation screen.
type confirmState struct {
	name   string
	phones []contact.Phone
}

func newConfirmState(r *contact.Record) confirmState {
	return confirmState{name: r.Name().String(), phones: r.Phones()}
}

// View renders the confirmation screen.
func (cs confirmState) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", warnStyle.Render(fmt.Sprintf("Delete %s?", cs.name)))

	switch n := len(cs.phones); n {
	case 0:
		b.WriteString("\n  No phones will be lost.")
	case 1:
		b.WriteString("\n  This removes 1 phone:")
	default:
		fmt.Fprintf(&b, "\n  This removes %d phones:", n)
	}
	for _, p := range cs.phones {
		fmt.Fprintf(&b, "\n    • %s", p)
	}

	b.WriteString("\n\n  [y] Delete   [n] Cancel")
	return b.String()
}
