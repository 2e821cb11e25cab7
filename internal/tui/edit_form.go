package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danielblac/tmech-invoice/internal/app"
)

// fieldBinding ties one text input to a draft setter. Item fields carry
// the owning item's id and info fields their position so structural keys
// (remove item / remove line) know what the cursor is on.
type fieldBinding struct {
	label   string
	input   textinput.Model
	apply   func(string)
	itemID  int64 // 0 for non-item fields
	infoIdx int   // -1 for non-info fields
}

// editForm is the modal edit surface. Every keystroke lands in the draft
// only; the canonical record is untouched until save commits it.
type editForm struct {
	app    *app.App
	fields []fieldBinding
	focus  int
	err    error
}

func newEditForm(a *app.App) *editForm {
	f := &editForm{app: a}
	f.rebuild(0)
	return f
}

func newInput(value, placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = width
	in.SetValue(value)
	return in
}

// rebuild regenerates the binding list from the draft. Called on open and
// after any structural change (item or info line added/removed).
func (f *editForm) rebuild(focus int) {
	session := f.app.Session
	draft := session.Draft()
	if draft == nil {
		f.fields = nil
		return
	}

	fields := []fieldBinding{
		{label: "Invoice No", infoIdx: -1,
			input: newInput(draft.InvoiceNo, "TMECH0001", 30), apply: session.SetInvoiceNo},
		{label: "Invoice Date", infoIdx: -1,
			input: newInput(draft.InvoiceDate, "14 Oct, 2025", 30), apply: session.SetInvoiceDate},
		{label: "Due Date", infoIdx: -1,
			input: newInput(draft.DueDate, "04 Nov, 2025", 30), apply: session.SetDueDate},
		{label: "Bill To - Name", infoIdx: -1,
			input: newInput(draft.BillTo.Name, "", 50), apply: session.SetBillToName},
		{label: "Bill To - Address", infoIdx: -1,
			input: newInput(draft.BillTo.Address, "", 60), apply: session.SetBillToAddress},
	}

	for i := range draft.Items {
		item := draft.Items[i]
		id := item.ID
		n := i + 1
		fields = append(fields,
			fieldBinding{label: fmt.Sprintf("Item %d - Description", n), itemID: id, infoIdx: -1,
				input: newInput(item.Description, "", 50),
				apply: func(v string) { session.SetItemDescription(id, v) }},
			fieldBinding{label: fmt.Sprintf("Item %d - Price", n), itemID: id, infoIdx: -1,
				input: newInput(formatNumber(item.Price), "0", 14),
				apply: func(v string) { session.SetItemPrice(id, v) }},
			fieldBinding{label: fmt.Sprintf("Item %d - Qty", n), itemID: id, infoIdx: -1,
				input: newInput(formatNumber(item.Qty), "1", 8),
				apply: func(v string) { session.SetItemQty(id, v) }},
		)
	}

	fields = append(fields,
		fieldBinding{label: "Discount", infoIdx: -1,
			input: newInput(formatNumber(draft.Discount), "0", 14), apply: session.SetDiscount},
		fieldBinding{label: "Delivery Fee", infoIdx: -1,
			input: newInput(formatNumber(draft.DeliveryFee), "0", 14), apply: session.SetDeliveryFee},
	)

	for i := range draft.CustomInfo {
		idx := i
		fields = append(fields, fieldBinding{
			label: fmt.Sprintf("Custom Info %d", i+1), infoIdx: idx,
			input: newInput(draft.CustomInfo[i], "Enter custom information...", 60),
			apply: func(v string) { session.SetCustomInfo(idx, v) },
		})
	}

	if focus < 0 {
		focus = 0
	}
	if focus >= len(fields) {
		focus = len(fields) - 1
	}
	f.fields = fields
	f.focus = focus
	f.fields[f.focus].input.Focus()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// focusCmd returns the blink command for the focused input.
func (f *editForm) focusCmd() tea.Cmd {
	return f.fields[f.focus].input.Focus()
}

func (f *editForm) move(delta int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].input.Focus()
}

// update handles a key while the modal is open. It reports done=true when
// the modal should close (saved or cancelled).
func (f *editForm) update(msg tea.KeyMsg) (done bool, cmd tea.Cmd) {
	session := f.app.Session

	switch {
	case key.Matches(msg, DefaultKeyMap.Cancel):
		session.Cancel()
		return true, nil

	case key.Matches(msg, DefaultKeyMap.Save):
		return false, func() tea.Msg {
			return editSavedMsg{err: session.Commit(context.Background())}
		}

	case key.Matches(msg, DefaultKeyMap.Next):
		return false, f.move(1)

	case key.Matches(msg, DefaultKeyMap.Prev):
		return false, f.move(-1)

	case key.Matches(msg, DefaultKeyMap.AddItem):
		id := session.AddItem()
		f.rebuild(f.focus)
		// Jump to the new item's description field
		for i := range f.fields {
			if f.fields[i].itemID == id {
				f.fields[f.focus].input.Blur()
				f.focus = i
				break
			}
		}
		return false, f.fields[f.focus].input.Focus()

	case key.Matches(msg, DefaultKeyMap.DelItem):
		if id := f.fields[f.focus].itemID; id != 0 {
			session.RemoveItem(id) // refused silently on the last item
			f.rebuild(f.focus)
			return false, f.fields[f.focus].input.Focus()
		}
		return false, nil

	case key.Matches(msg, DefaultKeyMap.AddInfo):
		session.AddCustomInfo()
		f.rebuild(len(f.fields)) // clamps to the new last field
		return false, f.fields[f.focus].input.Focus()

	case key.Matches(msg, DefaultKeyMap.DelInfo):
		if idx := f.fields[f.focus].infoIdx; idx >= 0 {
			session.RemoveCustomInfo(idx)
			f.rebuild(f.focus)
			return false, f.fields[f.focus].input.Focus()
		}
		return false, nil
	}

	// Route to the focused input and mirror its value into the draft so
	// the totals strip stays live
	var inputCmd tea.Cmd
	f.fields[f.focus].input, inputCmd = f.fields[f.focus].input.Update(msg)
	f.fields[f.focus].apply(f.fields[f.focus].input.Value())
	return false, inputCmd
}

func (f *editForm) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit Invoice") + "\n\n")

	for i := range f.fields {
		indicator := "  "
		labelStyle := subtitleStyle
		if i == f.focus {
			indicator = "> "
			labelStyle = docAccentStyle
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", indicator, labelStyle.Render(f.fields[i].label+":"), f.fields[i].input.View()))
	}

	// Live totals for the draft
	if draft := f.app.Session.Draft(); draft != nil {
		money := f.app.Formatter.Currency
		bd := f.app.Totals.Breakdown(draft)
		b.WriteString("\n" + subtitleStyle.Render(fmt.Sprintf(
			"Subtotal: %s   Discount: %s   Total: %s",
			money(bd.Subtotal), money(bd.Discount), money(bd.Total),
		)) + "\n")
	}

	if f.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(errorColor).Render(fmt.Sprintf("\nError: %v", f.err)) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("  unsaved changes are discarded on esc"))
	return b.String()
}
