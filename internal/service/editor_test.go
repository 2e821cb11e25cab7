package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/danielblac/tmech-invoice/internal/domain"
)

// fakeStore records the last saved value
type fakeStore struct {
	saved *domain.InvoiceRecord
	err   error
}

func (f *fakeStore) Load(ctx context.Context) (*domain.InvoiceRecord, error) {
	if f.saved != nil {
		return f.saved.Clone(), nil
	}
	return domain.DefaultInvoice(), nil
}

func (f *fakeStore) Save(ctx context.Context, rec *domain.InvoiceRecord) error {
	if f.err != nil {
		return f.err
	}
	f.saved = rec.Clone()
	return nil
}

func newTestSession() (*EditSession, *fakeStore) {
	st := &fakeStore{}
	return NewEditSession(domain.DefaultInvoice(), st, zerolog.Nop()), st
}

func TestBeginThenCancel_CanonicalUntouched(t *testing.T) {
	session, _ := newTestSession()
	before := session.Canonical().Clone()

	session.Begin()
	session.SetInvoiceNo("SCRATCH")
	session.SetItemPrice(1, "999")
	session.AddItem()
	session.Cancel()

	if session.Editing() {
		t.Fatal("session still editing after cancel")
	}
	if !reflect.DeepEqual(session.Canonical(), before) {
		t.Fatalf("canonical changed by cancelled edit:\n got %+v\nwant %+v", session.Canonical(), before)
	}
}

func TestDraftDoesNotAliasCanonical(t *testing.T) {
	session, _ := newTestSession()
	session.Begin()

	session.SetItemDescription(1, "changed")
	session.SetBillToName("someone else")
	session.SetCustomInfo(0, "changed line")

	canonical := session.Canonical()
	if canonical.Items[0].Description != "Student Uniform (12M & 12 L)" {
		t.Errorf("draft item edit leaked into canonical: %q", canonical.Items[0].Description)
	}
	if canonical.BillTo.Name != "FROSHTECH ACADEMY" {
		t.Errorf("draft scalar edit leaked into canonical: %q", canonical.BillTo.Name)
	}
	if canonical.CustomInfo[0] != "Delivery fee = on the client" {
		t.Errorf("draft info edit leaked into canonical: %q", canonical.CustomInfo[0])
	}
}

func TestCommit_ReplacesAndPersists(t *testing.T) {
	session, st := newTestSession()
	ctx := context.Background()

	session.Begin()
	session.SetInvoiceNo("TMECH0200")
	session.SetDiscount("5000")
	session.SetItemQty(2, "30")
	draft := session.Draft().Clone()

	if err := session.Commit(ctx); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}

	if session.Editing() {
		t.Fatal("session still editing after commit")
	}
	if !reflect.DeepEqual(session.Canonical(), draft) {
		t.Fatalf("canonical does not match committed draft:\n got %+v\nwant %+v", session.Canonical(), draft)
	}
	if st.saved == nil || !reflect.DeepEqual(st.saved, draft) {
		t.Fatalf("persisted record does not match committed draft: %+v", st.saved)
	}
}

func TestCommit_StoreFailureKeepsDraft(t *testing.T) {
	session, st := newTestSession()
	st.err = errors.New("disk full")
	before := session.Canonical().Clone()

	session.Begin()
	session.SetInvoiceNo("TMECH0300")
	if err := session.Commit(context.Background()); err == nil {
		t.Fatal("expected commit error")
	}

	if !session.Editing() {
		t.Fatal("draft discarded on failed commit")
	}
	if !reflect.DeepEqual(session.Canonical(), before) {
		t.Fatal("canonical replaced despite failed persist")
	}
}

func TestCommit_WithoutDraftIsNoOp(t *testing.T) {
	session, st := newTestSession()
	if err := session.Commit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.saved != nil {
		t.Fatal("commit without draft wrote to the store")
	}
}

func TestRemoveLastItem_Refused(t *testing.T) {
	session, _ := newTestSession()
	session.Begin()

	// Whittle down to one item
	session.RemoveItem(2)
	if got := len(session.Draft().Items); got != 1 {
		t.Fatalf("expected 1 item, got %d", got)
	}

	// Removing the last one is silently refused
	session.RemoveItem(1)
	if got := len(session.Draft().Items); got != 1 {
		t.Fatalf("last item was removed: %d items", got)
	}
	if session.Draft().Items[0].ID != 1 {
		t.Fatalf("wrong surviving item: %d", session.Draft().Items[0].ID)
	}
}

func TestAddThenRemoveItem_RestoresSequence(t *testing.T) {
	session, _ := newTestSession()
	session.Begin()
	before := session.Draft().Clone()

	id := session.AddItem()
	if id == 0 {
		t.Fatal("expected a fresh item id")
	}
	added := session.Draft().FindItem(id)
	if added == nil {
		t.Fatal("added item not found")
	}
	if added.Description != "" || added.Price != 0 || added.Qty != 1 {
		t.Fatalf("new item has wrong defaults: %+v", added)
	}

	session.RemoveItem(id)
	if !reflect.DeepEqual(session.Draft().Items, before.Items) {
		t.Fatalf("sequence not restored:\n got %+v\nwant %+v", session.Draft().Items, before.Items)
	}
}

func TestSetItemPrice_CoercesBadInput(t *testing.T) {
	session, _ := newTestSession()
	session.Begin()

	session.SetItemPrice(1, "abc")
	if got := session.Draft().Items[0].Price; got != 0 {
		t.Fatalf("expected coerced price 0, got %v", got)
	}

	// Subtotal recomputes from the coerced value
	if got := Subtotal(session.Draft().Items); got != 120000 {
		t.Fatalf("expected subtotal 120000 after coercion, got %v", got)
	}
}

func TestSettersOutsideEditAreNoOps(t *testing.T) {
	session, _ := newTestSession()
	before := session.Canonical().Clone()

	session.SetInvoiceNo("NOPE")
	session.SetDiscount("12345")
	session.AddCustomInfo()
	session.RemoveItem(1)
	if id := session.AddItem(); id != 0 {
		t.Fatalf("AddItem outside edit returned id %d", id)
	}

	if !reflect.DeepEqual(session.Canonical(), before) {
		t.Fatal("mutations applied outside an edit")
	}
}

func TestCustomInfoOperations(t *testing.T) {
	session, _ := newTestSession()
	session.Begin()

	session.AddCustomInfo()
	n := len(session.Draft().CustomInfo)
	if n != 4 {
		t.Fatalf("expected 4 info lines, got %d", n)
	}
	session.SetCustomInfo(n-1, "Logo artwork supplied by client")
	if got := session.Draft().CustomInfo[n-1]; got != "Logo artwork supplied by client" {
		t.Fatalf("info line not updated: %q", got)
	}

	// Unlike items, custom info can be emptied entirely
	for i := n - 1; i >= 0; i-- {
		session.RemoveCustomInfo(i)
	}
	if got := len(session.Draft().CustomInfo); got != 0 {
		t.Fatalf("expected no info lines, got %d", got)
	}

	// Out-of-range positions are no-ops
	session.RemoveCustomInfo(0)
	session.SetCustomInfo(5, "nope")
}

func TestUnknownItemID_NoOp(t *testing.T) {
	session, _ := newTestSession()
	session.Begin()
	before := session.Draft().Clone()

	session.SetItemDescription(999, "ghost")
	session.SetItemPrice(999, "100")
	session.RemoveItem(999)

	if !reflect.DeepEqual(session.Draft(), before) {
		t.Fatal("unknown item id mutated the draft")
	}
}
