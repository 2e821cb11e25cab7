package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/danielblac/tmech-invoice/internal/domain"
	"github.com/danielblac/tmech-invoice/internal/store"
)

// EditSession manages the two-phase edit workflow: a canonical record that
// is displayed and printed, and an optional draft that stages edits until
// they are committed or cancelled. Only one of view/edit is ever active;
// all transitions are synchronous.
type EditSession struct {
	canonical *domain.InvoiceRecord
	draft     *domain.InvoiceRecord
	store     store.RecordStore
	log       zerolog.Logger
}

// NewEditSession creates a session over the given canonical record.
func NewEditSession(rec *domain.InvoiceRecord, st store.RecordStore, log zerolog.Logger) *EditSession {
	return &EditSession{canonical: rec, store: st, log: log}
}

// Canonical returns the record currently displayed and printed.
func (s *EditSession) Canonical() *domain.InvoiceRecord {
	return s.canonical
}

// Draft returns the staged record, or nil outside an edit.
func (s *EditSession) Draft() *domain.InvoiceRecord {
	return s.draft
}

// Editing reports whether a draft exists.
func (s *EditSession) Editing() bool {
	return s.draft != nil
}

// Begin opens an edit by deep-copying the canonical record into a draft.
// Re-entering an open edit keeps the existing draft.
func (s *EditSession) Begin() {
	if s.draft != nil {
		return
	}
	s.draft = s.canonical.Clone()
}

// Cancel discards the draft unconditionally; the canonical record is
// untouched.
func (s *EditSession) Cancel() {
	s.draft = nil
}

// Commit promotes the draft to canonical by value, persists it under the
// fixed storage key, and closes the edit. This is the only operation with
// an external side effect.
func (s *EditSession) Commit(ctx context.Context) error {
	if s.draft == nil {
		return nil
	}
	next := s.draft.Clone()
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("persist record: %w", err)
	}
	s.canonical = next
	s.draft = nil
	s.log.Info().Str("invoice_no", next.InvoiceNo).Msg("invoice committed")
	return nil
}

// Scalar setters. Each mutates only the draft and is a no-op outside an
// edit. Numeric fields coerce bad input to 0.

func (s *EditSession) SetInvoiceNo(v string) {
	if s.draft != nil {
		s.draft.InvoiceNo = v
	}
}

func (s *EditSession) SetInvoiceDate(v string) {
	if s.draft != nil {
		s.draft.InvoiceDate = v
	}
}

func (s *EditSession) SetDueDate(v string) {
	if s.draft != nil {
		s.draft.DueDate = v
	}
}

func (s *EditSession) SetBillToName(v string) {
	if s.draft != nil {
		s.draft.BillTo.Name = v
	}
}

func (s *EditSession) SetBillToAddress(v string) {
	if s.draft != nil {
		s.draft.BillTo.Address = v
	}
}

func (s *EditSession) SetDiscount(v string) {
	if s.draft != nil {
		s.draft.Discount = domain.CoerceNumber(v)
	}
}

func (s *EditSession) SetDeliveryFee(v string) {
	if s.draft != nil {
		s.draft.DeliveryFee = domain.CoerceNumber(v)
	}
}

// AddItem appends a fresh line item (empty description, price 0, qty 1)
// and returns its id, or 0 outside an edit.
func (s *EditSession) AddItem() int64 {
	if s.draft == nil {
		return 0
	}
	id := domain.NextItemID(s.draft.Items)
	s.draft.Items = append(s.draft.Items, domain.LineItem{ID: id, Qty: 1})
	return id
}

// RemoveItem deletes the item with the given id. Removal that would empty
// the sequence is silently refused; the record always keeps at least one
// row.
func (s *EditSession) RemoveItem(id int64) {
	if s.draft == nil || len(s.draft.Items) <= 1 {
		return
	}
	items := s.draft.Items[:0:0]
	for _, item := range s.draft.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	s.draft.Items = items
}

func (s *EditSession) SetItemDescription(id int64, v string) {
	if s.draft == nil {
		return
	}
	if item := s.draft.FindItem(id); item != nil {
		item.Description = v
	}
}

func (s *EditSession) SetItemPrice(id int64, v string) {
	if s.draft == nil {
		return
	}
	if item := s.draft.FindItem(id); item != nil {
		item.Price = domain.CoerceNumber(v)
	}
}

func (s *EditSession) SetItemQty(id int64, v string) {
	if s.draft == nil {
		return
	}
	if item := s.draft.FindItem(id); item != nil {
		item.Qty = domain.CoerceNumber(v)
	}
}

// AddCustomInfo appends an empty info line.
func (s *EditSession) AddCustomInfo() {
	if s.draft != nil {
		s.draft.CustomInfo = append(s.draft.CustomInfo, "")
	}
}

// RemoveCustomInfo deletes the line at the given position. Unlike items
// there is no minimum count; an out-of-range index is a no-op.
func (s *EditSession) RemoveCustomInfo(i int) {
	if s.draft == nil || i < 0 || i >= len(s.draft.CustomInfo) {
		return
	}
	s.draft.CustomInfo = append(s.draft.CustomInfo[:i], s.draft.CustomInfo[i+1:]...)
}

func (s *EditSession) SetCustomInfo(i int, v string) {
	if s.draft == nil || i < 0 || i >= len(s.draft.CustomInfo) {
		return
	}
	s.draft.CustomInfo[i] = v
}
