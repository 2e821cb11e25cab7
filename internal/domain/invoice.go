package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// InvoiceRecord is the whole document. It is replaced wholesale on every
// save; derived totals are never stored on it.
type InvoiceRecord struct {
	InvoiceNo   string     `json:"invoiceNo"`
	InvoiceDate string     `json:"invoiceDate"`
	DueDate     string     `json:"dueDate"`
	BillTo      BillTo     `json:"billTo"`
	Items       []LineItem `json:"items"`
	Discount    float64    `json:"discount"`
	DeliveryFee float64    `json:"deliveryFee"`
	CustomInfo  []string   `json:"customInfo"`
}

// BillTo identifies the invoiced party.
type BillTo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// LineItem is one billable row. ID is the identity key for in-place edits
// and removal within a record.
type LineItem struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Qty         float64 `json:"qty"`
}

// DefaultInvoice returns the built-in starter record shown before any
// edit has ever been saved.
func DefaultInvoice() *InvoiceRecord {
	return &InvoiceRecord{
		InvoiceNo:   "TMECH0199",
		InvoiceDate: "14 Oct, 2025",
		DueDate:     "04 Nov, 2025",
		BillTo: BillTo{
			Name:    "FROSHTECH ACADEMY",
			Address: "km 16, Jakande bustop Lekki, Lagos",
		},
		Items: []LineItem{
			{ID: 1, Description: "Student Uniform (12M & 12 L)", Price: 15000, Qty: 24},
			{ID: 2, Description: "Standard Face Caps", Price: 5000, Qty: 24},
		},
		Discount:    0,
		DeliveryFee: 0,
		CustomInfo: []string{
			"Delivery fee = on the client",
			"Fabric color = Navy Blue and Maroon",
			"Branding = Company logo",
		},
	}
}

// Clone returns a deep copy. The copy shares no backing arrays with the
// receiver, so edits to one are never observable on the other.
func (r *InvoiceRecord) Clone() *InvoiceRecord {
	c := *r
	c.Items = make([]LineItem, len(r.Items))
	copy(c.Items, r.Items)
	c.CustomInfo = make([]string, len(r.CustomInfo))
	copy(c.CustomInfo, r.CustomInfo)
	return &c
}

// FindItem returns a pointer to the item with the given id, or nil.
func (r *InvoiceRecord) FindItem(id int64) *LineItem {
	for i := range r.Items {
		if r.Items[i].ID == id {
			return &r.Items[i]
		}
	}
	return nil
}

// NextItemID generates an id for a new line item. Ids are creation
// timestamps bumped past anything already in the sequence, so rapid
// successive adds stay distinct within one record.
func NextItemID(items []LineItem) int64 {
	id := time.Now().UnixMilli()
	for {
		taken := false
		for i := range items {
			if items[i].ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
		id++
	}
}

// CoerceNumber turns free-form input into a finite amount. Anything that
// does not parse to a finite non-negative number becomes 0, never an
// error.
func CoerceNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}
