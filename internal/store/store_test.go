package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/danielblac/tmech-invoice/internal/domain"
)

func testStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	return NewFileStore(path, zerolog.Nop()), path
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	st, _ := testStore(t)

	rec, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(rec, domain.DefaultInvoice()) {
		t.Fatalf("expected default record, got %+v", rec)
	}
}

func TestLoad_MalformedFileReturnsDefault(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"garbage", "not json at all"},
		{"wrong shape", `[1, 2, 3]`},
		{"missing key", `{"other_app_data": "{}"}`},
		{"bad record blob", `{"tmech_invoice_data": "{\"items\": 42}"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, path := testStore(t)
			if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
				t.Fatal(err)
			}

			rec, err := st.Load(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(rec, domain.DefaultInvoice()) {
				t.Fatalf("expected default record, got %+v", rec)
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	st, _ := testStore(t)
	ctx := context.Background()

	want := domain.DefaultInvoice()
	want.InvoiceNo = "TMECH0231"
	want.Discount = 2500
	want.Items = append(want.Items, domain.LineItem{ID: 3, Description: "Embroidery setup", Price: 8000, Qty: 1})

	if err := st.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSave_PreservesForeignKeys(t *testing.T) {
	st, path := testStore(t)
	ctx := context.Background()

	seed := `{"other_app_data": "keep me"}`
	if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
		t.Fatal(err)
	}

	if err := st.Save(ctx, domain.DefaultInvoice()); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var blobs map[string]string
	if err := json.Unmarshal(data, &blobs); err != nil {
		t.Fatalf("data file not a string map after save: %v", err)
	}
	if blobs["other_app_data"] != "keep me" {
		t.Errorf("foreign key lost: %q", blobs["other_app_data"])
	}
	if _, ok := blobs[RecordKey]; !ok {
		t.Errorf("record key %q missing after save", RecordKey)
	}
}

func TestLoad_OlderBlobWithoutDeliveryFee(t *testing.T) {
	st, path := testStore(t)

	blob := `{"invoiceNo":"TMECH0150","invoiceDate":"01 Jan, 2025","dueDate":"15 Jan, 2025",` +
		`"billTo":{"name":"ACME","address":"Lagos"},` +
		`"items":[{"id":1,"description":"Caps","price":5000,"qty":10}],` +
		`"discount":0,"customInfo":[]}`
	file, err := json.Marshal(map[string]string{RecordKey: blob})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, file, 0644); err != nil {
		t.Fatal(err)
	}

	rec, err := st.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.InvoiceNo != "TMECH0150" {
		t.Fatalf("stored record not loaded: %+v", rec)
	}
	if rec.DeliveryFee != 0 {
		t.Errorf("absent deliveryFee should load as 0, got %v", rec.DeliveryFee)
	}
}

func TestSave_CreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "data.json")
	st := NewFileStore(path, zerolog.Nop())

	if err := st.Save(context.Background(), domain.DefaultInvoice()); err != nil {
		t.Fatalf("save into missing dir: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("data file not created: %v", err)
	}
}
