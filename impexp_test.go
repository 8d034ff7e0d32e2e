package pennywise

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// snapshotBytes encodes the dataset with a zeroed export stamp, for
// byte-level comparisons between datasets.
func snapshotBytes(t *testing.T, l *Ledger) string {
	t.Helper()
	s := l.Snapshot()
	s.ExportedAt = 0
	data, err := json.Marshal(snapshotProxy(s))
	if err != nil {
		t.Fatalf("cannot marshal snapshot: %v", err)
	}
	return string(data)
}

func TestEncodeDecodeSnapshot(t *testing.T) {
	l := newTestLedger()
	l.RecordPrice("5000112637922", "Lidl", 150, false, "Milk 1L")
	l.RecordPrice("5000112637922", "Lidl", 140, false, "")
	l.RecordPrice("5000112637922", "Aldi", 120, true, "")
	l.RegisterBrand("Carrefour")

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, l); err != nil {
		t.Fatalf("EncodeSnapshot() = %v want nil", err)
	}

	snap, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot() = %v want nil", err)
	}
	if snap.Version != CurrentSchemaVersion {
		t.Errorf("Version = %v want %v", snap.Version, CurrentSchemaVersion)
	}
	if snap.ExportedAt == 0 {
		t.Error("ExportedAt = 0 want a stamp")
	}
	if got := []string{"Aldi", "Carrefour", "Lidl"}; !reflect.DeepEqual(snap.Brands, got) {
		t.Errorf("Brands = %v want %v", snap.Brands, got)
	}

	// A snapshot merged into a fresh ledger reproduces the dataset.
	restored := newTestLedger()
	restored.Merge(snap)
	if got, want := snapshotBytes(t, restored), snapshotBytes(t, l); got != want {
		t.Errorf("restored dataset differs:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeSnapshot_emptyDataset(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, newTestLedger()); err != nil {
		t.Fatalf("EncodeSnapshot() = %v want nil", err)
	}
	// The format promises sequences even when empty.
	if s := buf.String(); !strings.Contains(s, `"products": []`) || !strings.Contains(s, `"brands": []`) {
		t.Errorf("empty export must contain empty sequences, got:\n%s", s)
	}
}

func TestDecodeSnapshot_rejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{]`},
		{"missing products", `{"brands":[],"exportedAt":1,"version":1}`},
		{"products not a sequence", `{"products":{},"brands":[],"exportedAt":1,"version":1}`},
		{"missing brands", `{"products":[],"exportedAt":1,"version":1}`},
		{"brands not a sequence", `{"products":[],"brands":"Lidl","exportedAt":1,"version":1}`},
		{"version zero", `{"products":[],"brands":[],"exportedAt":1,"version":0}`},
		{"empty barcode", `{"products":[{"barcode":"","name":"x","supermarkets":[]}],"brands":[],"exportedAt":1,"version":1}`},
		{"empty brand", `{"products":[{"barcode":"1","name":"x","supermarkets":[{"brand":"","fullPriceHistory":[],"discountedPrice":null}]}],"brands":[],"exportedAt":1,"version":1}`},
		{"duplicate brand entries", `{"products":[{"barcode":"1","name":"x","supermarkets":[{"brand":"Lidl","fullPriceHistory":[],"discountedPrice":null},{"brand":"LIDL","fullPriceHistory":[],"discountedPrice":null}]}],"brands":[],"exportedAt":1,"version":1}`},
		{"negative price", `{"products":[{"barcode":"1","name":"x","supermarkets":[{"brand":"Lidl","fullPriceHistory":[{"price":-1,"timestamp":1}],"discountedPrice":null}]}],"brands":[],"exportedAt":1,"version":1}`},
		{"negative discount", `{"products":[{"barcode":"1","name":"x","supermarkets":[{"brand":"Lidl","fullPriceHistory":[],"discountedPrice":{"price":-1,"timestamp":1}}]}],"brands":[],"exportedAt":1,"version":1}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSnapshot(strings.NewReader(tc.doc)); err == nil {
				t.Error("DecodeSnapshot() = nil want an error")
			}
		})
	}
}

func TestDecodeSnapshot_sortsAndDedupsHistory(t *testing.T) {
	// A hand-edited file with an unsorted, duplicated history decodes into a
	// sorted history with unique timestamps.
	doc := `{"products":[{"barcode":"1","name":"x","supermarkets":[
		{"brand":"Lidl","fullPriceHistory":[
			{"price":120,"timestamp":3000},
			{"price":100,"timestamp":1000},
			{"price":110,"timestamp":3000}],
		 "discountedPrice":null}]}],
		"brands":["Lidl"],"exportedAt":1,"version":1}`

	snap, err := DecodeSnapshot(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeSnapshot() = %v want nil", err)
	}

	var got []int64
	for rec := range snap.Products[0].Supermarket("Lidl").FullPrices() {
		got = append(got, rec.Timestamp)
	}
	want := []int64{1000, 3000}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("timestamps = %v want sorted unique %v", got, want)
	}
}

func TestDecodeSnapshot_defaultsNameToBarcode(t *testing.T) {
	doc := `{"products":[{"barcode":"123","name":"","supermarkets":[]}],"brands":[],"exportedAt":1,"version":1}`
	snap, err := DecodeSnapshot(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeSnapshot() = %v want nil", err)
	}
	if got := snap.Products[0].Name(); got != "123" {
		t.Errorf("Name() = %q want the barcode placeholder", got)
	}
}
