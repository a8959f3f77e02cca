package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	original := Event{
		Timestamp: ts,
		SessionID: "6f1c2d3e-4a5b-4c6d-8e7f-0123456789ab",
		Direction: DirectionOut,
		Category:  CategoryMessage,
		Source:    "out/1718000000.syx",
		Index:     3,
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.SessionID != original.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, original.SessionID)
	}
	if decoded.Direction != original.Direction {
		t.Errorf("Direction: got %v, want %v", decoded.Direction, original.Direction)
	}
	if decoded.Category != original.Category {
		t.Errorf("Category: got %v, want %v", decoded.Category, original.Category)
	}
	if decoded.Source != original.Source {
		t.Errorf("Source: got %q, want %q", decoded.Source, original.Source)
	}
	if decoded.Index != original.Index {
		t.Errorf("Index: got %d, want %d", decoded.Index, original.Index)
	}
}

func TestMessageEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		SessionID: "s-1",
		Direction: DirectionIn,
		Category:  CategoryMessage,
		Message: &MessageEvent{
			Size:             6,
			Variant:          VariantManufacturer,
			Manufacturer:     "42",
			ManufacturerName: "Korg",
			Digest:           "d41d8cd98f00b204e9800998ecf8427e",
			Data:             []byte{0xF0, 0x42, 0x30, 0x28, 0x54, 0xF7},
			Skipped:          2,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	m := decoded.Message
	if m == nil {
		t.Fatal("Message is nil after decode")
	}
	if m.Size != 6 || m.Variant != VariantManufacturer {
		t.Errorf("Size/Variant: got %d/%v", m.Size, m.Variant)
	}
	if m.Manufacturer != "42" || m.ManufacturerName != "Korg" {
		t.Errorf("Manufacturer: got %q %q", m.Manufacturer, m.ManufacturerName)
	}
	if m.Digest != original.Message.Digest {
		t.Errorf("Digest: got %q", m.Digest)
	}
	if !bytes.Equal(m.Data, original.Message.Data) {
		t.Errorf("Data: got % X", m.Data)
	}
	if m.Skipped != 2 {
		t.Errorf("Skipped: got %d, want 2", m.Skipped)
	}
	if decoded.Session != nil || decoded.Error != nil {
		t.Error("unexpected payload set after decode")
	}
}

func TestSessionEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		SessionID: "s-2",
		Category:  CategorySession,
		Session:   &SessionEvent{Command: "split", State: SessionEnded, Messages: 12},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.Session == nil {
		t.Fatal("Session is nil after decode")
	}
	if *decoded.Session != *original.Session {
		t.Errorf("Session: got %+v, want %+v", *decoded.Session, *original.Session)
	}
}

func TestErrorEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		SessionID: "s-3",
		Category:  CategoryError,
		Source:    "bank.syx",
		Error: &ErrorEventData{
			Kind:    "MALFORMED_FRAMING",
			Message: "malformed framing at offset 0",
			Context: "parse",
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if decoded.Error == nil {
		t.Fatal("Error is nil after decode")
	}
	if *decoded.Error != *original.Error {
		t.Errorf("Error: got %+v, want %+v", *decoded.Error, *original.Error)
	}
}

func TestEventCBORUsesIntegerKeys(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		SessionID: "s-4",
		Direction: DirectionIn,
		Category:  CategoryMessage,
		Source:    "stdin",
		Index:     1,
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	var rawMap map[uint64]any
	if err := captureDec.Unmarshal(data, &rawMap); err != nil {
		t.Fatalf("failed to decode as map: %v", err)
	}
	for _, key := range []uint64{1, 2, 3, 4, 5, 6} {
		if _, ok := rawMap[key]; !ok {
			t.Errorf("expected integer key %d not found in encoded data", key)
		}
	}

	var stringMap map[string]any
	if err := captureDec.Unmarshal(data, &stringMap); err == nil && len(stringMap) > 0 {
		t.Error("encoded data contains string keys, expected integer keys only")
	}
}

func TestDecodeEventRejectsDuplicateKeys(t *testing.T) {
	// {1: "a", 1: "b"}
	data := []byte{0xA2, 0x01, 0x61, 'a', 0x01, 0x61, 'b'}
	if _, err := DecodeEvent(data); err == nil {
		t.Error("expected error for duplicate map key")
	}
}

func TestDecodeEventRejectsIndefiniteLength(t *testing.T) {
	// {_ 2: "s"}
	data := []byte{0xBF, 0x02, 0x61, 's', 0xFF}
	if _, err := DecodeEvent(data); err == nil {
		t.Error("expected error for indefinite-length map")
	}
}
