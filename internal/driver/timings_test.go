package driver

import (
	"encoding/json"
	"strings"
	"testing"

	"tungsten/internal/diag"
	"tungsten/internal/observ"
	"tungsten/internal/source"
)

func TestAppendTimingsOverflowsFullBag(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexIllegalChar, source.Span{}, "x"))

	timer := observ.NewTimer()
	timer.Track("lex")("")
	AppendTimings(bag, "", "main.tg", timer)

	if bag.Len() != 2 {
		t.Fatalf("timings diagnostic dropped, len %d", bag.Len())
	}
	d := bag.Items()[1]
	if d.Code != diag.ObsTimings || d.Severity != diag.SevInfo || !strings.HasPrefix(d.Message, "timings (tokenize): total") {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	var payload timingPayload
	if err := json.Unmarshal([]byte(d.Notes[0]), &payload); err != nil {
		t.Fatalf("note is not json: %v", err)
	}
	if payload.Path != "main.tg" || len(payload.Phases) != 1 {
		t.Fatalf("payload %+v", payload)
	}
}

func TestAppendTimingsNil(t *testing.T) {
	AppendTimings(nil, "x", "", observ.NewTimer())
	bag := diag.NewBag(1)
	AppendTimings(bag, "x", "", nil)
	if bag.Len() != 0 {
		t.Fatal("nil timer must not add anything")
	}
}
