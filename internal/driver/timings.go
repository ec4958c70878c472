package driver

import (
	"encoding/json"
	"fmt"

	"tungsten/internal/diag"
	"tungsten/internal/observ"
	"tungsten/internal/source"
)

// timingPayload is the JSON note of an OBS201 diagnostic.
type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// AppendTimings records the timer report as an OBS201 info diagnostic. A full
// bag is grown by one so the timings are never dropped.
func AppendTimings(bag *diag.Bag, kind, path string, timer *observ.Timer) {
	if bag == nil || timer == nil {
		return
	}
	if kind == "" {
		kind = "tokenize"
	}
	r := timer.Report()
	data, err := json.Marshal(timingPayload{Kind: kind, Path: path, TotalMS: r.TotalMS, Phases: r.Phases})
	if err != nil {
		return
	}

	msg := fmt.Sprintf("timings (%s): total %.2f ms", kind, r.TotalMS)
	if path != "" {
		msg += ": " + path
	}
	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{File: source.NoFileID}, msg).WithNote(string(data))
	if !bag.Add(d) {
		extra := diag.NewBag(1)
		extra.Add(d)
		bag.Merge(extra)
	}
}
