package graphfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/glyphstack/tablepack/pkg/graph"
	"github.com/glyphstack/tablepack/pkg/repack"
)

// ErrBadStatus is returned by [ReadResult] for a status string other
// than "done" or "failed".
var ErrBadStatus = errors.New(`status must be "done" or "failed"`)

type resultJSON struct {
	Status     string         `json:"status"`
	Iterations int            `json:"iterations"`
	Order      []graph.NodeID `json:"order,omitempty"`
	Offsets    []offsetJSON   `json:"offsets,omitempty"`
	Overflows  []overflowJSON `json:"overflows,omitempty"`
}

type offsetJSON struct {
	Parent graph.NodeID `json:"parent"`
	Child  graph.NodeID `json:"child"`
	Field  int          `json:"field"`
	Width  int          `json:"width"`
	Offset int64        `json:"offset"`
}

type overflowJSON struct {
	Parent graph.NodeID `json:"parent"`
	Child  graph.NodeID `json:"child"`
	Field  int          `json:"field"`
	Width  int          `json:"width"`
	Offset int64        `json:"offset"`
}

// WriteResult encodes a repack result as indented JSON and writes it
// to w. Successful runs carry the layout order and resolved offsets;
// failed runs carry the unresolved overflows instead.
func WriteResult(res repack.Result, w io.Writer) error {
	out := resultJSON{
		Status:     res.Status.String(),
		Iterations: res.Iterations,
		Order:      res.Order,
	}
	for _, o := range res.Offsets {
		out.Offsets = append(out.Offsets, offsetJSON{
			Parent: o.Parent,
			Child:  o.Child,
			Field:  o.Field,
			Width:  widthToJSON(o.Width),
			Offset: o.Offset,
		})
	}
	for _, o := range res.Overflows {
		out.Overflows = append(out.Overflows, overflowJSON{
			Parent: o.Parent,
			Child:  o.Child,
			Field:  o.Field,
			Width:  widthToJSON(o.Width),
			Offset: o.Offset,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadResult decodes a repack result previously written with
// [WriteResult].
func ReadResult(r io.Reader) (repack.Result, error) {
	var data resultJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return repack.Result{}, fmt.Errorf("decode: %w", err)
	}

	var res repack.Result
	switch data.Status {
	case repack.StateDone.String():
		res.Status = repack.StateDone
	case repack.StateFailed.String():
		res.Status = repack.StateFailed
	default:
		return repack.Result{}, fmt.Errorf("status %q: %w", data.Status, ErrBadStatus)
	}
	res.Iterations = data.Iterations
	res.Order = data.Order
	for _, o := range data.Offsets {
		w, err := widthFromJSON(o.Width)
		if err != nil {
			return repack.Result{}, fmt.Errorf("offset %d→%d: %w", o.Parent, o.Child, err)
		}
		res.Offsets = append(res.Offsets, repack.ResolvedOffset{
			Parent: o.Parent,
			Child:  o.Child,
			Field:  o.Field,
			Width:  w,
			Offset: o.Offset,
		})
	}
	for _, o := range data.Overflows {
		w, err := widthFromJSON(o.Width)
		if err != nil {
			return repack.Result{}, fmt.Errorf("overflow %d→%d: %w", o.Parent, o.Child, err)
		}
		res.Overflows = append(res.Overflows, repack.Overflow{
			Parent: o.Parent,
			Child:  o.Child,
			Field:  o.Field,
			Width:  w,
			Offset: o.Offset,
		})
	}
	return res, nil
}

// ExportResult writes a repack result to a JSON file at path.
func ExportResult(res repack.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(res, f)
}
