package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grindlemire/go-tiny/internal/debug"
	"github.com/grindlemire/go-tiny/internal/geom"
)

// fitResult is printed for operations that can fail geometrically.
type fitResult struct {
	Rect geom.Rect `json:"rect"`
	OK   bool      `json:"ok"`
}

type equalResult struct {
	Equal bool `json:"equal"`
}

type containsResult struct {
	Contains bool `json:"contains"`
}

// defaultTolerance is used by equal when no tolerance is given.
const defaultTolerance = 1e-9

// runRect implements the rect subcommand.
func runRect(w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tiny rect <op> <rect> [args...]")
	}

	result, err := evalRect(args[0], args[1:])
	if err != nil {
		return err
	}
	if debug.Enabled() {
		debug.Log("rect %s %v -> %v", args[0], args[1:], result)
	}
	return writeJSON(w, result)
}

// evalRect applies the named operation. The first argument is the receiver
// rect for every operation except from-points.
func evalRect(op string, args []string) (any, error) {
	if op == "from-points" {
		if err := wantArgs(op, args, 2, 2); err != nil {
			return nil, err
		}
		a, err := geom.ParsePoint(args[0])
		if err != nil {
			return nil, err
		}
		b, err := geom.ParsePoint(args[1])
		if err != nil {
			return nil, err
		}
		return geom.RectFromPoints(a, b), nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("%s: missing rect", op)
	}
	r, err := geom.ParseRect(args[0])
	if err != nil {
		return nil, err
	}
	rest := args[1:]

	switch op {
	case "anchor":
		if err := wantArgs(op, rest, 1, 1); err != nil {
			return nil, err
		}
		a, err := parseAnchor(rest[0])
		if err != nil {
			return nil, err
		}
		return r.Anchor(a), nil

	case "set-anchor":
		if err := wantArgs(op, rest, 2, 2); err != nil {
			return nil, err
		}
		a, err := parseAnchor(rest[0])
		if err != nil {
			return nil, err
		}
		p, err := geom.ParsePoint(rest[1])
		if err != nil {
			return nil, err
		}
		return r.WithAnchor(a, p), nil

	case "align":
		if err := wantArgs(op, rest, 2, 3); err != nil {
			return nil, err
		}
		ref, err := geom.ParseRect(rest[1])
		if err != nil {
			return nil, err
		}
		var opts []geom.AlignOption
		if len(rest) == 3 {
			m, err := parseFloat(rest[2])
			if err != nil {
				return nil, err
			}
			opts = append(opts, geom.Margin(m))
		}
		return align(r, rest[0], ref, opts)

	case "center":
		if err := wantArgs(op, rest, 1, 1); err != nil {
			return nil, err
		}
		p, err := geom.ParsePoint(rest[0])
		if err != nil {
			return nil, err
		}
		return r.CenterAt(p), nil

	case "contain", "bound":
		if err := wantArgs(op, rest, 1, 1); err != nil {
			return nil, err
		}
		ref, err := geom.ParseRect(rest[0])
		if err != nil {
			return nil, err
		}
		var res fitResult
		if op == "contain" {
			res.Rect, res.OK = r.ContainIn(ref)
		} else {
			res.Rect, res.OK = r.BoundBy(ref)
		}
		return res, nil

	case "translate", "polar":
		if err := wantArgs(op, rest, 2, 2); err != nil {
			return nil, err
		}
		a, err := parseFloat(rest[0])
		if err != nil {
			return nil, err
		}
		b, err := parseFloat(rest[1])
		if err != nil {
			return nil, err
		}
		if op == "polar" {
			return r.TranslatePolar(a, b), nil
		}
		return r.Translate(a, b), nil

	case "scale":
		if err := wantArgs(op, rest, 2, 3); err != nil {
			return nil, err
		}
		sw, err := parseFloat(rest[0])
		if err != nil {
			return nil, err
		}
		sh, err := parseFloat(rest[1])
		if err != nil {
			return nil, err
		}
		var opts []geom.ScaleOption
		if len(rest) == 3 {
			p, err := geom.ParsePoint(rest[2])
			if err != nil {
				return nil, err
			}
			opts = append(opts, geom.Pivot(p))
		}
		return r.Scale(sw, sh, opts...), nil

	case "inset":
		if err := wantArgs(op, rest, 1, 1); err != nil {
			return nil, err
		}
		edges, err := parseEdges(rest[0])
		if err != nil {
			return nil, err
		}
		return r.Inset(edges), nil

	case "flip":
		if err := wantArgs(op, rest, 1, 2); err != nil {
			return nil, err
		}
		c, err := geom.ParseRect(rest[0])
		if err != nil {
			return nil, err
		}
		axis := "both"
		if len(rest) == 2 {
			axis = rest[1]
		}
		switch axis {
		case "horizontal", "h":
			return r.FlipHorizontally(c), nil
		case "vertical", "v":
			return r.FlipVertically(c), nil
		case "both":
			return r.Flip(c), nil
		}
		return nil, fmt.Errorf("flip: unknown axis %q", axis)

	case "equal":
		if err := wantArgs(op, rest, 1, 2); err != nil {
			return nil, err
		}
		other, err := geom.ParseRect(rest[0])
		if err != nil {
			return nil, err
		}
		tol := defaultTolerance
		if len(rest) == 2 {
			if tol, err = parseFloat(rest[1]); err != nil {
				return nil, err
			}
		}
		return equalResult{Equal: geom.ApproxEqual(r, other, tol)}, nil

	case "contains":
		if err := wantArgs(op, rest, 1, 1); err != nil {
			return nil, err
		}
		p, err := geom.ParsePoint(rest[0])
		if err != nil {
			return nil, err
		}
		return containsResult{Contains: p.In(r)}, nil

	case "round":
		if err := wantArgs(op, rest, 0, 0); err != nil {
			return nil, err
		}
		return r.Round(), nil
	}

	return nil, fmt.Errorf("unknown rect operation: %s", op)
}

func align(r geom.Rect, mode string, ref geom.Rect, opts []geom.AlignOption) (geom.Rect, error) {
	switch mode {
	case "inner-left":
		return r.AlignInnerLeft(ref, opts...), nil
	case "outer-left":
		return r.AlignOuterLeft(ref, opts...), nil
	case "inner-right":
		return r.AlignInnerRight(ref, opts...), nil
	case "outer-right":
		return r.AlignOuterRight(ref, opts...), nil
	case "inner-top":
		return r.AlignInnerTop(ref, opts...), nil
	case "outer-top":
		return r.AlignOuterTop(ref, opts...), nil
	case "inner-bottom":
		return r.AlignInnerBottom(ref, opts...), nil
	case "outer-bottom":
		return r.AlignOuterBottom(ref, opts...), nil
	case "center":
		return r.AlignCenter(ref), nil
	}
	return geom.Rect{}, fmt.Errorf("align: unknown mode %q", mode)
}

func wantArgs(op string, args []string, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			return fmt.Errorf("%s: expected %d argument(s) after the rect, got %d", op, lo, len(args))
		}
		return fmt.Errorf("%s: expected %d to %d argument(s) after the rect, got %d", op, lo, hi, len(args))
	}
	return nil
}

func parseAnchor(s string) (geom.Anchor, error) {
	a, ok := geom.ParseAnchor(s)
	if !ok {
		return 0, fmt.Errorf("unknown anchor %q", s)
	}
	return a, nil
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

// parseEdges accepts either a single inset for all sides or four
// comma-separated values in top,right,bottom,left order.
func parseEdges(s string) (geom.Edges, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		f, err := parseFloat(p)
		if err != nil {
			return geom.Edges{}, err
		}
		vals[i] = f
	}

	switch len(vals) {
	case 1:
		return geom.EdgeAll(vals[0]), nil
	case 4:
		return geom.EdgeTRBL(vals[0], vals[1], vals[2], vals[3]), nil
	}
	return geom.Edges{}, fmt.Errorf("invalid edges %q: want 1 or 4 values", s)
}
