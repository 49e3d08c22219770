package testing

// OpsNamed returns the ops whose Op field equals name, in paint order.
func OpsNamed(ops []DisplayOp, name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// TextOps returns the drawText ops whose text equals s.
func TextOps(ops []DisplayOp, s string) []DisplayOp {
	var out []DisplayOp
	for _, op := range OpsNamed(ops, "drawText") {
		if op.Params["text"] == s {
			out = append(out, op)
		}
	}
	return out
}

// RectOf extracts the serialized "rect" param as left, top, right, bottom.
func RectOf(op DisplayOp) (left, top, right, bottom float64) {
	r, _ := op.Params["rect"].(map[string]any)
	return asFloat(r["left"]), asFloat(r["top"]), asFloat(r["right"]), asFloat(r["bottom"])
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}
