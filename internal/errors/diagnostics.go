package errors

// Diagnostics accumulates translation results across a batch of files.
// Each individual file's translation is fail-fast (spec §7 policy) —
// this collector exists purely so a multi-file CLI run can report every
// failing file in one pass instead of stopping at the first.
type Diagnostics struct {
	Failures map[string]*TranslateError
	Order    []string
}

// NewDiagnostics returns an empty collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{Failures: make(map[string]*TranslateError)}
}

// Record stores the failure for a file. Passing a nil err clears any
// previously recorded failure for that file.
func (d *Diagnostics) Record(file string, err *TranslateError) {
	if err == nil {
		if _, seen := d.Failures[file]; seen {
			delete(d.Failures, file)
			for i, f := range d.Order {
				if f == file {
					d.Order = append(d.Order[:i], d.Order[i+1:]...)
					break
				}
			}
		}
		return
	}
	if _, seen := d.Failures[file]; !seen {
		d.Order = append(d.Order, file)
	}
	d.Failures[file] = err
}

// OK reports whether every recorded file translated without error.
func (d *Diagnostics) OK() bool { return len(d.Failures) == 0 }

// All returns every failure in the order files were first recorded.
func (d *Diagnostics) All() []*TranslateError {
	out := make([]*TranslateError, 0, len(d.Order))
	for _, f := range d.Order {
		out = append(out, d.Failures[f])
	}
	return out
}
