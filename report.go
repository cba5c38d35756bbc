package divbench

import (
	"fmt"
	"io"
)

// Reporter writes the fixed-width result table. One Reporter can serve
// several sweeps in sequence; each sweep opens with a Banner and a Header
// followed by one Row per divisor.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Banner writes the sweep title line for a domain.
func (r *Reporter) Banner(d Domain) {
	fmt.Fprintf(r.w, "\n%50s", "=== divbench "+d.String()+" benchmark ===\n\n")
}

// Header writes the column header row.
func (r *Reporter) Header() {
	fmt.Fprintf(r.w, "%6s%9s%8s%8s%8s%8s%8s%7s\n",
		"#", "system", "scalar", "scl_bf", "vector", "vec_bf", "gener", "algo")
}

// Row writes one divisor's results. Sum strategies report nanoseconds per
// element, generate reports nanoseconds per descriptor construction; an
// absent strategy prints -1.
func (r *Reporter) Row(res Result) {
	fmt.Fprintf(r.w, "%6s%8.3f%8.3f%8.3f%8.3f%8.3f%9.3f%4d\n",
		res.DivisorString(),
		res.PerElement(StrategyHardware),
		res.PerElement(StrategyScalar),
		res.PerElement(StrategyScalarBranchfree),
		res.PerElement(StrategyVector),
		res.PerElement(StrategyVectorBranchfree),
		res.PerGeneration(),
		res.Algo,
	)
}

// SweepEmitter returns an emit callback that prints the banner and header
// the first time each domain appears and one row per result. Wire it into
// Run or Sweep.
func (r *Reporter) SweepEmitter() func(Result) {
	started := false
	var last Domain
	return func(res Result) {
		if !started || res.Domain != last {
			r.Banner(res.Domain)
			r.Header()
			last = res.Domain
			started = true
		}
		r.Row(res)
	}
}
