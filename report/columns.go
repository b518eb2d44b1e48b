package report

import (
	"strconv"

	"github.com/cunkin375/rootfind/trace"
)

// notApplicable marks absent record fields in rendered output.
const notApplicable = "N/A"

// header returns the column titles for a method's trace table.
func header(m trace.Method) []string {
	switch m {
	case trace.MethodBisection:
		return []string{"n", "a_n", "b_n", "p_n", "f(p_n)", "error"}
	case trace.MethodNewton:
		return []string{"n", "p_n", "f(p_n)", "f'(p_n)", "error"}
	case trace.MethodSecant:
		return []string{"n", "p_n", "f(p_n)", "error"}
	default:
		// False position and fixed point: estimate and error only.
		return []string{"n", "p_n", "error"}
	}
}

// row renders one record into the method's column set.
func row(m trace.Method, r trace.Record) []string {
	switch m {
	case trace.MethodBisection:
		return []string{
			strconv.Itoa(r.Index),
			aux(r, trace.AuxLow),
			aux(r, trace.AuxHigh),
			num(r.Estimate),
			opt(r.FValue, r.HasFValue),
			opt(r.Error, r.HasError),
		}
	case trace.MethodNewton:
		return []string{
			strconv.Itoa(r.Index),
			num(r.Estimate),
			opt(r.FValue, r.HasFValue),
			aux(r, trace.AuxDerivative),
			opt(r.Error, r.HasError),
		}
	case trace.MethodSecant:
		return []string{
			strconv.Itoa(r.Index),
			num(r.Estimate),
			opt(r.FValue, r.HasFValue),
			opt(r.Error, r.HasError),
		}
	default:
		return []string{
			strconv.Itoa(r.Index),
			num(r.Estimate),
			opt(r.Error, r.HasError),
		}
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func opt(v float64, present bool) string {
	if !present {
		return notApplicable
	}

	return num(v)
}

func aux(r trace.Record, key string) string {
	v, ok := r.Aux[key]

	return opt(v, ok)
}
