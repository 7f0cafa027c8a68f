package utils

type Index []int

func NewIndex(N int) (I Index) {
	I = make(Index, N)
	return
}

func (I Index) Contains(val int) bool {
	for _, v := range I {
		if v == val {
			return true
		}
	}
	return false
}

// Intersect returns the ascending-order intersection of I and J,
// assuming both are in ascending order.
func (I Index) Intersect(J Index) (R Index) {
	var i, j int
	for i < len(I) && j < len(J) {
		switch {
		case I[i] < J[j]:
			i++
		case I[i] > J[j]:
			j++
		default:
			R = append(R, I[i])
			i++
			j++
		}
	}
	return
}

func (I Index) Apply(f func(val int) int) (R Index) {
	R = NewIndex(len(I))
	for i, val := range I {
		R[i] = f(val)
	}
	return
}
