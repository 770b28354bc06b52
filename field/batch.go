package field

// BatchInvert inverts every nonzero element of v in place using
// Montgomery's trick: one field inversion plus 3(n-1) multiplications.
// Zero entries pass through untouched.
func (p *Params) BatchInvert(v []Element) {
	one := p.one
	p.batchInvertAndMul(v, &one)
}

// batchInvertAndMul sets each nonzero v[i] to coeff·v[i]⁻¹.
func (p *Params) batchInvertAndMul(v []Element, coeff *Element) {
	// First pass: prefix products of the nonzero entries.
	prod := make([]Element, 0, len(v))
	tmp := p.one
	for i := range v {
		if v[i].IsZero() {
			continue
		}
		p.Mul(&tmp, &tmp, &v[i])
		prod = append(prod, tmp)
	}
	if len(prod) == 0 {
		return
	}

	if !p.Inverse(&tmp, &tmp) {
		// product of nonzero elements in a field is nonzero
		panic("field: batch inversion product is zero")
	}
	p.Mul(&tmp, &tmp, coeff)

	// Second pass, backwards: peel one inverse off the running product.
	k := len(prod) - 1
	for i := len(v) - 1; i >= 0; i-- {
		if v[i].IsZero() {
			continue
		}
		var newTmp Element
		p.Mul(&newTmp, &tmp, &v[i])
		if k > 0 {
			p.Mul(&v[i], &tmp, &prod[k-1])
		} else {
			v[i] = tmp
		}
		tmp = newTmp
		k--
	}
}
