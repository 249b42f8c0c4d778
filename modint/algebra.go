package modint

// AddGroup is the group of residues modulo a fixed modulus under addition.
// It lets Modint serve as the element type of CumSum and friends.
type AddGroup struct {
	mod int64
}

// NewAddGroup returns the additive group modulo mod.
// Panics if mod is zero.
func NewAddGroup(mod int64) AddGroup {
	if mod == 0 {
		panic("modulus is zero")
	}
	return AddGroup{mod: mod}
}

func (g AddGroup) Op(x, y Modint) Modint {
	return x.Add(y)
}

func (g AddGroup) Identity() Modint {
	return Zero(g.mod)
}

func (g AddGroup) Inverse(x Modint) Modint {
	return x.Neg()
}

// MulMonoid is the monoid of residues modulo a fixed modulus under
// multiplication. Zero residues are absorbing, so it is a monoid only.
type MulMonoid struct {
	mod int64
}

// NewMulMonoid returns the multiplicative monoid modulo mod.
// Panics if mod is zero or one, where no identity residue exists.
func NewMulMonoid(mod int64) MulMonoid {
	if mod == 0 {
		panic("modulus is zero")
	}
	if mod == 1 {
		panic("one is not a residue modulo 1")
	}
	return MulMonoid{mod: mod}
}

func (m MulMonoid) Op(x, y Modint) Modint {
	return x.Mul(y)
}

func (m MulMonoid) Identity() Modint {
	return One(m.mod)
}
