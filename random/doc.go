// Package random is the base generation monad: a function of (Seed, Size)
// producing a lazy sequence of values, each paired with the seed left over
// after producing it.
//
// Threading the left-over seed is what keeps compositions reproducible: Bind
// runs its continuation with the seed its first stage handed back, and Repeat
// starts every draw from the seed the previous draw left behind.
//
//	dice := random.Integral(numeric.Int, numeric.Constant(numeric.Int, 1, 6))
//	for p := range sequence.Take(dice.Repeat().Run(seed.New(1), 0), 3) {
//		fmt.Println(p.Value)
//	}
package random
