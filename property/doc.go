// Package property runs properties against generators and minimizes the
// counterexamples it finds.
//
// Check draws up to WithTrials accepted shrink trees. On the first value
// that falsifies the property it walks the tree greedily, always moving to
// the first shrink that still fails, and reports the smallest value reached.
//
//	r := property.Check(specimens.Integer(numeric.Constant(numeric.Int, 0, 1000)),
//		func(x int) bool { return x == 0 })
//	if !r.Passed {
//		fmt.Println(r.Counterexample) // 1
//	}
//
// Runs are reproducible: the seed is taken from WithSeed, then from the
// SPECIMENS_SEED environment variable, then from the clock, and is always
// reported. For use inside tests, For fails the test with the report.
package property
