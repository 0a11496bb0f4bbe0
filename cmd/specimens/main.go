// Command specimens samples, summarizes and shrinks integer generators from
// the command line.
//
//	specimens sample --min -50 --max 50 --linear --count 5
//	specimens sample --max 20 --trees --depth 2
//	specimens stats --max 99 --buckets 5 --runs 8
//	specimens shrink --max 1000 --below 10 --seed 42
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
