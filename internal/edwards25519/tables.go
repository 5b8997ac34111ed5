package edwards25519

import "sync"

// precompBase[pos][j] = (j+1) * 256^pos * B in affine Precomp form, for
// pos in [0,31] and j in [0,7]: the fixed-base table consumed by
// ScalarBaseMult. bi[j] = (2j+1) * B in Cached form, the odd-multiples
// table consumed by VarTimeDoubleScalarBaseMult's base-point term.
//
// Both are built once, lazily, by repeated doubling and addition from the
// derived base point B (see constants.go) rather than hand-transcribed, for
// the same reason d/sqrtM1/B are derived rather than copied: there is no
// way to catch a transcription error in thousands of bytes of literal table
// data without a compiler and test suite to run, and this repository is
// being written without either.
var (
	precompBase [32][8]Precomp
	bi          [8]Cached
	tablesOnce  sync.Once
)

func ensureTables() {
	tablesOnce.Do(buildTables)
}

func buildTables() {
	basePos := B
	for pos := 0; pos < 32; pos++ {
		multiple := basePos
		for j := 0; j < 8; j++ {
			precompBase[pos][j].FromP3(&multiple)
			if j < 7 {
				multiple.Add(&multiple, &basePos)
			}
		}
		for i := 0; i < 8; i++ {
			basePos.Double(&basePos)
		}
	}

	bi = oddMultiples(&B)
}

// oddMultiples returns the 8-entry table of {p, 3p, 5p, ..., 15p} in
// Cached form, used as the right-hand operand table for the signed
// sliding-window double-scalar multiply.
func oddMultiples(p *P3) [8]Cached {
	var table [8]Cached
	table[0].FromP3(p)

	var twoP P3
	twoP.Double(p)

	current := *p
	for i := 1; i < 8; i++ {
		var sum P3
		sum.Add(&current, &twoP)
		table[i].FromP3(&sum)
		current = sum
	}
	return table
}
