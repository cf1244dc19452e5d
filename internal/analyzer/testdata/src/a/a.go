package a

func keepOperand(x bool) bool {
	return x && true // want "boolean expression can be simplified to `x`"
}

func dropPureRight(ready bool) bool {
	return ready || true // want "boolean expression can be simplified to `true`"
}

func constGuard(n int) int {
	if true || n > 0 { // want "boolean expression can be simplified to `true`" "condition `true \\|\\| n > 0` is always true"
		return n
	}
	return 0
}

func clean(a, b bool) bool {
	return a && b
}
