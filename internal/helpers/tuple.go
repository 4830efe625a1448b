package helpers

type Pair[T, U any] struct {
	First  T
	Second U
}

func MakePair[T, U any](t T, u U) Pair[T, U] {
	return Pair[T, U]{First: t, Second: u}
}
