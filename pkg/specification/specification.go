// Package specification composes in-memory predicates.
package specification

// Specification is a predicate over T
type Specification[T any] interface {
	// IsSatisfiedBy checks if the specification is satisfied by the candidate
	IsSatisfiedBy(candidate T) bool
}

// Func adapts a plain predicate.
type Func[T any] func(candidate T) bool

// IsSatisfiedBy calls f.
func (f Func[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}

// All is satisfied by every candidate.
func All[T any]() Specification[T] {
	return Func[T](func(T) bool { return true })
}

// And is satisfied when every spec is. An empty And matches everything.
func And[T any](specs ...Specification[T]) Specification[T] {
	return andSpecification[T](specs)
}

// Filter returns the candidates satisfying spec, in input order.
// The result is never nil.
func Filter[T any](candidates []T, spec Specification[T]) []T {
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if spec.IsSatisfiedBy(c) {
			out = append(out, c)
		}
	}
	return out
}

type andSpecification[T any] []Specification[T]

func (s andSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s {
		if !spec.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}
