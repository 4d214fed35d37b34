package art

import "github.com/ittokunvim/cratesio"

const (
	ErrCannotMix    cratesio.StringError = "Only two different primary colors can be mixed"
	ErrUnknownColor cratesio.StringError = "Unknown color"
)

// mixTable[a][b] is the result of mixing a and b, -1 where the mix is not defined
var mixTable = [3][3]SecondaryColor{
	Red:    {Red: -1, Yellow: Orange, Blue: Purple},
	Yellow: {Red: Orange, Yellow: -1, Blue: Green},
	Blue:   {Red: Purple, Yellow: Green, Blue: -1},
}

// Mix combines two different primary colors in equal amounts to create a secondary color.
// Mix is commutative
func Mix(a, b PrimaryColor) (SecondaryColor, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, cratesio.OperationError{Operation: "Mix", Input: [2]PrimaryColor{a, b}, Failure: ErrUnknownColor}
	}
	result := mixTable[a][b]
	if result < 0 {
		return 0, cratesio.OperationError{Operation: "Mix", Input: [2]PrimaryColor{a, b}, Failure: ErrCannotMix}
	}
	return result, nil
}
