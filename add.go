package cratesio

import "strings"

// AddOne Adds one to the number given. AddOne(MaxInt) wraps to MinInt
func AddOne(x int) int {
	return x + 1
}

// AddOneChecked Adds one to the number given or fail with ErrOverflow when x is MaxInt
func AddOneChecked(x int) (int, error) {
	if x == MaxInt {
		return 0, OperationError{Operation: "AddOne", Input: x, Failure: ErrOverflow}
	}
	return x + 1, nil
}

// AddOneSaturating Adds one to the number given, stopping at MaxInt
func AddOneSaturating(x int) int {
	if x == MaxInt {
		return MaxInt
	}
	return x + 1
}

//region OverflowPolicy
// OverflowPolicy what to do when adding one to MaxInt
type OverflowPolicy int

const (
	Wrap OverflowPolicy = iota
	Fail
	Saturate
)

var overflowPolicyNames = []string{"wrap", "fail", "saturate"}

func (this OverflowPolicy) IsValid() bool {
	return this >= 0 && int(this) < len(overflowPolicyNames)
}
func (this OverflowPolicy) String() string {
	if !this.IsValid() {
		return "unknown"
	}
	return overflowPolicyNames[this]
}

// ParseOverflowPolicy parse name of a policy, ignoring its case and surrounding spaces
func ParseOverflowPolicy(name string) (OverflowPolicy, error) {
	i := FindStringNC(overflowPolicyNames, strings.TrimSpace(name))
	if i == -1 {
		return Wrap, OperationError{Operation: "ParseOverflowPolicy", Input: name, Failure: ErrUnknownPolicy}
	}
	return OverflowPolicy(i), nil
}

//endregion

//region Incrementer
// Incrementer apply AddOne with a fixed OverflowPolicy.
// It holds no mutable state, so a single value may be shared between goroutines
type Incrementer struct {
	policy OverflowPolicy
}

func NewIncrementer(policy OverflowPolicy) (Incrementer, error) {
	if !policy.IsValid() {
		return Incrementer{}, OperationError{Operation: "NewIncrementer", Input: int(policy), Failure: ErrUnknownPolicy}
	}
	return Incrementer{policy: policy}, nil
}

func (this Incrementer) Policy() OverflowPolicy { return this.policy }

func (this Incrementer) AddOne(x int) (int, error) {
	switch this.policy {
	case Fail:
		return AddOneChecked(x)
	case Saturate:
		return AddOneSaturating(x), nil
	default:
		return AddOne(x), nil
	}
}

// AddOneAll increment every value of xs. Results of failed items are left as zero
// and every failure is reported through an AggregateError
func (this Incrementer) AddOneAll(xs []int) ([]int, error) {
	result := make([]int, len(xs))
	builder := AggregateErrorBuilder{}
	for i := 0; i < len(xs); i++ {
		value, err := this.AddOne(xs[i])
		if err != nil {
			builder.AddError(err)
			continue
		}
		result[i] = value
	}
	return result, builder.GetError()
}

//endregion
