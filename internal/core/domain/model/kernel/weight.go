package kernel

import (
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
)

// Weight is a declared shipment weight in kilograms. It is always strictly positive
// and finite once constructed.
type Weight struct {
	kg float64
}

// NewWeight validates kg > 0.
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a finite number", kg))
	}
	if kg <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", kg))
	}
	return Weight{kg: kg}, nil
}

// Kg returns the weight in kilograms.
func (w Weight) Kg() float64 {
	return w.kg
}

// Validate rejects the zero value.
func (w Weight) Validate() error {
	if w.kg <= 0 {
		return errs.NewValueIsRequiredError("weight")
	}
	return nil
}

func (w Weight) String() string {
	return fmt.Sprintf("%.2fkg", w.kg)
}
