package proforma

import "fmt"

type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}
