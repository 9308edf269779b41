//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=steps_test
package steps

import (
	"booking/internal/entities"
)

type StepValidator interface {
	IsStepValid(step entities.Step) bool
}
