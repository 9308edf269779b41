package steps

import (
	"fmt"

	"booking/internal/entities"
	"github.com/samber/lo"
)

// Controller линейный мастер из четырех шагов, активен всегда ровно один шаг.
// Не потокобезопасен, как и form.Form.
type Controller struct {
	validator StepValidator
	current   entities.Step
	states    [entities.TotalSteps]entities.StepState
}

func New(validator StepValidator) *Controller {
	c := &Controller{validator: validator}
	c.Reset()
	return c
}

func (c *Controller) Current() entities.Step {
	return c.current
}

func (c *Controller) States() []entities.StepState {
	return append([]entities.StepState(nil), c.states[:]...)
}

func (c *Controller) IsCompleted(step entities.Step) bool {
	if !step.Valid() {
		return false
	}
	return c.state(step).IsCompleted
}

// Next переводит на следующий шаг только если текущий валиден.
// На последнем шаге только отмечает его завершенным.
func (c *Controller) Next() (entities.Step, error) {
	if !c.validator.IsStepValid(c.current) {
		return c.current, fmt.Errorf("%w: %s", ErrStepInvalid, c.current)
	}

	if c.current == entities.LastStep {
		c.state(c.current).IsCompleted = true
		return c.current, nil
	}

	done := c.state(c.current)
	done.IsCompleted = true
	done.IsActive = false

	c.current++
	c.state(c.current).IsActive = true
	return c.current, nil
}

// Previous при возврате снимает отметку завершения, шаг придется пройти заново.
func (c *Controller) Previous() (entities.Step, error) {
	if c.current == entities.FirstStep {
		return c.current, ErrFirstStep
	}

	c.state(c.current).IsActive = false
	c.current--

	back := c.state(c.current)
	back.IsActive = true
	back.IsCompleted = false
	return c.current, nil
}

// GoTo не трогает отметки завершения. Вперед можно только если предыдущий шаг завершен.
func (c *Controller) GoTo(step entities.Step) (entities.Step, error) {
	if !step.Valid() {
		return c.current, fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	if step > c.current && !c.state(step-1).IsCompleted {
		return c.current, fmt.Errorf("%w: %s", ErrStepLocked, step-1)
	}

	c.state(c.current).IsActive = false
	c.current = step
	c.state(c.current).IsActive = true
	return c.current, nil
}

func (c *Controller) Reset() {
	c.current = entities.FirstStep
	for i := range c.states {
		c.states[i] = entities.StepState{Number: entities.Step(i + 1)}
	}
	c.state(c.current).IsActive = true
}

// Restore применяет шаг и отметки из черновика. Активность всегда выводится из current,
// поэтому испорченные флаги не могут дать два активных шага.
func (c *Controller) Restore(current entities.Step, states []entities.StepState) error {
	if !current.Valid() {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, current)
	}

	completed := lo.SliceToMap(
		lo.Filter(states, func(s entities.StepState, _ int) bool { return s.Number.Valid() }),
		func(s entities.StepState) (entities.Step, bool) { return s.Number, s.IsCompleted },
	)

	c.current = current
	for i := range c.states {
		number := entities.Step(i + 1)
		c.states[i] = entities.StepState{
			Number:      number,
			IsActive:    number == current,
			IsCompleted: completed[number],
		}
	}
	return nil
}

func (c *Controller) state(step entities.Step) *entities.StepState {
	return &c.states[step-1]
}
