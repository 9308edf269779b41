package form

import (
	"fmt"

	"booking/internal/entities"
	"booking/internal/pkg/validation"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var fieldIndex = lo.KeyBy(registry, func(f field) string { return f.path })

// Form значения черновика и состояние валидации каждого поля.
// Не потокобезопасна, синхронизацию делает владеющая сессия.
type Form struct {
	validate *validator.Validate
	values   entities.BookingDraft
	states   map[string]entities.FieldState
}

func New(validate *validator.Validate) *Form {
	f := &Form{
		validate: validate,
		states:   make(map[string]entities.FieldState, len(registry)),
	}
	f.Reset()
	return f
}

// SetField меняет одно поле. Невалидное значение не ошибка: поле помечается невалидным с сообщением.
// Значение неподходящего типа не применяется, предыдущее значение сохраняется.
func (f *Form) SetField(path string, value any) (entities.FieldState, error) {
	fld, ok := fieldIndex[path]
	if !ok {
		return entities.FieldState{}, fmt.Errorf("%w: %s", ErrUnknownField, path)
	}

	err := fld.assign(&f.values, value)
	if err != nil {
		state := entities.FieldState{
			Path:    path,
			Valid:   false,
			Touched: true,
			Message: err.Error(),
		}
		f.states[path] = state
		return state, nil
	}

	state := f.check(fld)
	state.Touched = true
	f.states[path] = state
	return state, nil
}

func (f *Form) IsStepValid(step entities.Step) bool {
	if step == entities.StepReview {
		return f.IsStepValid(entities.StepCargo) &&
			f.IsStepValid(entities.StepRoute) &&
			f.IsStepValid(entities.StepCustomer)
	}
	if !step.Valid() {
		return false
	}

	for _, fld := range registry {
		if fld.step == step && !f.states[fld.path].Valid {
			return false
		}
	}
	return true
}

func (f *Form) IsValid() bool {
	return f.IsStepValid(entities.LastStep)
}

// Touch открывает сообщения всех полей шага, например после неудачного next().
func (f *Form) Touch(step entities.Step) {
	for _, fld := range registry {
		if fld.step != step && step != entities.StepReview {
			continue
		}
		state := f.states[fld.path]
		state.Touched = true
		f.states[fld.path] = state
	}
}

func (f *Form) Field(path string) (entities.FieldState, bool) {
	state, ok := f.states[path]
	return state, ok
}

func (f *Form) Values() entities.BookingDraft {
	return f.values
}

// Errors сообщения только для тронутых невалидных полей.
func (f *Form) Errors() map[string]string {
	errs := make(map[string]string)
	for path, state := range f.states {
		if state.Touched && !state.Valid {
			errs[path] = state.Message
		}
	}
	return errs
}

// Load применяет значения целиком (восстановление черновика), все поля становятся нетронутыми.
func (f *Form) Load(values entities.BookingDraft) {
	f.values = values
	for _, fld := range registry {
		f.states[fld.path] = f.check(fld)
	}
}

func (f *Form) Reset() {
	f.Load(entities.BookingDraft{})
}

func (f *Form) check(fld field) entities.FieldState {
	err := f.validate.Var(fld.value(&f.values), fld.rule)
	if err != nil {
		return entities.FieldState{
			Path:    fld.path,
			Valid:   false,
			Message: validation.Message(err),
		}
	}
	return entities.FieldState{Path: fld.path, Valid: true}
}

// Fields пути полей шага в порядке формы.
func Fields(step entities.Step) []string {
	return lo.FilterMap(registry, func(f field, _ int) (string, bool) {
		return f.path, f.step == step
	})
}
