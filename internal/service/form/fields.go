package form

import (
	"booking/internal/entities"
)

type kind int

const (
	kindText kind = iota
	kindNumber
	kindFlag
)

type field struct {
	path string
	step entities.Step
	rule string
	kind kind

	text   func(d *entities.BookingDraft) *string
	number func(d *entities.BookingDraft) *float64
	flag   func(d *entities.BookingDraft) *bool
}

const (
	ruleDate = "required,datetime=2006-01-02"
	ruleTime = "required,datetime=15:04"
)

var registry = buildRegistry()

func buildRegistry() []field {
	fields := []field{
		textField("cargo.description", entities.StepCargo, "required,min=3",
			func(d *entities.BookingDraft) *string { return &d.Cargo.Description }),
		textField("cargo.type", entities.StepCargo, "required,oneof=general fragile hazardous perishable valuable",
			func(d *entities.BookingDraft) *string { return (*string)(&d.Cargo.Type) }),
		numberField("cargo.weight", entities.StepCargo, "required,gt=0,lte=100000",
			func(d *entities.BookingDraft) *float64 { return &d.Cargo.Weight }),
		numberField("cargo.dimensions.length", entities.StepCargo, "required,gt=0,lte=10000",
			func(d *entities.BookingDraft) *float64 { return &d.Cargo.Dimensions.Length }),
		numberField("cargo.dimensions.width", entities.StepCargo, "required,gt=0,lte=10000",
			func(d *entities.BookingDraft) *float64 { return &d.Cargo.Dimensions.Width }),
		numberField("cargo.dimensions.height", entities.StepCargo, "required,gt=0,lte=10000",
			func(d *entities.BookingDraft) *float64 { return &d.Cargo.Dimensions.Height }),
		numberField("cargo.value", entities.StepCargo, "gte=0,lte=1000000000",
			func(d *entities.BookingDraft) *float64 { return &d.Cargo.Value }),
		textField("cargo.specialInstructions", entities.StepCargo, "max=500",
			func(d *entities.BookingDraft) *string { return &d.Cargo.SpecialInstructions }),
	}

	fields = append(fields, locationFields("pickup", func(d *entities.BookingDraft) *entities.LocationDetails {
		return &d.Pickup
	})...)
	fields = append(fields, locationFields("delivery", func(d *entities.BookingDraft) *entities.LocationDetails {
		return &d.Delivery
	})...)

	fields = append(fields,
		textField("customer.id", entities.StepCustomer, "required,max=64",
			func(d *entities.BookingDraft) *string { return &d.Customer.ID }),
		textField("customer.email", entities.StepCustomer, "required,email",
			func(d *entities.BookingDraft) *string { return &d.Customer.Email }),
		textField("customer.phone", entities.StepCustomer, "required,phone10",
			func(d *entities.BookingDraft) *string { return &d.Customer.Phone }),
		textField("payment.method", entities.StepCustomer, "required,oneof=card upi net_banking wallet cash",
			func(d *entities.BookingDraft) *string { return (*string)(&d.Payment.Method) }),
		flagField("payment.acceptTerms", entities.StepCustomer, "eq=true",
			func(d *entities.BookingDraft) *bool { return &d.Payment.AcceptTerms }),
		flagField("payment.acceptPrivacy", entities.StepCustomer, "eq=true",
			func(d *entities.BookingDraft) *bool { return &d.Payment.AcceptPrivacy }),
	)

	return fields
}

// pickup и delivery устроены одинаково и оба относятся ко второму шагу
func locationFields(prefix string, location func(d *entities.BookingDraft) *entities.LocationDetails) []field {
	step := entities.StepRoute
	return []field{
		textField(prefix+".address.street", step, "required,min=5",
			func(d *entities.BookingDraft) *string { return &location(d).Address.Street }),
		textField(prefix+".address.city", step, "required,min=2",
			func(d *entities.BookingDraft) *string { return &location(d).Address.City }),
		textField(prefix+".address.state", step, "required",
			func(d *entities.BookingDraft) *string { return &location(d).Address.State }),
		textField(prefix+".address.postalCode", step, "required,pincode",
			func(d *entities.BookingDraft) *string { return &location(d).Address.PostalCode }),
		textField(prefix+".address.country", step, "required",
			func(d *entities.BookingDraft) *string { return &location(d).Address.Country }),
		textField(prefix+".contact.name", step, "required,min=2",
			func(d *entities.BookingDraft) *string { return &location(d).Contact.Name }),
		textField(prefix+".contact.phone", step, "required,phone10",
			func(d *entities.BookingDraft) *string { return &location(d).Contact.Phone }),
		textField(prefix+".date", step, ruleDate,
			func(d *entities.BookingDraft) *string { return &location(d).Date }),
		textField(prefix+".time", step, ruleTime,
			func(d *entities.BookingDraft) *string { return &location(d).Time }),
		textField(prefix+".instructions", step, "max=500",
			func(d *entities.BookingDraft) *string { return &location(d).Instructions }),
	}
}

func textField(path string, step entities.Step, rule string, ref func(d *entities.BookingDraft) *string) field {
	return field{path: path, step: step, rule: rule, kind: kindText, text: ref}
}

func numberField(path string, step entities.Step, rule string, ref func(d *entities.BookingDraft) *float64) field {
	return field{path: path, step: step, rule: rule, kind: kindNumber, number: ref}
}

func flagField(path string, step entities.Step, rule string, ref func(d *entities.BookingDraft) *bool) field {
	return field{path: path, step: step, rule: rule, kind: kindFlag, flag: ref}
}

func (f field) value(d *entities.BookingDraft) any {
	switch f.kind {
	case kindNumber:
		return *f.number(d)
	case kindFlag:
		return *f.flag(d)
	default:
		return *f.text(d)
	}
}

func (f field) assign(d *entities.BookingDraft, raw any) error {
	switch f.kind {
	case kindNumber:
		v, err := toNumber(raw)
		if err != nil {
			return err
		}
		*f.number(d) = v
	case kindFlag:
		v, err := toFlag(raw)
		if err != nil {
			return err
		}
		*f.flag(d) = v
	default:
		v, err := toText(raw)
		if err != nil {
			return err
		}
		*f.text(d) = v
	}
	return nil
}
