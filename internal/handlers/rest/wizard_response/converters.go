package wizard_response

import (
	"strconv"

	"booking/internal/entities"
	"booking/internal/generated/dto"
	"github.com/AlekSi/pointer"
	"github.com/samber/lo"
)

func FromView(view *entities.WizardView) dto.WizardView {
	result := dto.WizardView{
		ProfileId:   view.ProfileID,
		CurrentStep: int(view.CurrentStep),
		Steps: lo.Map(view.Steps, func(state entities.StepState, _ int) dto.StepState {
			return dto.StepState{
				Number:      int(state.Number),
				Name:        state.Number.String(),
				IsActive:    state.IsActive,
				IsCompleted: state.IsCompleted,
			}
		}),
		StepValid: lo.MapKeys(view.StepValid, func(_ bool, step entities.Step) string {
			return strconv.Itoa(int(step))
		}),
		Form:           fromForm(view.Form),
		Errors:         view.Errors,
		AutoSave:       view.AutoSave,
		DraftAvailable: view.DraftAvailable,
		DraftSavedAt:   view.DraftSavedAt,
		Submission:     fromSubmission(view.Submission),
	}

	if result.Errors == nil {
		result.Errors = map[string]string{}
	}
	if view.Quote != nil {
		result.Quote = pointer.To(FromQuote(*view.Quote))
	}
	return result
}

func FromField(state entities.FieldState) dto.FieldState {
	result := dto.FieldState{
		Path:    state.Path,
		Valid:   state.Valid,
		Touched: state.Touched,
	}
	if state.Message != "" {
		result.Message = pointer.ToString(state.Message)
	}
	return result
}

func FromQuote(quote entities.Quote) dto.Quote {
	return dto.Quote{
		Route: dto.RouteEstimate{
			From:          quote.Route.From,
			To:            quote.Route.To,
			DistanceKm:    quote.Route.DistanceKm,
			DurationHours: quote.Route.DurationHours,
			Fallback:      quote.Route.Fallback,
		},
		Fare: dto.FareEstimate{
			BaseFare:      quote.Fare.BaseFare,
			Gst:           quote.Fare.GST,
			ServiceCharge: quote.Fare.ServiceCharge,
			Insurance:     quote.Fare.Insurance,
			Total:         quote.Fare.Total,
			Currency:      quote.Fare.Currency,
		},
	}
}

func fromSubmission(state entities.SubmissionState) dto.SubmissionState {
	result := dto.SubmissionState{
		Status: dto.SubmissionStateStatus(state.Status),
	}
	if state.BookingID != "" {
		result.BookingId = pointer.ToString(state.BookingID)
	}
	if state.BookingNumber != "" {
		result.BookingNumber = pointer.ToString(state.BookingNumber)
	}
	if state.Error != "" {
		result.Error = pointer.ToString(state.Error)
	}
	return result
}

func fromForm(values entities.BookingDraft) dto.BookingForm {
	return dto.BookingForm{
		Cargo: dto.Cargo{
			Description: values.Cargo.Description,
			Type:        string(values.Cargo.Type),
			Weight:      values.Cargo.Weight,
			Dimensions: dto.Dimensions{
				Length: values.Cargo.Dimensions.Length,
				Width:  values.Cargo.Dimensions.Width,
				Height: values.Cargo.Dimensions.Height,
			},
			Value:               values.Cargo.Value,
			SpecialInstructions: values.Cargo.SpecialInstructions,
		},
		Pickup:   fromLocation(values.Pickup),
		Delivery: fromLocation(values.Delivery),
		Customer: dto.Customer{
			Id:    values.Customer.ID,
			Email: values.Customer.Email,
			Phone: values.Customer.Phone,
		},
		Payment: dto.Payment{
			Method:        string(values.Payment.Method),
			AcceptTerms:   values.Payment.AcceptTerms,
			AcceptPrivacy: values.Payment.AcceptPrivacy,
		},
	}
}

func fromLocation(location entities.LocationDetails) dto.Location {
	return dto.Location{
		Address: dto.Address{
			Street:     location.Address.Street,
			City:       location.Address.City,
			State:      location.Address.State,
			PostalCode: location.Address.PostalCode,
			Country:    location.Address.Country,
		},
		Contact: dto.Contact{
			Name:  location.Contact.Name,
			Phone: location.Contact.Phone,
		},
		Date:         location.Date,
		Time:         location.Time,
		Instructions: location.Instructions,
	}
}
