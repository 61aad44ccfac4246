// Package policy decides which identities may perform which ledger actions.
package policy

import (
	"home-services-backend/internal/domain/entity"
	"home-services-backend/pkg/apperror"

	"github.com/google/uuid"
)

type Action string

const (
	ActionServiceCreate   Action = "service.create"
	ActionServiceUpdate   Action = "service.update"
	ActionServiceDelete   Action = "service.delete"
	ActionServiceListOwn  Action = "service.list_own"
	ActionBookingCreate   Action = "booking.create"
	ActionBookingView     Action = "booking.view"
	ActionBookingStatus   Action = "booking.status_update"
	ActionBookingCancel   Action = "booking.cancel"
	ActionBookingRate     Action = "booking.rate"
	ActionPaymentCreate   Action = "payment.create"
	ActionPaymentConfirm  Action = "payment.confirm"
	ActionPaymentViewByID Action = "payment.view"
)

// Resource carries the ownership of the object an action targets. Zero IDs mean
// the action has no target yet (e.g. creation).
type Resource struct {
	CustomerID uuid.UUID
	ProviderID uuid.UUID
}

type rule struct {
	check   func(who entity.Identity, res Resource) bool
	message string
}

func customerOnly(who entity.Identity, _ Resource) bool {
	return who.IsCustomer()
}

func providerOnly(who entity.Identity, _ Resource) bool {
	return who.IsProvider()
}

func owningCustomer(who entity.Identity, res Resource) bool {
	return who.IsCustomer() && res.CustomerID == who.UserID
}

func owningProvider(who entity.Identity, res Resource) bool {
	return who.IsProvider() && res.ProviderID == who.UserID
}

func participant(who entity.Identity, res Resource) bool {
	return owningCustomer(who, res) || owningProvider(who, res)
}

var rules = map[Action]rule{
	ActionServiceCreate:   {providerOnly, "only service providers can create services"},
	ActionServiceListOwn:  {providerOnly, "only service providers can list their services"},
	ActionServiceUpdate:   {owningProvider, "you can only modify your own services"},
	ActionServiceDelete:   {owningProvider, "you can only delete your own services"},
	ActionBookingCreate:   {customerOnly, "only customers can create bookings"},
	ActionBookingView:     {participant, "you do not have access to this booking"},
	ActionBookingStatus:   {owningProvider, "only the service provider can update booking status"},
	ActionBookingCancel:   {owningCustomer, "only the customer who made the booking can cancel it"},
	ActionBookingRate:     {owningCustomer, "only the customer who made the booking can rate it"},
	ActionPaymentCreate:   {owningCustomer, "you can only pay for your own bookings"},
	ActionPaymentConfirm:  {owningCustomer, "you can only confirm your own payments"},
	ActionPaymentViewByID: {participant, "you do not have access to this booking's payments"},
}

// Authorize returns a permission error unless who may perform action on res.
// Unknown actions are always denied.
func Authorize(who entity.Identity, action Action, res Resource) error {
	r, ok := rules[action]
	if !ok {
		return apperror.Permission("action not permitted")
	}
	if !r.check(who, res) {
		return apperror.Permission(r.message)
	}
	return nil
}

// ForService describes a service owned by providerID.
func ForService(providerID uuid.UUID) Resource {
	return Resource{ProviderID: providerID}
}

// ForBooking describes a booking by its customer and the provider of its service.
func ForBooking(b *entity.Booking) Resource {
	return Resource{CustomerID: b.CustomerID, ProviderID: b.Service.ProviderID}
}
