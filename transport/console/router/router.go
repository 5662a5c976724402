package router

import (
	"hotel/internal/handlers/assignment"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/company"
	"hotel/internal/handlers/customer"
	"hotel/internal/handlers/repair"
	"hotel/internal/handlers/repairrequest"
	"hotel/internal/handlers/room"
	"hotel/transport/console"
)

type DomainHandlers struct {
	Customer      customer.Handler
	Room          room.Handler
	Company       company.Handler
	Repair        repair.Handler
	Booking       booking.Handler
	Assignment    assignment.Handler
	RepairRequest repairrequest.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes registers every operation under its menu code.
func (r *Router) SetupRoutes(menu *console.Menu) {
	h := &r.DomainHandlers

	menu.Handle(1, "Add new customer", h.Customer.AddCustomer)
	menu.Handle(2, "Add new room", h.Room.AddRoom)
	menu.Handle(3, "Add new maintenance company", h.Company.AddCompany)
	menu.Handle(4, "Add new repair", h.Repair.AddRepair)
	menu.Handle(5, "Add new Booking", h.Booking.BookRoom)
	menu.Handle(6, "Assign house cleaning staff to a room", h.Assignment.AssignCleaning)
	menu.Handle(7, "Raise a repair request", h.RepairRequest.RaiseRequest)
	menu.Handle(8, "Get number of available rooms", h.Room.AvailableRooms)
	menu.Handle(9, "Get number of booked rooms", h.Room.BookedRooms)
	menu.Handle(10, "Get hotel bookings for a week", h.Room.AvailableForWeek)
	menu.Handle(11, "Get top k rooms with highest price for a date range", h.Booking.TopPrices)
	menu.Handle(12, "Get top k highest booking price for a customer", h.Booking.TopForCustomer)
	menu.Handle(13, "Get customer total cost occurred for a give date range", h.Booking.TotalCost)
	menu.Handle(14, "List the repairs made by maintenance company", h.Repair.RepairsByCompany)
	menu.Handle(15, "Get top k maintenance companies based on repair count", h.Company.TopCompanies)
	menu.Handle(16, "Get number of repairs occurred per year for a given hotel room", h.Repair.RepairsPerYear)
}

// Menu builds a fresh menu with every operation registered.
func (r *Router) Menu() *console.Menu {
	menu := console.NewMenu()
	r.SetupRoutes(menu)

	return menu
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

// NewMenu is the menu of r, built once at startup.
func NewMenu(r Router) *console.Menu {
	return r.Menu()
}
