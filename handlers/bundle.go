package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Catalog   *CatalogHandler
	Booking   *BookingHandler
	Invoice   *InvoiceHandler
	Dashboard *DashboardHandler
	AI        *AIHandler
}
