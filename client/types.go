package client

// Wire types matching the backend DTOs.

type Job struct {
	ID            uint    `json:"id"`
	Service       string  `json:"service"`
	CustomerName  string  `json:"customerName"`
	Address       string  `json:"address"`
	JobDate       string  `json:"jobDate"`
	Price         float64 `json:"price"`
	Notes         string  `json:"notes"`
	Paid          bool    `json:"paid"`
	CustomerID    *uint   `json:"customerId,omitempty"`
	InvoiceNumber string  `json:"invoiceNumber,omitempty"`
}

type Customer struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
}

// JobRequest is the create/update payload. Pointer fields serialize as
// explicit JSON null when unset so the backend can tell "absent" from
// "empty string".
type JobRequest struct {
	Service      string  `json:"service,omitempty"`
	JobDate      string  `json:"jobDate"`
	Price        float64 `json:"price"`
	Notes        string  `json:"notes"`
	CustomerID   *uint   `json:"customerId"`
	CustomerName *string `json:"customerName"`
	Address      *string `json:"address"`
}

// JobUpdate carries only the fields the edit screen touches; nil means
// "leave the stored value alone".
type JobUpdate struct {
	Service      *string  `json:"service"`
	JobDate      *string  `json:"jobDate"`
	Price        *float64 `json:"price"`
	Notes        *string  `json:"notes"`
	CustomerName *string  `json:"customerName"`
	Address      *string  `json:"address"`
}

type CustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
}

// MonthRevenue is one row of the backend's monthly revenue report.
type MonthRevenue struct {
	Month  string  `json:"month"`
	Paid   float64 `json:"paid"`
	Unpaid float64 `json:"unpaid"`
}
