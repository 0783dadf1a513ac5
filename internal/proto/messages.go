package proto

// DateLayout is the wire format of Event.Date.
const DateLayout = "2006-01-02"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type SessionRequest struct{}

type SessionResponse struct {
	UserID        string `json:"userId"`
	Email         string `json:"email"`
	Authenticated bool   `json:"authenticated"`
}

type Event struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	BudgetCents   int64  `json:"budgetCents"`
	Description   string `json:"description,omitempty"`
	AttendeeCount int    `json:"attendeeCount"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

type CreateEventRequest struct {
	Title         string `json:"title"`
	Date          string `json:"date"`
	BudgetCents   int64  `json:"budgetCents"`
	Description   string `json:"description,omitempty"`
	AttendeeCount int    `json:"attendeeCount"`
}

type CreateEventResponse struct {
	Event *Event `json:"event"`
}

type ListEventsRequest struct{}

type ListEventsResponse struct {
	Events []*Event `json:"events"`
}

type GetEventRequest struct {
	ID string `json:"id"`
}

type GetEventResponse struct {
	Event *Event `json:"event"`
}
