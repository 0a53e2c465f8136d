package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	GoogleID string `json:"googleId" validate:"required"`
}

type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Verified is only present on Google sign-in responses.
	Verified *bool `json:"isVerified,omitempty"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type CreateOrderRequest struct {
	CustomerName    string  `json:"customer_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	PackageID       *int64  `json:"package_id"`
	TotalPrice      float64 `json:"total_price"`
	EventDate       string  `json:"event_date"`
	GuestCount      int     `json:"guest_count"`
	SpecialRequests string  `json:"special_requests"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

type FieldError struct {
	Field   string `json:"param"`
	Message string `json:"msg"`
}
