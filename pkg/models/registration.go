package models

// RequestCodeRequest asks for a verification code on a mobile number
type RequestCodeRequest struct {
	Mobile string `json:"mobile" validate:"required,len=10,numeric"`
}

// RequestCodeResponse reports when the next resend is allowed
type RequestCodeResponse struct {
	Success         bool `json:"success"`
	ResendAvailable int  `json:"resendAvailableInSeconds"`
}

// VerifyCodeRequest submits the received code
type VerifyCodeRequest struct {
	Mobile string `json:"mobile" validate:"required,len=10,numeric"`
	Code   string `json:"code" validate:"required,min=4,max=6,numeric"`
}

// VerifyCodeResponse carries the signup token that unlocks the wizard
type VerifyCodeResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// ProfilePayload is the wizard form body shared by draft and submit
type ProfilePayload struct {
	FirstName    string   `json:"firstName" validate:"required,min=2"`
	LastName     string   `json:"lastName" validate:"required,min=1"`
	BusinessName string   `json:"businessName" validate:"required,min=2"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Whatsapp     string   `json:"whatsapp" validate:"omitempty,len=10,numeric"`
	Pincode      string   `json:"pincode" validate:"required,len=6,numeric"`
	PlotNumber   string   `json:"plotNumber"`
	BuildingName string   `json:"buildingName"`
	StreetName   string   `json:"streetName"`
	Landmark     string   `json:"landmark"`
	Area         string   `json:"area" validate:"required"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required"`
	Categories   []string `json:"businessCategories" validate:"required,min=1"`
	CurrentStep  int      `json:"currentStep" validate:"omitempty,min=1,max=3"`
}

// DraftResponse confirms a saved draft
type DraftResponse struct {
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	CurrentStep int    `json:"currentStep"`
}

// SubmitRequest is the final wizard step
type SubmitRequest struct {
	ProfilePayload
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
	IsSubscribed    bool   `json:"isSubscribed"`
}

// SubmitResponse reports the completed registration
type SubmitResponse struct {
	Success bool   `json:"success"`
	StoreID string `json:"storeId"`
	Status  string `json:"status"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
