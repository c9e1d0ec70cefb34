package gateway

import "encoding/json"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password"`
}

// Register creates the account and returns the issued token, when the server
// issues one at this step.
func Register(data RegisterRequest) (string, error) {
	resp, err := newClient().R().
		SetBody(data).
		Post("/auth/register")
	if err != nil {
		return "", transportError("register", err)
	}
	if resp.IsError() {
		return "", apiError(resp)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", transportError("register decode", err)
	}
	return body.Token, nil
}

// Login exchanges phone and password for a token.
func Login(phone, password string) (string, error) {
	resp, err := newClient().R().
		SetBody(map[string]string{"phone": phone, "password": password}).
		Post("/auth/login")
	if err != nil {
		return "", transportError("login", err)
	}
	if resp.IsError() {
		return "", apiError(resp)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", transportError("login decode", err)
	}
	return body.Token, nil
}

func postOtp(op, path string, payload map[string]string) (string, error) {
	resp, err := newClient().R().
		SetBody(payload).
		Post(path)
	if err != nil {
		return "", transportError(op, err)
	}
	if resp.IsError() {
		return "", apiError(resp)
	}

	var body struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", transportError(op+" decode", err)
	}
	if body.Token != "" {
		return body.Token, nil
	}
	return body.Message, nil
}

// SendPhoneOtp asks the server to deliver an OTP to the phone.
func SendPhoneOtp(phone string) (string, error) {
	return postOtp("send-otp", "/auth/generate-otp", map[string]string{"phone": phone})
}

// VerifyPhoneOtp verifies the phone OTP and returns the session token.
func VerifyPhoneOtp(phone, otp string) (string, error) {
	return postOtp("verify-otp", "/auth/verify-otp", map[string]string{"phone": phone, "otp": otp})
}

// SendAadhaarOtp asks the server to deliver an OTP for the aadhaar number.
func SendAadhaarOtp(aadhaar string) (string, error) {
	return postOtp("send-aadhaar-otp", "/auth/generate-aadhaar-otp", map[string]string{"aadhaar": aadhaar})
}

// VerifyAadhaarLogin verifies aadhaar+OTP as a login and returns the token.
func VerifyAadhaarLogin(aadhaar, otp string) (string, error) {
	return postOtp("verify-aadhaar", "/auth/verify-aadhaar", map[string]string{"aadhaar": aadhaar, "otp": otp})
}

// VerifyAadhaarProfile verifies aadhaar+OTP against an existing profile.
func VerifyAadhaarProfile(token, aadhaar, otp string) (string, error) {
	resp, err := authClient(token).R().
		SetBody(map[string]string{"aadhaar": aadhaar, "otp": otp}).
		Post("/auth/verify-aadhaar-profile")
	if err != nil {
		return "", transportError("verify-aadhaar-profile", err)
	}
	if resp.IsError() {
		return "", apiError(resp)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", transportError("verify-aadhaar-profile decode", err)
	}
	return body.Message, nil
}
