package auth

const (
	MsgRegistered     = "Thank you for registering. A verification OTP was sent to your email."
	MsgVerified       = "Your email has been verified!"
	MsgOTPResent      = "New OTP has been sent to your email account!"
	MsgResetLinkSent  = "Reset password link has been sent to your email account!"
	MsgPasswordReset  = "Password has been reset successfully!"
	MsgDuplicateEmail = "This email is already in use"
	MsgInvalidUser    = "Invalid user"
	MsgUserNotFound   = "User not found"
	MsgVerifiedBefore = "User already verified"
	MsgTokenNotFound  = "Token not found"
	MsgOTPMismatch    = "OTP not matched"
	MsgTooSoon        = "Only after one hour you can request for another token!"
	MsgSamePassword   = "The new password must be different from the old one"
	MsgBadCredentials = "Email/Password mismatch"
)
