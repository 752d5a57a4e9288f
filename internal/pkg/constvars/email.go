package constvars

const (
	EmailVerifyLoginSubject     = "[JONDONFIT] Sign in to your account"
	EmailVerifyRegisterSubject  = "[JONDONFIT] Confirm your registration"
	EmailWeighInReminderSubject = "[JONDONFIT] Time to log your weight"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"

	EmailBodyVerifyLogin     = "Click this link to sign in: %s\r\n\r\nThe link expires in 15 minutes. If you did not request it, you can ignore this email."
	EmailBodyVerifyRegister  = "Hi %s,\r\n\r\nClick this link to finish creating your account: %s\r\n\r\nThe link expires in 15 minutes. If you did not request it, you can ignore this email."
	EmailBodyWeighInReminder = "Hi %s,\r\n\r\nIt has been %d days since your last weigh-in. Log your weight to keep your progress tracking accurate."
)
