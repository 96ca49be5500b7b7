package failure

const (
	LoadMessage                 = "Failed to load your profile. Please refresh the page to try again."
	SavedMessage                = "Changes saved successfully!"
	ConfirmationMismatchMessage = `Please type "delete my account" to confirm.`
	DeleteFailedMessage         = "Failed to delete account. Please try again."
	DeleteReauthMessage         = "For security, please log out and log back in, then try deleting your account again."
	SaveFailedMessage           = "Failed to save changes. Please try again."
)

var saveMessages = map[Kind]string{
	KindUnknown:             SaveFailedMessage,
	KindRequiresRecentLogin: "For security, please log out and log back in before making this change.",
	KindEmailInUse:          "This email is already in use by another account.",
	KindInvalidEmail:        "Please enter a valid email address.",
	KindOperationNotAllowed: "This operation is not allowed. Please contact support.",
	KindPermissionDenied:    "You don't have permission to update this profile.",
	KindNetwork:             "Network error. Please check your connection and try again.",
	KindQuotaExceeded:       "Too many requests. Please wait a moment and try again.",
}

// SaveMessage is the message shown when saving the profile fails with err.
func SaveMessage(err error) string {
	return saveMessages[Classify(err)]
}

// DeleteMessage is the message shown when deleting the account fails with err.
func DeleteMessage(err error) string {
	if Classify(err) == KindRequiresRecentLogin {
		return DeleteReauthMessage
	}
	return DeleteFailedMessage
}
