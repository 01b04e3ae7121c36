package utils

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Spoken prompts used on outbound calls and webhook replies.
var (
	VoiceMenu = &i18n.Message{
		ID:    "voice_menu",
		Other: "If you have fever, press 1. If you are fine, press 2.",
	}
	VoiceNoResponse = &i18n.Message{
		ID:    "voice_no_response",
		Other: "We did not receive any response. Goodbye.",
	}
	VoiceRecordNotFound = &i18n.Message{
		ID:    "voice_record_not_found",
		Other: "Sorry, we could not find your call record.",
	}
	VoiceFeverReferral = &i18n.Message{
		ID:    "voice_fever_referral",
		Other: "Please visit {{.Facility}} immediately for a check-up. Stay safe.",
	}
	VoiceFineClosing = &i18n.Message{
		ID:    "voice_fine_closing",
		Other: "Thank you. Stay safe and follow preventive measures.",
	}
	VoiceInvalidResponse = &i18n.Message{
		ID:    "voice_invalid_response",
		Other: "We did not receive a valid response. Goodbye.",
	}
)
