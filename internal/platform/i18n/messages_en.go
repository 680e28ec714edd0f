package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, MsgExpectedPost, "Expected a POST request.")
	message.SetString(lang, MsgMissingParameters, "Missing required parameters x, y, r.")
	message.SetString(lang, MsgNotANumber, "Parameter %s must be a number.")
	message.SetString(lang, MsgMalformedForm, "Malformed form data.")
	message.SetString(lang, MsgYRange, "Y must be in range -3 to 3.")
	message.SetString(lang, MsgRRange, "R must be in range 2 to 5.")
	message.SetString(lang, MsgServerError, "Server error: %s")
	message.SetString(lang, MsgNotFound, "Not found.")
	message.SetString(lang, MsgTooManyRequests, "Too many requests.")
	message.SetString(lang, MsgBodyTooLarge, "Request body is too large.")

	message.SetString(lang, MsgErrorPrefix, "Error: %s")
	message.SetString(lang, MsgHit, "Hit")
	message.SetString(lang, MsgMiss, "Miss")
}
